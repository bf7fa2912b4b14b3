package procgen

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/patchwork-games/overworld/pkg/logging"
	"github.com/patchwork-games/overworld/pkg/region"
)

// stageLog returns a component-scoped debug entry for one pipeline stage,
// or nil if log is nil (the discard case). ComponentLogger needs the
// entry's underlying *logrus.Logger, which logrus.Entry always carries.
func stageLog(log *logrus.Entry, component string) *logrus.Entry {
	if log == nil {
		return nil
	}
	return logging.ComponentLogger(log.Logger, component).WithFields(log.Data)
}

// GenerateRegion runs the full region generation pipeline in spec.md §2's
// dependency order: height field, terrain seeding and diffusion with
// border/gate installation, boulder and tree scatter, gate-connecting road
// routing, and finally building siting. distanceFromOrigin is the Manhattan
// distance of this region from the world origin, used by PlaceBuildings.
// Every stage logs its own completion at Debug level, within the
// performance doctrine in pkg/logging's package doc (nothing above Info in
// hot paths).
func GenerateRegion(rng *rand.Rand, log *logrus.Entry, north, south, east, west, distanceFromOrigin int) *region.Region {
	r := region.New()

	GenerateHeight(rng, r)
	if l := stageLog(log, "height"); l != nil {
		l.Debug("height field generated")
	}

	GenerateTerrain(rng, r, north, south, east, west)
	if l := stageLog(log, "terrain"); l != nil {
		l.WithFields(logrus.Fields{
			"north": north, "south": south, "east": east, "west": west,
		}).Debug("terrain seeded and diffused")
	}

	ScatterBoulders(rng, r)
	ScatterTrees(rng, r)
	if l := stageLog(log, "scatter"); l != nil {
		l.Debug("boulders and trees scattered")
	}

	BuildPaths(r)
	if l := stageLog(log, "roads"); l != nil {
		l.Debug("gate-connecting paths carved")
	}

	PlaceBuildings(rng, r, distanceFromOrigin)
	if l := stageLog(log, "buildings"); l != nil {
		l.WithField("distanceFromOrigin", distanceFromOrigin).Debug("buildings sited")
	}

	return r
}
