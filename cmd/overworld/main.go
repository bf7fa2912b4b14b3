// Command overworld is the interactive terminal driver for the overworld
// simulation core: it renders the current region, advances the NPC
// roster once per turn, and reads movement and teleport commands from
// standard input. Argument parsing, terminal rendering, the input loop,
// signal handling, frame pacing, and RNG seeding are this command's own
// concern; the simulation core in pkg/ remains usable under any such
// shell.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/patchwork-games/overworld/pkg/engine"
	"github.com/patchwork-games/overworld/pkg/logging"
	"github.com/patchwork-games/overworld/pkg/npc"
	"github.com/patchwork-games/overworld/pkg/region"
	"github.com/patchwork-games/overworld/pkg/worldmap"
)

const frameDelay = 250 * time.Millisecond

const helpText = `Commands:
  n, s, e, w   move to the neighboring region in that direction
  f x y        teleport to world-relative coordinates (x,y)
  q            quit
  h, ?         show this help
`

var trainers = flag.Int("TOTAL_NUM_TRAINERS", npc.RosterSize,
	"roster-size override; validated (must be at least 1) and logged, but not used: the NPC roster is always fixed at 10")

func main() {
	flag.Parse()
	if *trainers < 1 {
		fmt.Fprintln(os.Stderr, "overworld: --TOTAL_NUM_TRAINERS must be at least 1")
		os.Exit(1)
	}

	seed, err := parseSeed(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "overworld: %v\n", err)
		os.Exit(1)
	}

	logger := newCLILogger()

	logging.WithContext(logger, logrus.Fields{"seed": seed, "trainers": *trainers}).
		Info("starting overworld")

	g := engine.New(seed, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	stdin := bufio.NewReader(os.Stdin)
	renderer := &renderState{}

	for {
		select {
		case <-sigCh:
			fmt.Println("But how are you going to be the very best if you quit?")
			return
		default:
		}

		g.AdvanceTurn()

		for {
			renderer.render(g)

			line, readErr := stdin.ReadString('\n')
			if readErr == io.EOF {
				fmt.Println("But how are you going to be the very best if you quit?")
				return
			}

			cmd := strings.TrimSpace(line)
			quit, handled := dispatch(g, cmd)
			if quit {
				fmt.Println("But how are you going to be the very best if you quit?")
				return
			}
			if handled {
				break
			}
		}

		time.Sleep(frameDelay)
	}
}

// newCLILogger builds the logger used for the whole run. LOG_LEVEL and
// LOG_FORMAT, if set, are honored via logging.NewLoggerFromEnv; otherwise
// the level defaults to Warn, since the logger writes to stdout and any
// Info-level entry (such as the startup line) would interleave with the
// rendered frame.
func newCLILogger() *logrus.Logger {
	if os.Getenv("LOG_LEVEL") != "" || os.Getenv("LOG_FORMAT") != "" {
		return logging.NewLoggerFromEnv()
	}
	config := logging.DefaultConfig()
	config.Level = logging.WarnLevel
	return logging.NewLogger(config)
}

// parseSeed reads the optional positional RNG seed argument, falling back
// to a wall-clock-derived seed when none is given.
func parseSeed(args []string) (int64, error) {
	if len(args) == 0 {
		return time.Now().UnixNano(), nil
	}
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", args[0], err)
	}
	return seed, nil
}

// dispatch executes one command. handled reports whether cmd was
// recognized (an unrecognized command reprompts without consuming another
// NPC-advance turn); quit reports whether the run should end.
func dispatch(g *engine.Game, cmd string) (quit, handled bool) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "overworld: empty command")
		return false, false
	}

	switch fields[0] {
	case "n":
		g.Move(worldmap.North)
		return false, true
	case "s":
		g.Move(worldmap.South)
		return false, true
	case "e":
		g.Move(worldmap.East)
		return false, true
	case "w":
		g.Move(worldmap.West)
		return false, true
	case "f":
		if len(fields) != 3 {
			fmt.Fprintln(os.Stderr, "overworld: usage: f <x> <y>")
			return false, false
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			fmt.Fprintln(os.Stderr, "overworld: f requires two integers")
			return false, false
		}
		if !g.Teleport(x, y) {
			fmt.Fprintln(os.Stderr, "overworld: coordinates out of range")
			return false, false
		}
		return false, true
	case "q":
		return true, true
	case "h", "?":
		fmt.Print(helpText)
		return false, false
	default:
		fmt.Fprintf(os.Stderr, "overworld: unknown command %q\n", fields[0])
		return false, false
	}
}

// renderState carries the one-time unknown-terrain-glyph diagnostic flag
// across frames, per spec.md §7 ("log once to standard error").
type renderState struct {
	loggedUnknownKind bool
}

func (rs *renderState) render(g *engine.Game) {
	fmt.Print("\x1b[H\x1b[2J")

	r := g.CurrentRegion()
	overlay := make(map[[2]int]byte, len(g.Roster))
	for _, n := range g.Roster {
		overlay[n.Pos] = byte(n.Class)
	}

	var b strings.Builder
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			switch {
			case x == g.PlayerX && y == g.PlayerY:
				b.WriteByte('@')
			default:
				if glyph, ok := overlay[[2]int{x, y}]; ok {
					b.WriteByte(glyph)
					continue
				}
				b.WriteByte(rs.glyph(r.Terrain(x, y)))
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())

	dx, dy := g.World.Cursor().Delta()
	ew, ns := "E", "N"
	if dx < 0 {
		ew = "W"
	}
	if dy > 0 {
		ns = "S"
	}
	fmt.Printf("Current position is %d%sx%d%s (%d,%d).  Enter command: ",
		absInt(dx), ew, absInt(dy), ns, dx, dy)
}

func (rs *renderState) glyph(k region.Kind) byte {
	g := k.Glyph()
	if g == '&' && !rs.loggedUnknownKind {
		fmt.Fprintf(os.Stderr, "overworld: render encountered unknown terrain kind %d\n", k)
		rs.loggedUnknownKind = true
	}
	return g
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
