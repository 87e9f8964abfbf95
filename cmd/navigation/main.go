// Command navigation renders a handful of kinded agents wandering a
// terminal grid. Every agent is spawned through kind.Spawn, so the
// update loop can hold branded handles and read Speed and Position
// without checking for their presence first.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"kindly/ecs"
	"kindly/kind"
)

// Position is an agent's current grid cell.
type Position struct{ X, Y int }

// Speed is how many cells an agent covers per tick.
type Speed struct{ Tiles int }

// Glyph is the emoji drawn for an agent.
type Glyph struct{ S string }

// Destination is where an agent is currently headed.
type Destination struct{ X, Y int }

// Agent is a kind of entity that can navigate the grid. Every agent
// must be given a Speed and a Glyph; a Position is added by default.
type Agent struct{}

func (Agent) Defaults() []any       { return []any{Position{}} }
func (Agent) Required() AgentBundle { return AgentBundle{} }

type AgentBundle struct {
	Speed Speed
	Glyph Glyph
}

// navigateTo is an Agent-only verb: only entities known to be agents
// can receive a navigation request.
func navigateTo(s *kind.ScopedCommands[Agent], x, y int) *kind.ScopedCommands[Agent] {
	return s.Insert(Destination{X: x, Y: y})
}

// Sim owns the world and the screen.
type Sim struct {
	screen tcell.Screen
	world  *ecs.World
	rng    *rand.Rand
	w, h   int
}

var agentGlyphs = []string{"🐢", "🐇", "🦊", "🐌", "🦀"}

// New creates a Sim with the screen initialized and agents spawned.
func New() (*Sim, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	w, h := screen.Size()
	s := &Sim{
		screen: screen,
		world:  ecs.NewWorld(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		w:      w,
		h:      h - 1, // bottom row is the status line
	}
	s.world.Execute(func(c *ecs.Commands) {
		for i, glyph := range agentGlyphs {
			agent := kind.Spawn[Agent](c, AgentBundle{
				Speed: Speed{Tiles: 1 + i%3},
				Glyph: Glyph{S: glyph},
			})
			navigateTo(agent, s.rng.Intn(s.w), s.rng.Intn(s.h))
		}
	})
	return s, nil
}

// Run steps the simulation until q or ESC is pressed.
func (s *Sim) Run() {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(150 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				s.w, s.h = s.screen.Size()
				s.h--
				s.screen.Sync()
			}
		case <-ticker.C:
			s.step()
			s.draw()
		}
	}
}

// step moves every agent toward its destination and hands arrivals a
// new one. Querying through the kind guarantees Position and Speed are
// present on every match.
func (s *Sim) step() {
	s.world.Execute(func(c *ecs.Commands) {
		for _, agent := range kind.Query[Agent](s.world, ecs.TypeFor[Destination]()) {
			id := agent.Entity()
			pos, _ := ecs.Get[Position](s.world, id)
			speed, _ := ecs.Get[Speed](s.world, id)
			dest, _ := ecs.Get[Destination](s.world, id)

			pos.X = approach(pos.X, dest.X, speed.Tiles)
			pos.Y = approach(pos.Y, dest.Y, speed.Tiles)
			c.Entity(id).Insert(pos)

			if pos.X == dest.X && pos.Y == dest.Y {
				navigateTo(kind.With(c, agent), s.rng.Intn(s.w), s.rng.Intn(s.h))
			}
		}
	})
}

// approach moves cur toward want by at most step.
func approach(cur, want, step int) int {
	switch {
	case cur < want:
		if cur+step > want {
			return want
		}
		return cur + step
	case cur > want:
		if cur-step < want {
			return want
		}
		return cur - step
	}
	return cur
}

// draw renders destinations, agents, and the status line.
func (s *Sim) draw() {
	s.screen.Clear()
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	for _, agent := range kind.Query[Agent](s.world, ecs.TypeFor[Destination]()) {
		dest, _ := ecs.Get[Destination](s.world, agent.Entity())
		s.putGlyph(dest.X, dest.Y, "×", style.Foreground(tcell.ColorGray))
	}
	for _, agent := range kind.Query[Agent](s.world) {
		pos, _ := ecs.Get[Position](s.world, agent.Entity())
		glyph, _ := ecs.Get[Glyph](s.world, agent.Entity())
		s.putGlyph(pos.X, pos.Y, glyph.S, style)
	}

	status := fmt.Sprintf(" %d agents, q to quit", len(kind.Query[Agent](s.world)))
	for i, r := range status {
		s.screen.SetContent(i, s.h, r, nil, style.Foreground(tcell.ColorWhite))
	}
	s.screen.Show()
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (s *Sim) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		s.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func main() {
	sim, err := New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer sim.screen.Fini()
	sim.Run()
}
