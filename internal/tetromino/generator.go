package tetromino

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tetris2048/internal/grid"
)

// Randomizer selects how the generator picks the next shape.
type Randomizer string

const (
	// Uniform draws every shape independently with equal probability.
	Uniform Randomizer = "uniform"
	// Bag deals all seven shapes in a shuffled order before repeating.
	Bag Randomizer = "bag"
)

// ParseRandomizer validates a randomizer name.
func ParseRandomizer(s string) (Randomizer, error) {
	switch Randomizer(s) {
	case Uniform, Bag:
		return Randomizer(s), nil
	case "":
		return Uniform, nil
	default:
		return "", fmt.Errorf("unknown randomizer %q", s)
	}
}

// GeneratorConfig configures a Generator.
type GeneratorConfig struct {
	Grid       grid.Config
	Randomizer Randomizer
	FourChance float64 // Probability that a new tile holds 4 instead of 2
}

// Generator produces pieces from a seeded random source and keeps one piece
// of lookahead for the preview.
type Generator struct {
	cfg  GeneratorConfig
	rng  *rand.Rand
	bag  []Kind
	next *Piece
}

// NewGenerator creates a generator. The same seed and config always yield
// the same sequence of pieces and tile values.
func NewGenerator(cfg GeneratorConfig, rng *rand.Rand) *Generator {
	if cfg.Randomizer == "" {
		cfg.Randomizer = Uniform
	}
	g := &Generator{cfg: cfg, rng: rng}
	g.next = g.build()
	return g
}

// Peek returns the upcoming piece without consuming it.
func (g *Generator) Peek() *Piece {
	return g.next
}

// Next returns the upcoming piece and prepares the one after it.
func (g *Generator) Next() *Piece {
	p := g.next
	g.next = g.build()
	return p
}

func (g *Generator) build() *Piece {
	return New(g.kind(), g.cfg.Grid, g.tile)
}

func (g *Generator) tile() *grid.Tile {
	return grid.NewWeightedTile(g.rng, g.cfg.FourChance)
}

func (g *Generator) kind() Kind {
	if g.cfg.Randomizer != Bag {
		return Kinds[g.rng.Intn(len(Kinds))]
	}
	if len(g.bag) == 0 {
		for _, i := range g.rng.Perm(len(Kinds)) {
			g.bag = append(g.bag, Kinds[i])
		}
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}
