package tetromino

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/grid"
)

func newTestGenerator(seed int64, r Randomizer, fourChance float64) *Generator {
	return NewGenerator(GeneratorConfig{
		Grid:       grid.DefaultConfig(),
		Randomizer: r,
		FourChance: fourChance,
	}, rand.New(rand.NewSource(seed)))
}

type drawn struct {
	kind   Kind
	values []int
}

func draw(g *Generator, n int) []drawn {
	out := make([]drawn, n)
	for i := range out {
		p := g.Next()
		out[i].kind = p.Kind()
		for _, pl := range p.Tiles() {
			out[i].values = append(out[i].values, pl.Tile.Value)
		}
	}
	return out
}

func TestGeneratorDeterministic(t *testing.T) {
	for _, r := range []Randomizer{Uniform, Bag} {
		t.Run(string(r), func(t *testing.T) {
			a := draw(newTestGenerator(42, r, 0.5), 50)
			b := draw(newTestGenerator(42, r, 0.5), 50)
			assert.Equal(t, a, b)
		})
	}
}

func TestGeneratorPeekThenNext(t *testing.T) {
	g := newTestGenerator(1, Uniform, 0.5)

	for i := 0; i < 10; i++ {
		peeked := g.Peek()
		require.NotNil(t, peeked)
		assert.Same(t, peeked, g.Next())
	}
}

func TestGeneratorBagDealsEveryShape(t *testing.T) {
	g := newTestGenerator(9, Bag, 0.5)

	for round := 0; round < 3; round++ {
		seen := map[Kind]int{}
		for _, d := range draw(g, len(Kinds)) {
			seen[d.kind]++
		}
		assert.Len(t, seen, len(Kinds), "round %d", round)
		for k, n := range seen {
			assert.Equal(t, 1, n, "round %d kind %v", round, k)
		}
	}
}

func TestGeneratorUniformCoversShapes(t *testing.T) {
	g := newTestGenerator(3, Uniform, 0.5)
	seen := map[Kind]bool{}
	for _, d := range draw(g, 200) {
		seen[d.kind] = true
	}
	assert.Len(t, seen, len(Kinds))
}

func TestGeneratorTileValues(t *testing.T) {
	tests := []struct {
		name       string
		fourChance float64
		want       int
	}{
		{"only twos", 0, 2},
		{"only fours", 1, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, d := range draw(newTestGenerator(5, Uniform, tc.fourChance), 20) {
				for _, v := range d.values {
					assert.Equal(t, tc.want, v)
				}
			}
		})
	}
}

func TestGeneratorDefaultsToUniform(t *testing.T) {
	g := NewGenerator(GeneratorConfig{Grid: grid.DefaultConfig()}, rand.New(rand.NewSource(1)))
	assert.Equal(t, Uniform, g.cfg.Randomizer)
}

func TestParseRandomizer(t *testing.T) {
	tests := []struct {
		in      string
		want    Randomizer
		wantErr bool
	}{
		{"uniform", Uniform, false},
		{"bag", Bag, false},
		{"", Uniform, false},
		{"shuffle", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRandomizer(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
