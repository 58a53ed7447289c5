package editor

import (
	"math/rand"
	"testing"

	"VoxelSandbox/shared/mapdata"
	"VoxelSandbox/shared/util"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatWorld cria uma camada de pedra em y=0 com x,z em [-2, 2].
func flatWorld(t *testing.T) *mapdata.World {
	t.Helper()
	w := mapdata.NewWorld()
	for x := int32(-2); x <= 2; x++ {
		for z := int32(-2); z <= 2; z++ {
			_, ok := w.Add(util.NewBlockCoord(x, 0, z), mapdata.Stone)
			require.True(t, ok)
		}
	}
	return w
}

var down = util.Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, -1, 0}}

var pickers = map[string]Picker{
	PickerLinear: LinearPicker{},
	PickerGrid:   GridPicker{},
}

func TestPickTopFace(t *testing.T) {
	for name, p := range pickers {
		t.Run(name, func(t *testing.T) {
			w := flatWorld(t)
			hit, ok := p.Pick(w, down, 0)
			require.True(t, ok)
			assert.Equal(t, util.NewBlockCoord(0, 0, 0), hit.Block.Pos)
			assert.Equal(t, util.FaceUp, hit.Face)
			assert.InDelta(t, 9.5, hit.Distance, 1e-5)
		})
	}
}

func TestPickNearestOfColumn(t *testing.T) {
	for name, p := range pickers {
		t.Run(name, func(t *testing.T) {
			w := flatWorld(t)
			_, ok := w.Add(util.NewBlockCoord(0, 3, 0), mapdata.Wood)
			require.True(t, ok)

			hit, ok := p.Pick(w, down, 0)
			require.True(t, ok)
			assert.Equal(t, mapdata.Wood, hit.Block.Type)
			assert.InDelta(t, 6.5, hit.Distance, 1e-5)
		})
	}
}

func TestPickMissAndReach(t *testing.T) {
	for name, p := range pickers {
		t.Run(name, func(t *testing.T) {
			w := flatWorld(t)

			up := util.Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, 1, 0}}
			_, ok := p.Pick(w, up, 0)
			assert.False(t, ok, "olhando para o céu")

			_, ok = p.Pick(w, down, 5)
			assert.False(t, ok, "fora do alcance")

			_, ok = p.Pick(w, down, 10)
			assert.True(t, ok, "dentro do alcance")
		})
	}
}

func TestPickIgnoresCellOfOrigin(t *testing.T) {
	for name, p := range pickers {
		t.Run(name, func(t *testing.T) {
			w := flatWorld(t)
			// Origem dentro do bloco (0,0,0): o próximo atingido é o vizinho a leste
			ray := util.Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}
			hit, ok := p.Pick(w, ray, 0)
			require.True(t, ok)
			assert.Equal(t, util.NewBlockCoord(1, 0, 0), hit.Block.Pos)
			assert.Equal(t, util.FaceWest, hit.Face)
		})
	}
}

func TestPickersAgree(t *testing.T) {
	w := flatWorld(t)
	_, _ = w.Add(util.NewBlockCoord(1, 1, 1), mapdata.Sand)
	_, _ = w.Add(util.NewBlockCoord(-1, 2, 0), mapdata.Wood)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		origin := mgl32.Vec3{
			float32(rng.Float64()*6 - 3),
			float32(rng.Float64()*3 + 3.2),
			float32(rng.Float64()*6 - 3),
		}
		dir := mgl32.Vec3{
			float32(rng.Float64()*2 - 1),
			float32(-rng.Float64() - 0.1),
			float32(rng.Float64()*2 - 1),
		}.Normalize()
		ray := util.Ray{Origin: origin, Direction: dir}

		lh, lok := LinearPicker{}.Pick(w, ray, 0)
		gh, gok := GridPicker{}.Pick(w, ray, 0)
		require.Equal(t, lok, gok, "raio %d: %v", i, ray)
		if lok {
			assert.Equal(t, lh.Block.Pos, gh.Block.Pos, "raio %d", i)
			assert.Equal(t, lh.Face, gh.Face, "raio %d", i)
			assert.InDelta(t, lh.Distance, gh.Distance, 1e-3, "raio %d", i)
		}
	}
}

func TestPrimaryBreaks(t *testing.T) {
	w := flatWorld(t)
	ed := New(w, nil)
	before := w.Len()

	b, ok := ed.Primary(down)
	require.True(t, ok)
	assert.Equal(t, util.NewBlockCoord(0, 0, 0), b.Pos)
	assert.Equal(t, before-1, w.Len())
	_, ok = w.At(b.Pos)
	assert.False(t, ok)

	// Sem nada abaixo o clique não faz nada
	_, ok = ed.Primary(down)
	assert.False(t, ok)
	assert.Equal(t, before-1, w.Len())
}

func TestSecondaryPlacesAdjacent(t *testing.T) {
	tests := []struct {
		name string
		ray  util.Ray
		want util.BlockCoord
	}{
		{"em cima", down, util.NewBlockCoord(0, 1, 0)},
		{"ao lado leste", util.Ray{Origin: mgl32.Vec3{6, 0, 0}, Direction: mgl32.Vec3{-1, 0, 0}}, util.NewBlockCoord(3, 0, 0)},
		{"ao lado norte", util.Ray{Origin: mgl32.Vec3{1, 0, -6}, Direction: mgl32.Vec3{0, 0, 1}}, util.NewBlockCoord(1, 0, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := flatWorld(t)
			ed := New(w, GridPicker{})

			hit, ok := ed.Target(tt.ray)
			require.True(t, ok)

			b, ok := ed.Secondary(tt.ray, mapdata.Sand)
			require.True(t, ok)
			assert.Equal(t, tt.want, b.Pos)
			assert.Equal(t, mapdata.Sand, b.Type)
			assert.Equal(t, int32(1), b.Pos.Sub(hit.Block.Pos).ManhattanLen())

			h, ok := w.At(tt.want)
			require.True(t, ok)
			got, _ := w.Get(h)
			assert.Equal(t, mapdata.Sand, got.Type)
		})
	}
}

func TestSecondaryStacks(t *testing.T) {
	w := flatWorld(t)
	ed := New(w, LinearPicker{})

	for i := int32(1); i <= 3; i++ {
		b, ok := ed.Secondary(down, mapdata.Wood)
		require.True(t, ok)
		assert.Equal(t, util.NewBlockCoord(0, i, 0), b.Pos)
	}
	assert.Equal(t, 25+3, w.Len())
}

func TestSecondaryNoHit(t *testing.T) {
	w := flatWorld(t)
	ed := New(w, nil)
	sky := util.Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, 1, 0}}

	_, ok := ed.Secondary(sky, mapdata.Stone)
	assert.False(t, ok)
	assert.Equal(t, 25, w.Len())
}

func TestSecondaryRejectsOccupied(t *testing.T) {
	w := flatWorld(t)
	ed := New(w, nil)

	// A pedra (0,0,0) é atingida pela face leste, mas a célula (1,0,0) está ocupada
	hit := Hit{Block: mapdata.Block{Pos: util.NewBlockCoord(0, 0, 0)}, Face: util.FaceEast}
	assert.Equal(t, util.NewBlockCoord(1, 0, 0), PlacementFor(hit))

	_, ok := w.Add(PlacementFor(hit), mapdata.Dirt)
	assert.False(t, ok)

	// Tipo inválido também não altera o mundo
	_, ok = ed.Secondary(down, mapdata.BlockType(77))
	assert.False(t, ok)
	assert.Equal(t, 25, w.Len())
}

func TestNewPicker(t *testing.T) {
	assert.IsType(t, GridPicker{}, NewPicker(PickerGrid))
	assert.IsType(t, LinearPicker{}, NewPicker(PickerLinear))
	assert.IsType(t, LinearPicker{}, NewPicker("qualquer"))
}

func TestPickFarFromWorld(t *testing.T) {
	w := mapdata.NewWorld()
	_, ok := w.Add(util.NewBlockCoord(0, 0, 0), mapdata.Stone)
	require.True(t, ok)

	tests := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
		want   float32
	}{
		{"600 blocos a leste", mgl32.Vec3{600, 0, 0}, mgl32.Vec3{-1, 0, 0}, 599.5},
		{"2000 blocos ao norte", mgl32.Vec3{0, 0, -2000}, mgl32.Vec3{0, 0, 1}, 1999.5},
		{"direção não normalizada", mgl32.Vec3{0, 900, 0}, mgl32.Vec3{0, -3, 0}, 899.5 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := util.Ray{Origin: tt.origin, Direction: tt.dir}
			lh, lok := LinearPicker{}.Pick(w, ray, 0)
			gh, gok := GridPicker{}.Pick(w, ray, 0)
			require.True(t, lok)
			require.True(t, gok)
			assert.Equal(t, lh.Block.Pos, gh.Block.Pos)
			assert.InDelta(t, tt.want, gh.Distance, 5e-2)
		})
	}

	// Apontando para longe do mundo a travessia termina sem acerto
	away := util.Ray{Origin: mgl32.Vec3{600, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}
	_, ok = GridPicker{}.Pick(w, away, 0)
	assert.False(t, ok)
}

func TestGridPickerEmptyWorld(t *testing.T) {
	w := mapdata.NewWorld()
	_, ok := GridPicker{}.Pick(w, down, 0)
	assert.False(t, ok)

	// MaxSteps explícito ainda limita a travessia
	_, _ = w.Add(util.NewBlockCoord(0, 0, 0), mapdata.Stone)
	_, ok = GridPicker{MaxSteps: 3}.Pick(w, down, 0)
	assert.False(t, ok)
	_, ok = GridPicker{MaxSteps: 10}.Pick(w, down, 0)
	assert.True(t, ok)
}
