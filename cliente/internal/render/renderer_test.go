package render

import (
	"testing"

	"VoxelSandbox/shared/mapdata"
	"VoxelSandbox/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererMirrorsWorld(t *testing.T) {
	w := mapdata.NewWorld()
	_, ok := w.Add(util.NewBlockCoord(0, 0, 0), mapdata.Stone)
	require.True(t, ok)

	r := &Renderer{Batches: NewBatchManager()}
	r.Sync(w)
	w.SetListener(r)
	require.Len(t, r.Models, 1)

	h, ok := w.Add(util.NewBlockCoord(1, 0, 0), mapdata.Sand)
	require.True(t, ok)
	assert.Len(t, r.Models, 2)
	assert.Equal(t, rl.Vector3{X: 1, Y: 0, Z: 0}, r.Models[h].Position)

	w.Remove(h)
	assert.Len(t, r.Models, 1)
	_, ok = r.Models[h]
	assert.False(t, ok)
	assert.True(t, r.dirty)
}

func TestBatchesGroupAndCull(t *testing.T) {
	w := mapdata.NewWorld()
	w.Add(util.NewBlockCoord(0, 0, 0), mapdata.Grass)
	w.Add(util.NewBlockCoord(1, 0, 0), mapdata.Grass)
	w.Add(util.NewBlockCoord(30, 0, 0), mapdata.Wood)

	r := &Renderer{Batches: NewBatchManager()}
	r.Sync(w)

	bm := r.Batches
	bm.Rebuild(r.Models)
	assert.Len(t, bm.Batches[mapdata.Grass].Positions, 2)
	assert.Len(t, bm.Batches[mapdata.Wood].Positions, 1)
	assert.Empty(t, bm.Batches[mapdata.Stone].Positions)

	cam := rl.Camera3D{Position: rl.Vector3{X: 0, Y: 2, Z: 0}}
	bm.Cull(cam, 0)
	assert.Equal(t, 3, bm.VisibleCount())

	bm.Cull(cam, 10)
	assert.Equal(t, 2, bm.VisibleCount())
	assert.Empty(t, bm.Batches[mapdata.Wood].Visible)
}

func TestToColor(t *testing.T) {
	mat, err := mapdata.MaterialFor(mapdata.Dirt)
	require.NoError(t, err)
	assert.Equal(t, rl.NewColor(0x8b, 0x45, 0x13, 255), ToColor(mat.Color))
}

func TestNewRendererViewRadius(t *testing.T) {
	tests := []struct {
		name    string
		radius  float32
		visible int
	}{
		{"sem limite", 0, 2},
		{"limitado", 10, 1},
		{"negativo vira sem limite", -5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mapdata.NewWorld()
			w.Add(util.NewBlockCoord(0, 0, 0), mapdata.Stone)
			w.Add(util.NewBlockCoord(40, 0, 0), mapdata.Stone)

			// Sem janela não há GPU, só o espelho e os lotes
			r := NewRenderer(tt.radius)
			require.False(t, r.gpuReady)
			r.Sync(w)

			r.Batches.Rebuild(r.Models)
			r.Batches.Cull(rl.Camera3D{Position: rl.Vector3{Y: 2}}, r.ViewRadius)
			assert.Equal(t, tt.visible, r.Batches.VisibleCount())
		})
	}
}
