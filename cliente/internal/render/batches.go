package render

import (
	"VoxelSandbox/shared/mapdata"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BlockBatch agrupa as posições de todos os blocos do mesmo tipo (um modelo por tipo).
type BlockBatch struct {
	Type      mapdata.BlockType
	Positions []rl.Vector3
	Visible   []rl.Vector3 // Buffer reaproveitado para posições que passaram no culling
}

// Draw desenha as posições visíveis com o modelo do tipo.
func (b *BlockBatch) Draw(model rl.Model, wireframe bool) {
	for _, pos := range b.Visible {
		if wireframe {
			rl.DrawCubeWires(pos, 1, 1, 1, rl.Black)
		} else {
			rl.DrawModel(model, pos, 1.0, rl.White)
		}
	}
}

// BatchManager mantém um lote por tipo de bloco, reconstruído só quando o mundo muda.
type BatchManager struct {
	Batches map[mapdata.BlockType]*BlockBatch
}

func NewBatchManager() *BatchManager {
	bm := &BatchManager{Batches: make(map[mapdata.BlockType]*BlockBatch)}
	for _, t := range mapdata.AllBlockTypes() {
		bm.Batches[t] = &BlockBatch{
			Type:      t,
			Positions: make([]rl.Vector3, 0, 2048),
			Visible:   make([]rl.Vector3, 0, 2048),
		}
	}
	return bm
}

// Rebuild reagrupa os modelos por tipo sem desalocar os buffers.
func (bm *BatchManager) Rebuild(models map[mapdata.BlockHandle]*BlockModel) {
	for _, b := range bm.Batches {
		b.Positions = b.Positions[:0]
	}
	for _, m := range models {
		if b, ok := bm.Batches[m.Type]; ok {
			b.Positions = append(b.Positions, m.Position)
		}
	}
}

// Cull filtra as posições pela distância da câmera (viewRadius <= 0 desliga o culling).
func (bm *BatchManager) Cull(cam rl.Camera3D, viewRadius float32) {
	radiusSq := viewRadius * viewRadius
	for _, b := range bm.Batches {
		b.Visible = b.Visible[:0]
		for _, pos := range b.Positions {
			if viewRadius > 0 {
				d := rl.Vector3Subtract(pos, cam.Position)
				if d.X*d.X+d.Y*d.Y+d.Z*d.Z > radiusSq {
					continue
				}
			}
			b.Visible = append(b.Visible, pos)
		}
	}
}

// VisibleCount retorna o total de blocos desenhados no último Cull.
func (bm *BatchManager) VisibleCount() int {
	n := 0
	for _, b := range bm.Batches {
		n += len(b.Visible)
	}
	return n
}
