package render

import (
	"VoxelSandbox/shared/mapdata"
	"VoxelSandbox/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BlockModel é o espelho renderizável de um bloco do mundo.
type BlockModel struct {
	Pos      util.BlockCoord
	Type     mapdata.BlockType
	Position rl.Vector3 // Centro do cubo no espaço 3D
}

func newBlockModel(b mapdata.Block) *BlockModel {
	return &BlockModel{
		Pos:      b.Pos,
		Type:     b.Type,
		Position: rl.Vector3{X: float32(b.Pos.X), Y: float32(b.Pos.Y), Z: float32(b.Pos.Z)},
	}
}
