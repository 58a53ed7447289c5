package editor

import (
	"log"

	"VoxelSandbox/shared/mapdata"
	"VoxelSandbox/shared/util"
)

// World é o que o Editor precisa do mundo: consulta e mutação.
type World interface {
	BlockSource
	Add(pos util.BlockCoord, t mapdata.BlockType) (mapdata.BlockHandle, bool)
	Remove(h mapdata.BlockHandle) bool
}

// Editor quebra e coloca blocos com base no raio da câmera.
type Editor struct {
	world  World
	picker Picker

	// Reach é o alcance máximo do raio (0 = ilimitado).
	Reach float32
}

// New cria um editor sobre o mundo. picker nil usa o LinearPicker.
func New(world World, picker Picker) *Editor {
	if picker == nil {
		picker = LinearPicker{}
	}
	return &Editor{world: world, picker: picker}
}

// Target retorna o bloco sob a mira, sem alterar nada (usado pelo destaque do HUD).
func (e *Editor) Target(ray util.Ray) (Hit, bool) {
	return e.picker.Pick(e.world, ray, e.Reach)
}

// Primary quebra o bloco mais próximo atingido pelo raio. Sem acerto não faz nada.
func (e *Editor) Primary(ray util.Ray) (mapdata.Block, bool) {
	hit, ok := e.Target(ray)
	if !ok {
		return mapdata.Block{}, false
	}
	if !e.world.Remove(hit.Handle) {
		return mapdata.Block{}, false
	}
	log.Printf("[Editor] Bloco quebrado: %s em %s", hit.Block.Type, hit.Block.Pos)
	return hit.Block, true
}

// Secondary coloca um bloco do tipo t encostado na face atingida.
// Se a célula vizinha já estiver ocupada a colocação é rejeitada.
func (e *Editor) Secondary(ray util.Ray, t mapdata.BlockType) (mapdata.Block, bool) {
	hit, ok := e.Target(ray)
	if !ok {
		return mapdata.Block{}, false
	}

	pos := PlacementFor(hit)
	if _, ok := e.world.Add(pos, t); !ok {
		log.Printf("[Editor] Colocação rejeitada em %s (ocupado ou tipo inválido)", pos)
		return mapdata.Block{}, false
	}
	log.Printf("[Editor] Bloco colocado: %s em %s (face %s)", t, pos, hit.Face)
	return mapdata.Block{Pos: pos, Type: t}, true
}

// PlacementFor retorna a célula adjacente à face atingida: round(P + N).
func PlacementFor(hit Hit) util.BlockCoord {
	return util.RoundCoord(hit.Block.Pos.Vec3().Add(hit.Face.Normal().Vec3()))
}
