package mapdata

import (
	"VoxelSandbox/shared/util"

	"github.com/mlange-42/ark/ecs"
)

// Block é um voxel colocado no mundo: posição inteira na grade e tipo.
type Block struct {
	Pos  util.BlockCoord
	Type BlockType
}

// BlockHandle identifica um bloco vivo do mundo.
// É uma entidade ECS: a geração embutida garante que um handle antigo nunca
// aponte para um bloco novo criado na mesma célula.
type BlockHandle struct {
	entity ecs.Entity
}

// IsZero indica um handle vazio (nenhum bloco).
func (h BlockHandle) IsZero() bool {
	return h.entity.IsZero()
}

// Listener recebe as mutações do mundo (o Renderer mantém seu espelho da cena assim).
type Listener interface {
	BlockAdded(h BlockHandle, b Block)
	BlockRemoved(h BlockHandle, b Block)
}

// World guarda todos os blocos vivos.
// Cada bloco é uma entidade com um componente Block; cells indexa a entidade por célula,
// então existe no máximo um bloco por (x, y, z).
// Não é thread-safe: todo acesso acontece na thread do loop principal.
type World struct {
	ecs    *ecs.World
	blocks *ecs.Map1[Block]
	filter *ecs.Filter1[Block]
	cells  map[util.BlockCoord]ecs.Entity

	// Caixa que envolve todos os blocos já colocados (não encolhe ao remover)
	minCell, maxCell util.BlockCoord
	hasBounds        bool

	listener Listener
}

// NewWorld cria um mundo vazio.
func NewWorld() *World {
	w := ecs.NewWorld()
	return &World{
		ecs:    w,
		blocks: ecs.NewMap1[Block](w),
		filter: ecs.NewFilter1[Block](w),
		cells:  make(map[util.BlockCoord]ecs.Entity),
	}
}

// SetListener registra quem deve ser notificado das mutações (nil desliga).
func (w *World) SetListener(l Listener) {
	w.listener = l
}

// Add insere um bloco na posição. Retorna false se a célula já estiver ocupada
// ou se o tipo for inválido; nesse caso o mundo não muda.
func (w *World) Add(pos util.BlockCoord, t BlockType) (BlockHandle, bool) {
	if !t.Valid() {
		return BlockHandle{}, false
	}
	if _, occupied := w.cells[pos]; occupied {
		return BlockHandle{}, false
	}

	b := Block{Pos: pos, Type: t}
	e := w.blocks.NewEntity(&b)
	w.cells[pos] = e
	w.grow(pos)

	h := BlockHandle{entity: e}
	if w.listener != nil {
		w.listener.BlockAdded(h, b)
	}
	return h, true
}

// Remove apaga o bloco do handle. Handles desconhecidos ou já removidos são ignorados
// (clique duplo não é erro). Retorna true se algo foi removido.
func (w *World) Remove(h BlockHandle) bool {
	if h.IsZero() || !w.ecs.Alive(h.entity) {
		return false
	}

	b := *w.blocks.Get(h.entity)
	if cur, ok := w.cells[b.Pos]; ok && cur == h.entity {
		delete(w.cells, b.Pos)
	}
	w.ecs.RemoveEntity(h.entity)

	if w.listener != nil {
		w.listener.BlockRemoved(h, b)
	}
	return true
}

// Get retorna o bloco de um handle vivo.
func (w *World) Get(h BlockHandle) (Block, bool) {
	if h.IsZero() || !w.ecs.Alive(h.entity) {
		return Block{}, false
	}
	return *w.blocks.Get(h.entity), true
}

// At retorna o bloco que ocupa a célula, se houver.
func (w *World) At(pos util.BlockCoord) (BlockHandle, bool) {
	e, ok := w.cells[pos]
	if !ok {
		return BlockHandle{}, false
	}
	return BlockHandle{entity: e}, true
}

// Bounds retorna a caixa de células que contém todos os blocos já colocados.
// ok é false se o mundo nunca teve blocos (ou foi limpo).
func (w *World) Bounds() (lo, hi util.BlockCoord, ok bool) {
	return w.minCell, w.maxCell, w.hasBounds
}

func (w *World) grow(pos util.BlockCoord) {
	if !w.hasBounds {
		w.minCell, w.maxCell, w.hasBounds = pos, pos, true
		return
	}
	w.minCell = util.NewBlockCoord(min(w.minCell.X, pos.X), min(w.minCell.Y, pos.Y), min(w.minCell.Z, pos.Z))
	w.maxCell = util.NewBlockCoord(max(w.maxCell.X, pos.X), max(w.maxCell.Y, pos.Y), max(w.maxCell.Z, pos.Z))
}

// Len retorna o número de blocos vivos.
func (w *World) Len() int {
	return len(w.cells)
}

// Each percorre todos os blocos (ordem não especificada). Parar retornando false.
// O mundo não pode ser alterado dentro de fn.
func (w *World) Each(fn func(h BlockHandle, b Block) bool) {
	query := w.filter.Query()
	for query.Next() {
		if !fn(BlockHandle{entity: query.Entity()}, *query.Get()) {
			query.Close()
			return
		}
	}
}

// Blocks retorna uma cópia de todos os blocos vivos.
func (w *World) Blocks() []Block {
	out := make([]Block, 0, len(w.cells))
	w.Each(func(_ BlockHandle, b Block) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Clear remove todos os blocos, notificando o listener de cada remoção.
func (w *World) Clear() {
	handles := make([]BlockHandle, 0, len(w.cells))
	w.Each(func(h BlockHandle, _ Block) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		w.Remove(h)
	}
	w.hasBounds = false
}
