package mapdata

import (
	"errors"
	"fmt"

	"VoxelSandbox/shared/util"
)

// ErrInvalidBlockType indica um índice de tipo de bloco fora da tabela.
var ErrInvalidBlockType = errors.New("tipo de bloco inválido")

// BlockType é o tipo visual de um bloco. O valor coincide com o slot do inventário (0..4).
type BlockType uint8

const (
	Grass BlockType = iota
	Dirt
	Stone
	Wood
	Sand

	blockTypeCount
)

// TextureSize é o lado (em pixels) das texturas geradas para cada material.
const TextureSize = 16

// Material descreve a aparência de um tipo de bloco.
type Material struct {
	Name    string    // Nome legível (HUD)
	Texture string    // Chave da textura gerada no Renderer
	Color   util.RGBA // Cor sólida da textura pixel art
}

// materials é a tabela fixa de materiais, indexada por BlockType.
// Inicializada uma vez no carregamento do pacote e nunca alterada.
var materials = [blockTypeCount]Material{
	Grass: {Name: "Grama", Texture: "grass", Color: util.MustParseHexColor("#3cb371")},
	Dirt:  {Name: "Terra", Texture: "dirt", Color: util.MustParseHexColor("#8b4513")},
	Stone: {Name: "Pedra", Texture: "stone", Color: util.MustParseHexColor("#888888")},
	Wood:  {Name: "Madeira", Texture: "wood", Color: util.MustParseHexColor("#a0522d")},
	Sand:  {Name: "Areia", Texture: "sand", Color: util.MustParseHexColor("#f4e99b")},
}

// Valid verifica se o tipo existe na tabela.
func (t BlockType) Valid() bool {
	return t < blockTypeCount
}

// String retorna o nome do material.
func (t BlockType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("BlockType(%d)", uint8(t))
	}
	return materials[t].Name
}

// MaterialFor retorna o material de um tipo de bloco.
func MaterialFor(t BlockType) (Material, error) {
	if !t.Valid() {
		return Material{}, fmt.Errorf("%w: %d", ErrInvalidBlockType, uint8(t))
	}
	return materials[t], nil
}

// BlockTypeForSlot converte um slot do inventário (0..4) no tipo de bloco.
func BlockTypeForSlot(slot int) (BlockType, error) {
	if slot < 0 || slot >= int(blockTypeCount) {
		return Grass, fmt.Errorf("%w: slot %d", ErrInvalidBlockType, slot)
	}
	return BlockType(slot), nil
}

// SlotCount é o número de slots do inventário (um por tipo de bloco).
func SlotCount() int {
	return int(blockTypeCount)
}

// AllBlockTypes retorna todos os tipos na ordem dos slots.
func AllBlockTypes() []BlockType {
	types := make([]BlockType, 0, blockTypeCount)
	for t := BlockType(0); t < blockTypeCount; t++ {
		types = append(types, t)
	}
	return types
}
