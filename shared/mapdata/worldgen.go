package mapdata

import (
	"fmt"
	"log"
	"math/rand"

	"VoxelSandbox/shared/util"

	"github.com/aquilax/go-perlin"
)

// Alturas de superfície permitidas pelo gerador.
const (
	MinSurfaceHeight int32 = 0
	MaxSurfaceHeight int32 = 1
)

// HeightSource escolhe a altura da superfície de uma coluna.
type HeightSource interface {
	Height(x, z int32) int32
}

// Terrain registra a altura escolhida para cada coluna gerada.
type Terrain map[util.ColumnCoord]int32

// Generate preenche o mundo com terreno de uma camada: para cada (x, z) em [-radius, radius)
// coloca Grama na altura h e Terra em h-1. Sem cavernas nem saliências.
func (w *World) Generate(radius int32, heights HeightSource) Terrain {
	terrain := make(Terrain, 4*int(radius)*int(radius))
	for x := -radius; x < radius; x++ {
		for z := -radius; z < radius; z++ {
			h := heights.Height(x, z)
			w.Add(util.NewBlockCoord(x, h, z), Grass)
			w.Add(util.NewBlockCoord(x, h-1, z), Dirt)
			terrain[util.ColumnCoord{X: x, Z: z}] = h
		}
	}
	log.Printf("[World] Terreno gerado: raio %d, %d colunas, %d blocos", radius, len(terrain), w.Len())
	return terrain
}

// RandomHeights sorteia cada coluna uniformemente entre as alturas permitidas.
type RandomHeights struct {
	rng *rand.Rand
}

// NewRandomHeights cria uma fonte aleatória reprodutível pela seed.
func NewRandomHeights(seed int64) *RandomHeights {
	return &RandomHeights{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomHeights) Height(_, _ int32) int32 {
	return MinSurfaceHeight + int32(r.rng.Intn(int(MaxSurfaceHeight-MinSurfaceHeight+1)))
}

// NoiseHeights usa ruído de Perlin para colinas contínuas, ainda limitadas a {0, 1}.
type NoiseHeights struct {
	noise *perlin.Perlin
	scale float64
}

// NewNoiseHeights cria uma fonte de ruído de Perlin com a seed dada.
func NewNoiseHeights(seed int64) *NoiseHeights {
	alpha := 2.0  // Suavização
	beta := 2.0   // Frequência
	n := int32(3) // Oitavas
	return &NoiseHeights{
		noise: perlin.NewPerlin(alpha, beta, n, seed),
		scale: 0.15,
	}
}

func (n *NoiseHeights) Height(x, z int32) int32 {
	v := n.noise.Noise2D(float64(x)*n.scale, float64(z)*n.scale)
	if v < 0 {
		return MinSurfaceHeight
	}
	return MaxSurfaceHeight
}

// Nomes das fontes de altura aceitas na configuração.
const (
	TerrainRandom = "random"
	TerrainNoise  = "noise"
)

// NewHeightSource cria a fonte de altura pelo nome configurado.
func NewHeightSource(name string, seed int64) (HeightSource, error) {
	switch name {
	case TerrainRandom, "":
		return NewRandomHeights(seed), nil
	case TerrainNoise:
		return NewNoiseHeights(seed), nil
	}
	return nil, fmt.Errorf("fonte de terreno desconhecida %q", name)
}
