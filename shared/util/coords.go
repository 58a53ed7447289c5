package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray representa um raio no espaço 3D (Origem e Direção)
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At retorna o ponto do raio no parâmetro t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// BlockCoord representa uma posição inteira na grade de voxels.
// X = leste/oeste, Y = cima/baixo, Z = sul/norte (mesmo sistema do mundo 3D)
type BlockCoord struct {
	X, Y, Z int32
}

// NewBlockCoord cria uma nova coordenada de bloco.
func NewBlockCoord(x, y, z int32) BlockCoord {
	return BlockCoord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c BlockCoord) Add(other BlockCoord) BlockCoord {
	return BlockCoord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// Sub subtrai duas coordenadas.
func (c BlockCoord) Sub(other BlockCoord) BlockCoord {
	return BlockCoord{
		X: c.X - other.X,
		Y: c.Y - other.Y,
		Z: c.Z - other.Z,
	}
}

// Equals verifica igualdade entre coordenadas.
func (c BlockCoord) Equals(other BlockCoord) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// String retorna a representação em string da coordenada.
func (c BlockCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Vec3 converte a coordenada para o centro do bloco no espaço 3D.
// Os cubos são centrados na posição inteira (meia extensão 0.5 em cada eixo).
func (c BlockCoord) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}

// ManhattanLen retorna |X|+|Y|+|Z|.
func (c BlockCoord) ManhattanLen() int32 {
	return Abs(c.X) + Abs(c.Y) + Abs(c.Z)
}

// RoundCoord arredonda uma posição do mundo para a célula mais próxima da grade.
// Meios sobem (floor(v+0.5)), igual ao Math.round.
func RoundCoord(pos mgl32.Vec3) BlockCoord {
	return BlockCoord{
		X: int32(math.Floor(float64(pos.X()) + 0.5)),
		Y: int32(math.Floor(float64(pos.Y()) + 0.5)),
		Z: int32(math.Floor(float64(pos.Z()) + 0.5)),
	}
}

// ColumnCoord identifica uma coluna (x, z) do terreno.
type ColumnCoord struct {
	X, Z int32
}

// String retorna a representação em string da coluna.
func (c ColumnCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// Face identifica uma das seis faces de um cubo.
type Face uint8

const (
	FaceNone  Face = iota
	FaceEast       // +X
	FaceWest       // -X
	FaceUp         // +Y
	FaceDown       // -Y
	FaceSouth      // +Z
	FaceNorth      // -Z
)

// FaceNormals mapeia faces para a normal unitária (para fora do cubo).
var FaceNormals = map[Face]BlockCoord{
	FaceEast:  {X: 1, Y: 0, Z: 0},
	FaceWest:  {X: -1, Y: 0, Z: 0},
	FaceUp:    {X: 0, Y: 1, Z: 0},
	FaceDown:  {X: 0, Y: -1, Z: 0},
	FaceSouth: {X: 0, Y: 0, Z: 1},
	FaceNorth: {X: 0, Y: 0, Z: -1},
}

// Normal retorna a normal da face. FaceNone retorna o vetor nulo.
func (f Face) Normal() BlockCoord {
	return FaceNormals[f]
}

// String retorna o nome da face.
func (f Face) String() string {
	switch f {
	case FaceEast:
		return "leste"
	case FaceWest:
		return "oeste"
	case FaceUp:
		return "cima"
	case FaceDown:
		return "baixo"
	case FaceSouth:
		return "sul"
	case FaceNorth:
		return "norte"
	}
	return "nenhuma"
}

// faceFromAxis retorna a face pela qual um raio entra num cubo ao cruzar o eixo
// axis (0=X, 1=Y, 2=Z) andando no sentido dir.
func faceFromAxis(axis int, dir float32) Face {
	switch axis {
	case 0:
		if dir > 0 {
			return FaceWest
		}
		return FaceEast
	case 1:
		if dir > 0 {
			return FaceDown
		}
		return FaceUp
	default:
		if dir > 0 {
			return FaceNorth
		}
		return FaceSouth
	}
}

// AddFace retorna a coordenada vizinha através da face.
func (c BlockCoord) AddFace(f Face) BlockCoord {
	return c.Add(f.Normal())
}

// Helpers para direções rápidas
func (c BlockCoord) Up() BlockCoord   { return c.AddFace(FaceUp) }
func (c BlockCoord) Down() BlockCoord { return c.AddFace(FaceDown) }
