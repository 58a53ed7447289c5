package editor

import (
	"math"

	"VoxelSandbox/shared/mapdata"
	"VoxelSandbox/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockSource é a visão somente leitura do mundo que os pickers consultam.
type BlockSource interface {
	Each(fn func(h mapdata.BlockHandle, b mapdata.Block) bool)
	At(pos util.BlockCoord) (mapdata.BlockHandle, bool)
	Get(h mapdata.BlockHandle) (mapdata.Block, bool)
	Bounds() (lo, hi util.BlockCoord, ok bool)
}

// Hit é o resultado de um raycast contra os blocos.
type Hit struct {
	Handle   mapdata.BlockHandle
	Block    mapdata.Block
	Face     util.Face // Face atingida (a normal aponta para fora do bloco)
	Distance float32   // Parâmetro t do raio no ponto de entrada
}

// Picker encontra o bloco mais próximo atingido por um raio.
// maxDist <= 0 significa alcance ilimitado.
type Picker interface {
	Pick(src BlockSource, ray util.Ray, maxDist float32) (Hit, bool)
}

// LinearPicker testa o raio contra o cubo de cada bloco do mundo.
// Custo linear no número de blocos, suficiente para alguns milhares.
type LinearPicker struct{}

func (LinearPicker) Pick(src BlockSource, ray util.Ray, maxDist float32) (Hit, bool) {
	var best Hit
	found := false
	closest := float32(math.Inf(1))
	if maxDist > 0 {
		closest = maxDist
	}

	src.Each(func(h mapdata.BlockHandle, b mapdata.Block) bool {
		t, face, ok := util.IntersectUnitCube(ray, b.Pos)
		if ok && t <= closest {
			if found && t == closest {
				return true // empate: mantém o primeiro encontrado
			}
			closest = t
			best = Hit{Handle: h, Block: b, Face: face, Distance: t}
			found = true
		}
		return true
	})
	return best, found
}

// GridPicker percorre as células da grade ao longo do raio (Amanatides & Woo)
// e consulta o índice de células do mundo, sem varrer todos os blocos.
// Com alcance ilimitado a travessia para ao sair da caixa que envolve os blocos.
type GridPicker struct {
	MaxSteps int // 0 = sem limite de passos
}

func (g GridPicker) Pick(src BlockSource, ray util.Ray, maxDist float32) (Hit, bool) {
	dir := ray.Direction
	if dir.Len() == 0 {
		return Hit{}, false
	}

	if maxDist <= 0 {
		lo, hi, ok := src.Bounds()
		if !ok {
			return Hit{}, false
		}
		maxDist = farthestCorner(ray.Origin, lo, hi) / dir.Len()
	}

	// Células são centradas nos inteiros: a célula de v é floor(v + 0.5)
	cell := util.RoundCoord(ray.Origin)
	cur := [3]int32{cell.X, cell.Y, cell.Z}
	var step [3]int32
	var tMax, tDelta [3]float32

	for axis := 0; axis < 3; axis++ {
		d := dir[axis]
		o := ray.Origin[axis]
		switch {
		case d > 0:
			step[axis] = 1
			boundary := float32(cur[axis]) + util.HalfBlock
			tMax[axis] = (boundary - o) / d
			tDelta[axis] = 1 / d
		case d < 0:
			step[axis] = -1
			boundary := float32(cur[axis]) - util.HalfBlock
			tMax[axis] = (boundary - o) / d
			tDelta[axis] = -1 / d
		default:
			tMax[axis] = float32(math.Inf(1))
			tDelta[axis] = float32(math.Inf(1))
		}
	}

	// A célula da origem é ignorada, como no teste de faces do LinearPicker
	for i := 0; g.MaxSteps <= 0 || i < g.MaxSteps; i++ {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}

		t := tMax[axis]
		if t > maxDist {
			return Hit{}, false
		}

		cur[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		pos := util.NewBlockCoord(cur[0], cur[1], cur[2])
		h, ok := src.At(pos)
		if !ok {
			continue
		}
		b, ok := src.Get(h)
		if !ok {
			continue
		}
		face := entryFace(axis, step[axis])
		return Hit{Handle: h, Block: b, Face: face, Distance: t}, true
	}
	return Hit{}, false
}

// farthestCorner retorna a distância da origem até o canto mais distante da caixa de cubos.
func farthestCorner(origin mgl32.Vec3, lo, hi util.BlockCoord) float32 {
	var d mgl32.Vec3
	l, h := lo.Vec3(), hi.Vec3()
	for axis := 0; axis < 3; axis++ {
		a := util.Abs32(origin[axis] - (l[axis] - util.HalfBlock))
		b := util.Abs32(origin[axis] - (h[axis] + util.HalfBlock))
		d[axis] = max(a, b)
	}
	return d.Len()
}

// entryFace retorna a face pela qual o raio entrou na célula ao andar step no eixo.
func entryFace(axis int, step int32) util.Face {
	switch axis {
	case 0:
		if step > 0 {
			return util.FaceWest
		}
		return util.FaceEast
	case 1:
		if step > 0 {
			return util.FaceDown
		}
		return util.FaceUp
	default:
		if step > 0 {
			return util.FaceNorth
		}
		return util.FaceSouth
	}
}

// Nomes dos pickers aceitos na configuração.
const (
	PickerLinear = "linear"
	PickerGrid   = "grid"
)

// NewPicker cria o picker pelo nome configurado. Nome desconhecido usa o linear.
func NewPicker(name string) Picker {
	if name == PickerGrid {
		return GridPicker{}
	}
	return LinearPicker{}
}
