package util

import "math"

// HalfBlock é a meia extensão de um bloco: o cubo da posição P ocupa [P-0.5, P+0.5].
const HalfBlock float32 = 0.5

// parallelEpsilon abaixo disso o raio é tratado como paralelo ao plano do eixo.
const parallelEpsilon = 1e-8

// IntersectUnitCube testa o raio contra o cubo unitário centrado em center (método das
// placas / slab test). Retorna o parâmetro t de entrada e a face atingida.
// Cubos que contêm a origem do raio não contam: só faces voltadas para o raio são atingidas.
func IntersectUnitCube(ray Ray, center BlockCoord) (float32, Face, bool) {
	tNear := float32(math.Inf(-1))
	tFar := float32(math.Inf(1))
	face := FaceNone
	c := center.Vec3()

	for axis := 0; axis < 3; axis++ {
		o := ray.Origin[axis]
		d := ray.Direction[axis]
		lo := c[axis] - HalfBlock
		hi := c[axis] + HalfBlock

		if d > -parallelEpsilon && d < parallelEpsilon {
			// Paralelo: ou está dentro da placa, ou nunca cruza
			if o < lo || o > hi {
				return 0, FaceNone, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
			face = faceFromAxis(axis, d)
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return 0, FaceNone, false
		}
	}

	// Cubo atrás da câmera, ou origem dentro dele
	if tFar < 0 || tNear < 0 || face == FaceNone {
		return 0, FaceNone, false
	}
	return tNear, face, true
}
