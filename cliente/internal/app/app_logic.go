package app

import (
	"VoxelSandbox/cliente/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// camera3D monta a câmera do raylib a partir do estado do jogador.
func (a *App) camera3D() rl.Camera3D {
	ctrl := a.session.Controller
	pos := ctrl.State.Position
	target := pos.Add(ctrl.Forward())

	return rl.Camera3D{
		Position:   toVector3(pos),
		Target:     toVector3(target),
		Up:         toVector3(ctrl.Up()),
		Fovy:       a.Config.FOV,
		Projection: rl.CameraPerspective,
	}
}

// currentTarget retorna o bloco sob a mira, só com o mouse capturado.
func (a *App) currentTarget() (editor.Hit, bool) {
	if a.State != StatePlaying {
		return editor.Hit{}, false
	}
	return a.session.Target()
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
