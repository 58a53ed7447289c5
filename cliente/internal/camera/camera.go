package camera

import (
	"math"

	"VoxelSandbox/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch é o limite do pitch (olhar reto para cima/baixo).
const MaxPitch = float32(math.Pi / 2)

// PlayerState é o estado físico do jogador em primeira pessoa.
type PlayerState struct {
	Position  mgl32.Vec3
	Yaw       float32 // Rotação em torno de Y (radianos)
	Pitch     float32 // Rotação em torno de X (radianos), sempre em [-π/2, π/2]
	VelocityY float32
	Grounded  bool
}

// Settings são as constantes do controlador. Todas são por tick, não por segundo.
type Settings struct {
	MoveSpeed    float32
	Sensitivity  float32 // Radianos por pixel
	Gravity      float32
	JumpImpulse  float32
	GroundHeight float32
	FlatMovement bool // Se true, o movimento ignora o pitch (projetado no plano XZ)
}

// DefaultSettings retorna as constantes de referência.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:    0.1,
		Sensitivity:  0.002,
		Gravity:      0.01,
		JumpImpulse:  0.25,
		GroundHeight: 2,
	}
}

// MovementInput são as teclas de movimento pressionadas neste tick.
type MovementInput struct {
	Forward, Back, Left, Right bool
	Jump                       bool
}

// Controller gerencia o movimento e a orientação da câmera em primeira pessoa.
type Controller struct {
	State    PlayerState
	Settings Settings
}

// New cria um controlador com o jogador parado em spawn.
func New(spawn mgl32.Vec3, settings Settings) *Controller {
	return &Controller{
		State:    PlayerState{Position: spawn},
		Settings: settings,
	}
}

// Look aplica um deslocamento do mouse à orientação.
func (c *Controller) Look(dx, dy float32) {
	c.State.Yaw -= dx * c.Settings.Sensitivity
	c.State.Pitch -= dy * c.Settings.Sensitivity
	c.State.Pitch = util.Clamp(c.State.Pitch, -MaxPitch, MaxPitch)
}

// Rotation retorna a matriz de rotação da câmera: Euler (pitch, yaw, 0) na ordem XYZ.
func (c *Controller) Rotation() mgl32.Mat3 {
	return mgl32.Rotate3DX(c.State.Pitch).Mul3(mgl32.Rotate3DY(c.State.Yaw))
}

// Forward retorna a direção de visão (a câmera olha para -Z no espaço local).
func (c *Controller) Forward() mgl32.Vec3 {
	return c.Rotation().Mul3x1(mgl32.Vec3{0, 0, -1})
}

// Up retorna o vetor "para cima" da câmera.
func (c *Controller) Up() mgl32.Vec3 {
	return c.Rotation().Mul3x1(mgl32.Vec3{0, 1, 0})
}

// Ray retorna o raio do centro da tela (primeira pessoa não tem cursor).
func (c *Controller) Ray() util.Ray {
	return util.Ray{Origin: c.State.Position, Direction: c.Forward()}
}

// Tick avança a física um passo fixo: movimento, gravidade, chão e pulo.
func (c *Controller) Tick(in MovementInput) {
	c.move(in)

	// Gravidade
	s := &c.State
	s.VelocityY -= c.Settings.Gravity
	s.Position[1] += s.VelocityY

	if s.Position[1] < c.Settings.GroundHeight {
		s.Position[1] = c.Settings.GroundHeight
		s.VelocityY = 0
		s.Grounded = true
	}

	// Pulo só a partir do chão, avaliado depois do clamp: o tick que pousa já pode pular
	if in.Jump && s.Grounded {
		s.VelocityY = c.Settings.JumpImpulse
		s.Grounded = false
	}
}

// move aplica o deslocamento horizontal relativo à orientação atual.
func (c *Controller) move(in MovementInput) {
	speed := c.Settings.MoveSpeed
	dir := mgl32.Vec3{}

	if in.Forward {
		dir[2] -= speed
	}
	if in.Back {
		dir[2] += speed
	}
	if in.Left {
		dir[0] -= speed
	}
	if in.Right {
		dir[0] += speed
	}
	if dir[0] == 0 && dir[2] == 0 {
		return
	}

	rot := c.Rotation()
	if c.Settings.FlatMovement {
		rot = mgl32.Rotate3DY(c.State.Yaw)
	}
	c.State.Position = c.State.Position.Add(rot.Mul3x1(dir))
}
