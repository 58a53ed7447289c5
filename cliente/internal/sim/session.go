// Package sim junta mundo, jogador, editor e entrada num passo por frame,
// sem depender do backend gráfico.
package sim

import (
	"log"

	"VoxelSandbox/cliente/internal/camera"
	"VoxelSandbox/cliente/internal/editor"
	"VoxelSandbox/cliente/internal/input"
	"VoxelSandbox/shared/config"
	"VoxelSandbox/shared/mapdata"

	"github.com/go-gl/mathgl/mgl32"
)

// eventQueueCapacity comporta vários frames de eventos enfileirados.
const eventQueueCapacity = 256

// Session é o estado de uma partida: criado do zero a cada execução e descartado no fim.
type Session struct {
	World      *mapdata.World
	Terrain    mapdata.Terrain
	Controller *camera.Controller
	Editor     *editor.Editor
	Input      *input.State
	Events     *input.Queue

	Ticks uint64
}

// NewSession monta uma sessão a partir da configuração e gera o terreno.
// A seed já deve estar resolvida (0 é uma seed válida aqui).
func NewSession(cfg *config.Config, seed int64) (*Session, error) {
	heights, err := mapdata.NewHeightSource(cfg.Terrain, seed)
	if err != nil {
		return nil, err
	}

	world := mapdata.NewWorld()
	terrain := world.Generate(cfg.WorldRadius, heights)

	settings := camera.Settings{
		MoveSpeed:    cfg.MoveSpeed,
		Sensitivity:  cfg.MouseSensitivity,
		Gravity:      cfg.Gravity,
		JumpImpulse:  cfg.JumpImpulse,
		GroundHeight: cfg.GroundHeight,
		FlatMovement: cfg.FlatMovement,
	}
	spawn := mgl32.Vec3{cfg.SpawnPosition[0], cfg.SpawnPosition[1], cfg.SpawnPosition[2]}

	ed := editor.New(world, editor.NewPicker(cfg.Picker))
	ed.Reach = cfg.Reach

	log.Printf("[Sim] Sessão criada: seed %d, terreno %q, picker %q", seed, cfg.Terrain, cfg.Picker)

	return &Session{
		World:      world,
		Terrain:    terrain,
		Controller: camera.New(spawn, settings),
		Editor:     ed,
		Input:      input.NewState(),
		Events:     input.NewQueue(eventQueueCapacity),
	}, nil
}

// Step executa um tick: aplica os eventos pendentes (cliques viram edições na ordem
// em que chegaram), aplica o olhar e avança a física do jogador.
func (s *Session) Step() {
	s.Events.Drain(s.handle)
	s.applyLook()

	s.Controller.Tick(camera.MovementInput{
		Forward: s.Input.Held(input.KeyForward),
		Back:    s.Input.Held(input.KeyBack),
		Left:    s.Input.Held(input.KeyLeft),
		Right:   s.Input.Held(input.KeyRight),
		Jump:    s.Input.Held(input.KeyJump),
	})
	s.Ticks++
}

func (s *Session) handle(ev input.Event) {
	s.Input.Apply(ev)
	if ev.Kind != input.EventMouseDown {
		return
	}

	// O raio usa a orientação após os movimentos de mouse anteriores ao clique
	s.applyLook()
	for _, b := range s.Input.ConsumeClicks() {
		s.click(b)
	}
}

func (s *Session) applyLook() {
	dx, dy := s.Input.ConsumeMouseDelta()
	if !s.Input.PointerCaptured() || (dx == 0 && dy == 0) {
		return
	}
	s.Controller.Look(dx, dy)
}

func (s *Session) click(b input.Button) {
	ray := s.Controller.Ray()
	switch b {
	case input.ButtonPrimary:
		s.Editor.Primary(ray)
	case input.ButtonSecondary:
		s.Editor.Secondary(ray, s.Input.SelectedBlockType())
	}
}

// Target retorna o bloco sob a mira neste momento.
func (s *Session) Target() (editor.Hit, bool) {
	return s.Editor.Target(s.Controller.Ray())
}
