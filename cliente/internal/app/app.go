package app

import (
	"log"
	"time"

	"VoxelSandbox/cliente/internal/render"
	"VoxelSandbox/cliente/internal/sim"
	"VoxelSandbox/shared/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StatePlaying AppState = iota // Jogando com o mouse capturado
	StatePaused                  // Mouse livre (ESC); cliques só recapturam o mouse
)

// App é a aplicação principal do VoxelSandbox.
type App struct {
	Config *config.Config
	State  AppState

	session  *sim.Session
	renderer *render.Renderer
	seed     int64

	// Informações de debug
	frameCount int
	lastEvents int // Eventos aplicados no último tick
	visible    int // Blocos desenhados no último frame
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &App{
		Config: cfg,
		State:  StatePaused,
		seed:   seed,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC libera o mouse em vez de fechar a janela

	log.Println("[App] Janela inicializada com sucesso")
	log.Printf("[App] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.renderer = render.NewRenderer(a.Config.ViewDistance)

	session, err := sim.NewSession(a.Config, a.seed)
	if err != nil {
		log.Printf("[App] Falha ao criar sessão: %v", err)
		rl.CloseWindow()
		return
	}
	a.session = session
	a.renderer.Sync(session.World)
	session.World.SetListener(a.renderer)

	// Loop principal: um tick de simulação por frame
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	// Cleanup
	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica do jogo a cada frame.
func (a *App) update() {
	a.frameCount++
	a.pollInput()

	// A física segue rodando com o mouse livre; só o olhar e os cliques dependem da captura
	a.lastEvents = a.session.Events.Len()
	a.session.Step()
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.session != nil {
		a.session.World.SetListener(nil)
		log.Printf("[App] Sessão encerrada após %d ticks, %d blocos no mundo", a.session.Ticks, a.session.World.Len())
	}
	if a.renderer != nil {
		a.renderer.Unload()
	}
}
