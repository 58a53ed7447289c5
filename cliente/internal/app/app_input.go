package app

import (
	"log"

	"VoxelSandbox/cliente/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBindings mapeia as teclas físicas para as ações de movimento.
var keyBindings = map[int32]input.Key{
	rl.KeyW:     input.KeyForward,
	rl.KeyS:     input.KeyBack,
	rl.KeyA:     input.KeyLeft,
	rl.KeyD:     input.KeyRight,
	rl.KeySpace: input.KeyJump,
}

// digitKeys são as teclas de seleção de slot, na ordem 1..5.
var digitKeys = [...]int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}

// pollInput lê o teclado e o mouse do raylib e converte em eventos para a sessão.
func (a *App) pollInput() {
	q := a.session.Events

	for k, action := range keyBindings {
		if rl.IsKeyPressed(k) {
			q.Push(input.Event{Kind: input.EventKeyDown, Key: action})
		}
		if rl.IsKeyReleased(k) {
			q.Push(input.Event{Kind: input.EventKeyUp, Key: action})
		}
	}

	for i, k := range digitKeys {
		if rl.IsKeyPressed(k) {
			q.Push(input.Event{Kind: input.EventDigit, Digit: i + 1})
		}
	}

	a.pollPointer(q)
	a.pollToggles()
}

// pollPointer trata captura do mouse, movimento e cliques.
func (a *App) pollPointer(q *input.Queue) {
	// ESC libera o mouse
	if a.State == StatePlaying && rl.IsKeyPressed(rl.KeyEscape) {
		rl.EnableCursor()
		a.State = StatePaused
		q.Push(input.Event{Kind: input.EventPointerUnlock})
		log.Println("[App] Mouse liberado")
		return
	}

	if a.State == StatePaused {
		// Com o mouse livre o clique só pede a captura, sem editar o mundo
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			rl.DisableCursor()
			a.State = StatePlaying
			q.Push(input.Event{Kind: input.EventPointerLock})
			log.Println("[App] Mouse capturado")
		}
		return
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		q.Push(input.Event{Kind: input.EventMouseMove, DX: delta.X, DY: delta.Y})
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		q.Push(input.Event{Kind: input.EventMouseDown, Button: input.ButtonPrimary})
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		q.Push(input.Event{Kind: input.EventMouseDown, Button: input.ButtonSecondary})
	}
}

// pollToggles processa atalhos de visualização.
func (a *App) pollToggles() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle grid
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	// Toggle wireframe
	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.WireframeMode = !a.Config.WireframeMode
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Salvar configuração atual (F5)
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := a.Config.Save(); err != nil {
			log.Printf("[App] Erro ao salvar configuração: %v", err)
		} else {
			log.Printf("[App] Configuração salva em %s", a.Config.Path())
		}
	}
}
