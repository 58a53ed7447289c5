package app

import (
	"fmt"

	"VoxelSandbox/cliente/internal/render"
	"VoxelSandbox/shared/mapdata"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(render.SkyColor)

	a.drawScene()
	a.drawCrosshair()
	a.drawHotbar()
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseOverlay()
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	cam := a.camera3D()
	rl.BeginMode3D(cam)

	// Grid de referência
	if a.Config.ShowGrid {
		rl.DrawGrid(2*a.Config.WorldRadius, 1.0)
	}

	a.renderer.Draw(cam, a.Config.WireframeMode)
	a.visible = a.renderer.Batches.VisibleCount()

	// Destaque do bloco sob a mira
	if hit, ok := a.currentTarget(); ok {
		a.renderer.DrawSelection(hit.Block.Pos)
	}

	rl.EndMode3D()
}

// drawCrosshair desenha a mira no centro da tela.
func (a *App) drawCrosshair() {
	cx := int32(rl.GetScreenWidth()) / 2
	cy := int32(rl.GetScreenHeight()) / 2
	size := int32(8)

	rl.DrawLine(cx-size, cy, cx+size, cy, rl.White)
	rl.DrawLine(cx, cy-size, cx, cy+size, rl.White)
}

// drawHotbar desenha os slots de material com o selecionado em destaque.
func (a *App) drawHotbar() {
	slot := int32(48)
	gap := int32(6)
	n := int32(mapdata.SlotCount())
	total := n*slot + (n-1)*gap
	x := (int32(rl.GetScreenWidth()) - total) / 2
	y := int32(rl.GetScreenHeight()) - slot - 20

	for i, t := range mapdata.AllBlockTypes() {
		mat, err := mapdata.MaterialFor(t)
		if err != nil {
			continue
		}
		sx := x + int32(i)*(slot+gap)

		rl.DrawRectangle(sx, y, slot, slot, rl.NewColor(0, 0, 0, 150))
		rl.DrawRectangle(sx+6, y+6, slot-12, slot-12, render.ToColor(mat.Color))

		border := rl.NewColor(100, 100, 100, 255)
		if i == a.session.Input.Selected {
			border = rl.White
			rl.DrawRectangleLines(sx-2, y-2, slot+4, slot+4, border)
		}
		rl.DrawRectangleLines(sx, y, slot, slot, border)
		rl.DrawText(fmt.Sprintf("%d", i+1), sx+4, y+2, 12, rl.White)
	}

	// Nome do material selecionado acima da barra
	name := a.session.Input.SelectedBlockType().String()
	w := rl.MeasureText(name, 18)
	rl.DrawText(name, (int32(rl.GetScreenWidth())-w)/2, y-24, 18, rl.White)
}

// drawHUD desenha a interface de debug.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(320)
	height := int32(200)
	x := int32(10)
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	// Divisor
	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	st := a.session.Controller.State
	rl.DrawText("JOGADOR", x+10, y+45, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Posição: (%.2f, %.2f, %.2f)", st.Position.X(), st.Position.Y(), st.Position.Z()), x+10, y+60, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Yaw: %.2f  Pitch: %.2f  No chão: %v", st.Yaw, st.Pitch, st.Grounded), x+10, y+80, 14, rl.LightGray)

	rl.DrawLine(x+10, y+100, x+width-10, y+100, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("MUNDO", x+10, y+110, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Blocos: %d (visíveis %d)  Seed: %d", a.session.World.Len(), a.visible, a.seed), x+10, y+125, 14, rl.LightGray)

	target := "nenhum"
	if hit, ok := a.currentTarget(); ok {
		target = fmt.Sprintf("%s %s face %s", hit.Block.Type, hit.Block.Pos, hit.Face)
	}
	rl.DrawText(fmt.Sprintf("Mira: %s", target), x+10, y+145, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Ticks: %d  Eventos: %d  Descartados: %d", a.session.Ticks, a.lastEvents, a.session.Events.Dropped()), x+10, y+160, 14, rl.LightGray)

	wireframeExtra := ""
	if a.Config.WireframeMode {
		wireframeExtra = " [WIREFRAME ON]"
	}
	rl.DrawText(fmt.Sprintf("F3: HUD | F4: Wire | G: Grid%s", wireframeExtra), x+10, y+180, 14, rl.SkyBlue)
}

// drawPauseOverlay escurece a tela enquanto o mouse está livre.
func (a *App) drawPauseOverlay() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 120))

	title := "CLIQUE PARA JOGAR"
	titleWidth := rl.MeasureText(title, 32)
	rl.DrawText(title, (screenWidth-titleWidth)/2, screenHeight/2-40, 32, rl.Gold)

	tip := "WASD: mover | Espaço: pular | Esq: quebrar | Dir: colocar | 1-5: material | ESC: liberar mouse"
	tipWidth := rl.MeasureText(tip, 16)
	rl.DrawText(tip, (screenWidth-tipWidth)/2, screenHeight/2+10, 16, rl.LightGray)
}
