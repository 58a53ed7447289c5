package render

import (
	"log"
	"unsafe"

	"VoxelSandbox/shared/mapdata"
	"VoxelSandbox/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SkyColor é a cor de fundo (azul céu).
var SkyColor = rl.NewColor(0x87, 0xce, 0xeb, 255)

// Renderer mantém uma cópia da cena (um BlockModel por bloco vivo) e desenha os cubos.
// Implementa mapdata.Listener: o mundo avisa cada bloco criado ou removido.
type Renderer struct {
	Models map[mapdata.BlockHandle]*BlockModel

	// Texturas pixel art geradas, por chave de material
	Textures map[string]rl.Texture2D

	// Um modelo de cubo por tipo de bloco (mesma malha, textura diferente)
	CubeModels map[mapdata.BlockType]rl.Model

	Batches *BatchManager
	dirty   bool

	// ViewRadius é a distância máxima de desenho (0 = sem limite).
	ViewRadius float32

	gpuReady bool
}

// NewRenderer cria um novo renderizador com o raio de desenho dado (0 = sem limite).
// Recursos de GPU só são criados se a janela já existir.
func NewRenderer(viewRadius float32) *Renderer {
	r := &Renderer{
		Models:     make(map[mapdata.BlockHandle]*BlockModel),
		Textures:   make(map[string]rl.Texture2D),
		CubeModels: make(map[mapdata.BlockType]rl.Model),
		Batches:    NewBatchManager(),
		ViewRadius: max(viewRadius, 0),
	}

	if rl.IsWindowReady() {
		r.generateTextures()
		r.loadCubeModels()
		r.gpuReady = true
	}

	log.Printf("[Renderer] NewRenderer() finalizado. Modelos=%d, Texturas=%d", len(r.CubeModels), len(r.Textures))
	return r
}

// BlockAdded espelha um bloco novo.
func (r *Renderer) BlockAdded(h mapdata.BlockHandle, b mapdata.Block) {
	r.Models[h] = newBlockModel(b)
	r.dirty = true
}

// BlockRemoved retira o bloco do espelho.
func (r *Renderer) BlockRemoved(h mapdata.BlockHandle, _ mapdata.Block) {
	delete(r.Models, h)
	r.dirty = true
}

// Sync reconstrói o espelho a partir do estado atual do mundo.
func (r *Renderer) Sync(world *mapdata.World) {
	r.Models = make(map[mapdata.BlockHandle]*BlockModel, world.Len())
	world.Each(func(h mapdata.BlockHandle, b mapdata.Block) bool {
		r.Models[h] = newBlockModel(b)
		return true
	})
	r.dirty = true
}

// generateTextures cria uma textura 16x16 de cor sólida para cada material.
func (r *Renderer) generateTextures() {
	for _, t := range mapdata.AllBlockTypes() {
		mat, err := mapdata.MaterialFor(t)
		if err != nil {
			log.Printf("[Renderer] AVISO: %v", err)
			continue
		}
		img := rl.GenImageColor(mapdata.TextureSize, mapdata.TextureSize, ToColor(mat.Color))
		tex := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if tex.ID == 0 {
			log.Printf("[Renderer] FALHA ao gerar textura: %s", mat.Texture)
			continue
		}
		rl.SetTextureFilter(tex, rl.FilterPoint) // Pixel art sem blur
		r.Textures[mat.Texture] = tex
	}
}

// loadCubeModels cria o cubo unitário de cada tipo com a textura aplicada.
func (r *Renderer) loadCubeModels() {
	for _, t := range mapdata.AllBlockTypes() {
		mat, err := mapdata.MaterialFor(t)
		if err != nil {
			continue
		}
		mesh := rl.GenMeshCube(1, 1, 1)
		model := rl.LoadModelFromMesh(mesh)
		if model.MaterialCount > 0 {
			materials := unsafe.Slice(model.Materials, model.MaterialCount)
			if tex, ok := r.Textures[mat.Texture]; ok {
				rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, tex)
			}
		}
		r.CubeModels[t] = model
	}
}

// Draw desenha todos os blocos visíveis. Deve ser chamado entre BeginMode3D/EndMode3D.
func (r *Renderer) Draw(camera3d rl.Camera3D, wireframe bool) {
	if !r.gpuReady {
		return
	}
	if r.dirty {
		r.Batches.Rebuild(r.Models)
		r.dirty = false
	}

	r.Batches.Cull(camera3d, r.ViewRadius)
	for t, b := range r.Batches.Batches {
		model, ok := r.CubeModels[t]
		if !ok {
			continue
		}
		b.Draw(model, wireframe)
	}
}

// DrawSelection desenha um cubo de destaque no bloco sob a mira.
func (r *Renderer) DrawSelection(coord util.BlockCoord) {
	pos := rl.Vector3{X: float32(coord.X), Y: float32(coord.Y), Z: float32(coord.Z)}
	rl.DrawCubeWires(pos, 1.01, 1.01, 1.01, rl.Black)
}

// Unload libera texturas e modelos da GPU.
func (r *Renderer) Unload() {
	for _, m := range r.CubeModels {
		rl.UnloadModel(m)
	}
	for _, tex := range r.Textures {
		rl.UnloadTexture(tex)
	}
	r.CubeModels = make(map[mapdata.BlockType]rl.Model)
	r.Textures = make(map[string]rl.Texture2D)
	r.gpuReady = false
}

// ToColor converte a cor do material para o tipo do raylib.
func ToColor(c util.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
