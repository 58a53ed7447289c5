package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"VoxelSandbox/cliente/internal/app"
	"VoxelSandbox/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configFile := flag.String("config", "", "Arquivo de configuração (.json ou .yaml)")
	radius := flag.Int("radius", 0, "Raio do terreno gerado (R gera 2R x 2R colunas)")
	seed := flag.Int64("seed", 0, "Seed do terreno (0 = aleatória)")
	terrain := flag.String("terrain", "", "Gerador de terreno: random ou noise")
	picker := flag.String("picker", "", "Seleção de blocos: linear ou grid")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flat := flag.Bool("flat", false, "Movimento horizontal ignora o pitch da câmera")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_voxel.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO VOXEL SANDBOX ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║         VoxelSandbox v0.1.0          ║")
	log.Println("║    Sandbox de blocos em 1ª pessoa    ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.LoadFrom(*configFile)
		if err != nil {
			log.Printf("[Config] Erro ao carregar %s: %v. Usando padrões.", *configFile, err)
			cfg = config.DefaultConfig()
		}
	} else {
		cfg = config.Load()
	}

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *radius > 0 {
		cfg.WorldRadius = int32(*radius)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *terrain != "" {
		cfg.Terrain = *terrain
	}
	if *picker != "" {
		cfg.Picker = *picker
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *flat {
		cfg.FlatMovement = true
	}
	cfg.Validate()

	// Criar e rodar a aplicação
	application := app.New(cfg)
	application.Run()
}
