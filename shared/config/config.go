package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config armazena as configurações do VoxelSandbox.
type Config struct {
	// Janela
	WindowWidth  int32   `json:"window_width" yaml:"window_width"`
	WindowHeight int32   `json:"window_height" yaml:"window_height"`
	WindowTitle  string  `json:"window_title" yaml:"window_title"`
	Fullscreen   bool    `json:"fullscreen" yaml:"fullscreen"`
	TargetFPS    int32   `json:"target_fps" yaml:"target_fps"`
	FOV          float32 `json:"fov" yaml:"fov"`
	ViewDistance float32 `json:"view_distance" yaml:"view_distance"` // Distância máxima de desenho (0 = sem limite)

	// Mundo
	WorldRadius int32  `json:"world_radius" yaml:"world_radius"` // Colunas em [-R, R) nos eixos X e Z
	Seed        int64  `json:"seed" yaml:"seed"`                 // 0 = seed aleatória a cada execução
	Terrain     string `json:"terrain" yaml:"terrain"`           // "random" ou "noise"

	// Edição
	Picker string  `json:"picker" yaml:"picker"` // "linear" (varredura) ou "grid" (travessia da grade)
	Reach  float32 `json:"reach" yaml:"reach"`   // Alcance máximo do raio (0 = ilimitado)

	// Jogador (valores por tick, não por segundo)
	MoveSpeed        float32    `json:"move_speed" yaml:"move_speed"`
	MouseSensitivity float32    `json:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	Gravity          float32    `json:"gravity" yaml:"gravity"`
	JumpImpulse      float32    `json:"jump_impulse" yaml:"jump_impulse"`
	GroundHeight     float32    `json:"ground_height" yaml:"ground_height"`
	SpawnPosition    [3]float32 `json:"spawn_position" yaml:"spawn_position"`
	FlatMovement     bool       `json:"flat_movement" yaml:"flat_movement"` // Ignora o pitch ao andar

	// Debug
	ShowDebugInfo bool `json:"show_debug_info" yaml:"show_debug_info"`
	ShowGrid      bool `json:"show_grid" yaml:"show_grid"`
	WireframeMode bool `json:"wireframe_mode" yaml:"wireframe_mode"`

	// path é o arquivo de onde a configuração veio (usado pelo Save)
	path string
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "VoxelSandbox",
		Fullscreen:   false,
		TargetFPS:    60,
		FOV:          75.0,
		ViewDistance: 0,

		WorldRadius: 20,
		Seed:        0,
		Terrain:     "random",

		Picker: "linear",
		Reach:  0,

		MoveSpeed:        0.1,
		MouseSensitivity: 0.002,
		Gravity:          0.01,
		JumpImpulse:      0.25,
		GroundHeight:     2.0,
		SpawnPosition:    [3]float32{0, 3, 5},
		FlatMovement:     false,

		ShowDebugInfo: false,
		ShowGrid:      false,
		WireframeMode: false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do config.json ao lado do executável.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFrom(configPath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Config] Usando padrão: %v", err)
		}
		cfg = DefaultConfig()
		cfg.path = configPath()
	}
	return cfg
}

// LoadFrom carrega um arquivo específico. Extensões .yaml/.yml são lidas como YAML,
// o resto como JSON. Campos ausentes mantêm o valor padrão.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao parsear %s: %w", filepath.Base(path), err)
	}

	cfg.Validate()
	return cfg, nil
}

// Validate corrige valores sem sentido, registrando cada ajuste no log.
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		log.Printf("[Config] Resolução inválida %dx%d, usando %dx%d", c.WindowWidth, c.WindowHeight, def.WindowWidth, def.WindowHeight)
		c.WindowWidth, c.WindowHeight = def.WindowWidth, def.WindowHeight
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		log.Printf("[Config] FOV inválido %.1f, usando %.1f", c.FOV, def.FOV)
		c.FOV = def.FOV
	}
	if c.WorldRadius < 0 {
		log.Printf("[Config] Raio do mundo negativo (%d), usando 0", c.WorldRadius)
		c.WorldRadius = 0
	}
	if c.Reach < 0 {
		c.Reach = 0
	}
	if c.ViewDistance < 0 {
		c.ViewDistance = 0
	}
	if c.MouseSensitivity <= 0 {
		c.MouseSensitivity = def.MouseSensitivity
	}
	if c.MoveSpeed < 0 {
		c.MoveSpeed = def.MoveSpeed
	}
}

// Save salva as configurações no arquivo de origem (YAML ou JSON pela extensão).
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = configPath()
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("falha ao serializar configuração: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("falha ao salvar %s: %w", path, err)
	}
	return nil
}

// Path retorna o arquivo associado à configuração.
func (c *Config) Path() string {
	return c.path
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
