// Package config loads game settings from defaults, an optional YAML file
// and MAZECASTER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"mazecaster/model"
	"mazecaster/raycast"
	"mazecaster/telemetry"
)

var ErrNoLevels = errors.New("no levels configured")

type Config struct {
	Window    WindowConfig            `mapstructure:"window"`
	World     WorldConfig             `mapstructure:"world"`
	Camera    CameraConfig            `mapstructure:"camera"`
	Player    PlayerConfig            `mapstructure:"player"`
	Render    RenderConfig            `mapstructure:"render"`
	Minimap   MinimapConfig           `mapstructure:"minimap"`
	Sprites   SpriteConfig            `mapstructure:"sprites"`
	Assets    AssetConfig             `mapstructure:"assets"`
	Textures  []raycast.TextureSource `mapstructure:"textures"`
	Levels    []model.LevelSpec       `mapstructure:"levels"`
	Audio     AudioConfig             `mapstructure:"audio"`
	Telemetry telemetry.Config        `mapstructure:"telemetry"`
}

type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	TPS    int    `mapstructure:"tps"`
}

type WorldConfig struct {
	BlockSize float64 `mapstructure:"block_size"`
}

// CameraConfig angles are in degrees.
type CameraConfig struct {
	FOV     float64 `mapstructure:"fov"`
	Heading float64 `mapstructure:"heading"`
	StartX  float64 `mapstructure:"start_x"`
	StartY  float64 `mapstructure:"start_y"`
}

func (c CameraConfig) FOVRadians() float64     { return c.FOV * math.Pi / 180 }
func (c CameraConfig) HeadingRadians() float64 { return c.Heading * math.Pi / 180 }

type PlayerConfig struct {
	MoveSpeed        float64 `mapstructure:"move_speed"`
	TurnSpeed        float64 `mapstructure:"turn_speed"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
	GamepadDeadzone  float64 `mapstructure:"gamepad_deadzone"`
	CollectRadius    float64 `mapstructure:"collect_radius"`
}

type RenderConfig struct {
	Projection  float64 `mapstructure:"projection"`
	Step        float64 `mapstructure:"step"`
	MaxDistance float64 `mapstructure:"max_distance"`
	Workers     int     `mapstructure:"workers"`
	Sky         string  `mapstructure:"sky"`
	Floor       string  `mapstructure:"floor"`
	Background  string  `mapstructure:"background"`

	SkyColor        color.RGBA `mapstructure:"-"`
	FloorColor      color.RGBA `mapstructure:"-"`
	BackgroundColor color.RGBA `mapstructure:"-"`
}

type MinimapConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	BlockSize int  `mapstructure:"block_size"`
}

type SpriteConfig struct {
	Symbols string `mapstructure:"symbols"`
}

type AssetConfig struct {
	// Dir reads maps and textures from disk instead of the embedded set.
	Dir string `mapstructure:"dir"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Defaults registers every setting's default value.
func Defaults(v *viper.Viper) {
	v.SetDefault("window.title", "mazecaster")
	v.SetDefault("window.width", 1300)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.tps", 60)

	v.SetDefault("world.block_size", 100.0)

	v.SetDefault("camera.fov", 60.0)
	v.SetDefault("camera.heading", 60.0)
	v.SetDefault("camera.start_x", 150.0)
	v.SetDefault("camera.start_y", 150.0)

	v.SetDefault("player.move_speed", 4.0)
	v.SetDefault("player.turn_speed", 0.05)
	v.SetDefault("player.mouse_sensitivity", 0.005)
	v.SetDefault("player.gamepad_deadzone", 0.2)
	v.SetDefault("player.collect_radius", 50.0)

	v.SetDefault("render.projection", raycast.DefaultProjection)
	v.SetDefault("render.step", 1.0)
	v.SetDefault("render.max_distance", 0.0)
	v.SetDefault("render.workers", 1)
	v.SetDefault("render.sky", "#66bfff")
	v.SetDefault("render.floor", "#009e2f")
	v.SetDefault("render.background", "#323264")

	v.SetDefault("minimap.enabled", true)
	v.SetDefault("minimap.block_size", 20)

	v.SetDefault("sprites.symbols", "ABG")
	v.SetDefault("assets.dir", "")

	v.SetDefault("textures", []map[string]any{
		{"symbol": "+", "path": "textures/wall_plus.png"},
		{"symbol": "-", "path": "textures/wall_dash.png"},
		{"symbol": "|", "path": "textures/wall_pipe.png"},
		{"symbol": "p", "path": "textures/pokeball.png"},
		{"symbol": "A", "path": "textures/sprite_a.png"},
		{"symbol": "B", "path": "textures/sprite_b.png"},
		{"symbol": "G", "path": "textures/sprite_g.png"},
	})
	v.SetDefault("levels", []map[string]any{
		{"name": "Level 1", "map": "maps/level1.txt"},
		{"name": "Level 2", "map": "maps/level2.txt"},
	})

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.8)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.sample_ratio", 0.01)
}

// Load reads configuration. An empty path searches for mazecaster.yaml in the
// working directory and $HOME/.config/mazecaster; a missing file is not an
// error unless the path was given explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()
	Defaults(v)

	v.SetEnvPrefix("MAZECASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mazecaster")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mazecaster")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and resolves the color settings.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.World.BlockSize <= 0 {
		return fmt.Errorf("world.block_size %v must be positive", c.World.BlockSize)
	}
	if c.Render.Step <= 0 || c.Render.Step > c.World.BlockSize {
		return fmt.Errorf("render.step %v outside (0, %v]: %w", c.Render.Step, c.World.BlockSize, raycast.ErrBadStep)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov %v must be between 0 and 180 degrees", c.Camera.FOV)
	}
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}

	var err error
	if c.Render.SkyColor, err = ParseColor(c.Render.Sky); err != nil {
		return fmt.Errorf("render.sky: %w", err)
	}
	if c.Render.FloorColor, err = ParseColor(c.Render.Floor); err != nil {
		return fmt.Errorf("render.floor: %w", err)
	}
	if c.Render.BackgroundColor, err = ParseColor(c.Render.Background); err != nil {
		return fmt.Errorf("render.background: %w", err)
	}
	return nil
}

// ParseColor reads a #rrggbb hex color as opaque RGBA.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
