package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchelldurbincs/DiceOff/internal/common"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	AI      AIConfig      `mapstructure:"ai"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// GameConfig holds board and roster settings
type GameConfig struct {
	Rows        int            `mapstructure:"rows"`
	Columns     int            `mapstructure:"columns"`
	Players     []PlayerConfig `mapstructure:"players"`
	TickDelay   time.Duration  `mapstructure:"tick_delay"`
	AIDelay     time.Duration  `mapstructure:"ai_delay"`
	AutoResolve bool           `mapstructure:"auto_resolve"`
	Seed        int64          `mapstructure:"seed"`
}

// PlayerConfig describes one roster slot
type PlayerConfig struct {
	Name      string `mapstructure:"name"`
	Color     string `mapstructure:"color"`
	Automated bool   `mapstructure:"automated"`
}

// AIConfig holds move selector settings
type AIConfig struct {
	FortifyChance float64 `mapstructure:"fortify_chance"`
}

// LoggingConfig holds zerolog settings shared by the commands
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window   WindowConfig      `mapstructure:"window"`
	CellSize int               `mapstructure:"cell_size"`
	Colors   map[string]string `mapstructure:"colors"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

var (
	// Global config instance; mu guards cfg, which the watcher replaces
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.rows", 8)
	v.SetDefault("game.columns", 11)
	v.SetDefault("game.players", []map[string]any{
		{"name": "Green", "color": "green", "automated": false},
		{"name": "Red", "color": "red", "automated": true},
	})
	v.SetDefault("game.tick_delay", 250*time.Millisecond)
	v.SetDefault("game.ai_delay", 500*time.Millisecond)
	v.SetDefault("game.auto_resolve", true)
	v.SetDefault("game.seed", 0)

	v.SetDefault("ai.fortify_chance", 0.5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// UI defaults
	v.SetDefault("ui.window.width", 704)
	v.SetDefault("ui.window.height", 576)
	v.SetDefault("ui.window.title", "DiceOff")
	v.SetDefault("ui.cell_size", 64)
	v.SetDefault("ui.colors", map[string]string{})
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/diceoff")
	}

	v.SetEnvPrefix("DICEOFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults; in the search paths
		// only ConfigFileNotFoundError is tolerated.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	store(loaded)
	return nil
}

func store(c *Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// instance returns the viper instance loaded by Init
func instance() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml, read from the directory of
// the loaded config file, over the current settings. The base file stays the
// one WatchConfig follows.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}
	v := instance()

	base := v.ConfigFileUsed()
	envFile := fmt.Sprintf("config.%s.yaml", env)
	if base != "" {
		envFile = filepath.Join(filepath.Dir(base), envFile)
	}

	v.SetConfigFile(envFile)
	err := v.MergeInConfig()
	if base != "" {
		v.SetConfigFile(base)
	}
	if err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	store(merged)
	return nil
}

// Set allows runtime config updates
func Set(key string, value any) {
	v := instance()
	v.Set(key, value)
	updated := &Config{}
	if err := v.Unmarshal(updated); err == nil {
		store(updated)
	}
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return instance().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// reloaded settings, or the validation error when the edited file is rejected;
// a rejected file leaves the previous settings in place.
func WatchConfig(onChange func(*Config, error)) {
	v := instance()
	v.OnConfigChange(func(e fsnotify.Event) {
		reloaded := &Config{}
		err := v.Unmarshal(reloaded)
		if err == nil {
			err = Validate(reloaded)
		}
		if err == nil {
			store(reloaded)
		}
		if onChange != nil {
			if err != nil {
				onChange(nil, fmt.Errorf("reload %s: %w", e.Name, err))
			} else {
				onChange(reloaded, nil)
			}
		}
	})
	v.WatchConfig()
}

// Roster converts the configured slots into players.
func (g GameConfig) Roster() ([]core.Player, error) {
	players := make([]core.Player, 0, len(g.Players))
	for i, p := range g.Players {
		color, err := core.ParseColor(p.Color)
		if err != nil {
			return nil, fmt.Errorf("game.players[%d]: %w", i, err)
		}
		name := p.Name
		if strings.TrimSpace(name) == "" {
			name = defaultName(color)
		}
		players = append(players, core.NewPlayer(name, color, p.Automated))
	}
	return players, nil
}

func defaultName(c core.Color) string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if err := common.ValidateDimensions(c.Game.Rows, c.Game.Columns); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	roster, err := c.Game.Roster()
	if err != nil {
		return err
	}
	if err := core.ValidateRoster(roster); err != nil {
		return fmt.Errorf("game.players: %w", err)
	}
	if c.Game.TickDelay < 0 {
		return fmt.Errorf("game.tick_delay must be non-negative")
	}
	if c.Game.AIDelay < 0 {
		return fmt.Errorf("game.ai_delay must be non-negative")
	}

	if err := common.ValidateProbability("ai.fortify_chance", c.AI.FortifyChance); err != nil {
		return err
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.CellSize <= 0 {
		return fmt.Errorf("ui.cell_size must be positive")
	}
	for name, hex := range c.UI.Colors {
		if _, err := common.ParseHexColor(hex); err != nil {
			return fmt.Errorf("ui.colors.%s: %w", name, err)
		}
	}

	return nil
}
