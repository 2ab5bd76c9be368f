package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"openprism/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version       int                  `toml:"version"`
	LogFile       string               `toml:"log_file"`
	Touchpad      TouchpadSettings     `toml:"touchpad"`
	Cards         CardSettings         `toml:"cards"`
	Slider        SliderSettings       `toml:"slider"`
	Notifications NotificationSettings `toml:"notifications"`
}

// TouchpadSettings controls how terminal input becomes touchpad input
type TouchpadSettings struct {
	SwipeThreshold float64 `toml:"swipe_threshold"`
	LongPressMs    int     `toml:"long_press_ms"` // 0 disables long presses
	CellWidth      float64 `toml:"cell_width"`    // touch units per terminal column
	CellHeight     float64 `toml:"cell_height"`   // touch units per terminal row
}

// CardSettings controls the card timelines
type CardSettings struct {
	PageWidth float64 `toml:"page_width"`
	Animate   bool    `toml:"animate"`
}

// SliderSettings controls the slider timings
type SliderSettings struct {
	GracePeriodMs     int `toml:"grace_period_ms"`
	ScrollerTimeoutMs int `toml:"scroller_timeout_ms"`
}

// NotificationSettings controls how posted notifications are shown
type NotificationSettings struct {
	Reveal bool `toml:"reveal"`
}

// LongPress returns the long press timeout
func (t TouchpadSettings) LongPress() time.Duration {
	return time.Duration(t.LongPressMs) * time.Millisecond
}

// GracePeriod returns the grace period duration
func (s SliderSettings) GracePeriod() time.Duration {
	return time.Duration(s.GracePeriodMs) * time.Millisecond
}

// ScrollerTimeout returns how long the scroller stays up without updates
func (s SliderSettings) ScrollerTimeout() time.Duration {
	return time.Duration(s.ScrollerTimeoutMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the per-user config file
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "openprism", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service reading and writing path
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, or the defaults when there is none
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Settings missing from
// the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects settings the widgets cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Touchpad.SwipeThreshold <= 0:
		return fmt.Errorf("touchpad.swipe_threshold must be positive, got %v", c.Touchpad.SwipeThreshold)
	case c.Touchpad.LongPressMs < 0:
		return fmt.Errorf("touchpad.long_press_ms must not be negative, got %d", c.Touchpad.LongPressMs)
	case c.Touchpad.CellWidth <= 0 || c.Touchpad.CellHeight <= 0:
		return fmt.Errorf("touchpad cell size must be positive, got %vx%v", c.Touchpad.CellWidth, c.Touchpad.CellHeight)
	case c.Cards.PageWidth <= 0:
		return fmt.Errorf("cards.page_width must be positive, got %v", c.Cards.PageWidth)
	case c.Slider.GracePeriodMs <= 0:
		return fmt.Errorf("slider.grace_period_ms must be positive, got %d", c.Slider.GracePeriodMs)
	case c.Slider.ScrollerTimeoutMs <= 0:
		return fmt.Errorf("slider.scroller_timeout_ms must be positive, got %d", c.Slider.ScrollerTimeoutMs)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "openprism.log",
		Touchpad: TouchpadSettings{
			SwipeThreshold: 50,
			CellWidth:      10,
			CellHeight:     20,
		},
		Cards: CardSettings{
			PageWidth: 400,
			Animate:   true,
		},
		Slider: SliderSettings{
			GracePeriodMs:     2000,
			ScrollerTimeoutMs: 1500,
		},
		Notifications: NotificationSettings{
			Reveal: true,
		},
	}
}
