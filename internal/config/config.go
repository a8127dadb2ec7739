package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/san-kum/toothsim/internal/params"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultForceN   = 5.0
	DefaultAngleDeg = 0.0
	DefaultK        = 1.0
	DefaultDamping  = 0.2
	DefaultTeeth    = 5
	DefaultWidth    = 900.0
	DefaultHeight   = 400.0
	DefaultFPS      = 60
	DefaultMaxDt    = 0.035
	DefaultStartup  = 200 * time.Millisecond
	DefaultLogLevel = "info"

	envPrefix = "TOOTHSIM"
)

type Config struct {
	Params params.Raw   `yaml:"params" mapstructure:"params"`
	Layout LayoutConfig `yaml:"layout" mapstructure:"layout"`
	Loop   LoopConfig   `yaml:"loop" mapstructure:"loop"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

type LayoutConfig struct {
	Width  float64 `yaml:"width" mapstructure:"width"`
	Height float64 `yaml:"height" mapstructure:"height"`
}

type LoopConfig struct {
	FPS          int           `yaml:"fps" mapstructure:"fps"`
	MaxDt        float64       `yaml:"max_dt" mapstructure:"max_dt"`
	StartupDelay time.Duration `yaml:"startup_delay" mapstructure:"startup_delay"`
}

type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	File       string `yaml:"file" mapstructure:"file"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: params.Raw{
			ForceN:     DefaultForceN,
			AngleDeg:   DefaultAngleDeg,
			K:          DefaultK,
			Damping:    DefaultDamping,
			TeethCount: DefaultTeeth,
		},
		Layout: LayoutConfig{Width: DefaultWidth, Height: DefaultHeight},
		Loop: LoopConfig{
			FPS:          DefaultFPS,
			MaxDt:        DefaultMaxDt,
			StartupDelay: DefaultStartup,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// Load reads path on top of the defaults. An empty path skips the file.
// TOOTHSIM_* environment variables override both, e.g. TOOTHSIM_PARAMS_FORCE_N.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("params.force_n", d.Params.ForceN)
	v.SetDefault("params.angle_deg", d.Params.AngleDeg)
	v.SetDefault("params.k", d.Params.K)
	v.SetDefault("params.damping", d.Params.Damping)
	v.SetDefault("params.teeth", d.Params.TeethCount)
	v.SetDefault("layout.width", d.Layout.Width)
	v.SetDefault("layout.height", d.Layout.Height)
	v.SetDefault("loop.fps", d.Loop.FPS)
	v.SetDefault("loop.max_dt", d.Loop.MaxDt)
	v.SetDefault("loop.startup_delay", d.Loop.StartupDelay)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FrameInterval is the wall-clock time between ticks.
func (c *Config) FrameInterval() time.Duration {
	if c.Loop.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.Loop.FPS)
}

func (c *Config) Validate() error {
	if c.Layout.Width <= 0 || c.Layout.Height <= 0 {
		return errors.New("layout width and height must be positive")
	}
	if c.Loop.MaxDt <= 0 {
		return errors.New("max_dt must be positive")
	}
	return params.FromRaw(c.Params).Validate()
}
