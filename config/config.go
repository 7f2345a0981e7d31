package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/milk9111/wheelchair/input"
)

const envPrefix = "WHEELCHAIR"

type Window struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Bindings struct {
	LeftWheel   []string `mapstructure:"left_wheel"`
	RightWheel  []string `mapstructure:"right_wheel"`
	Scroll      []string `mapstructure:"scroll"`
	ScrollScale float64  `mapstructure:"scroll_scale"`
}

// Settings are process-wide runtime options. Gameplay tuning lives in the
// prefab specs instead.
type Settings struct {
	Window   Window   `mapstructure:"window"`
	TPS      int      `mapstructure:"tps"`
	Log      Log      `mapstructure:"log"`
	Debug    bool     `mapstructure:"debug"`
	Watch    bool     `mapstructure:"watch"`
	Script   string   `mapstructure:"script"`
	Arena    string   `mapstructure:"arena"`
	Bindings Bindings `mapstructure:"bindings"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "wheelchair")
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("tps", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("debug", false)
	v.SetDefault("watch", false)
	v.SetDefault("script", "")
	v.SetDefault("arena", "arena.yaml")
	v.SetDefault("bindings.left_wheel", []string{"mouse:left", "key:A", "gamepad:left_shoulder"})
	v.SetDefault("bindings.right_wheel", []string{"mouse:right", "key:D", "gamepad:right_shoulder"})
	v.SetDefault("bindings.scroll", []string{"wheel", "key_up:W", "key_down:S", "gamepad:right_stick"})
	v.SetDefault("bindings.scroll_scale", 1.0)
}

// Load reads settings from defaults, an optional file and WHEELCHAIR_*
// environment variables, in increasing priority. An empty path skips the file.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.TPS <= 0 {
		errs = append(errs, fmt.Errorf("config: tps must be positive, got %d", s.TPS))
	}
	if s.Bindings.ScrollScale <= 0 {
		errs = append(errs, fmt.Errorf("config: bindings.scroll_scale must be positive, got %v", s.Bindings.ScrollScale))
	}
	return errors.Join(errs...)
}

// InputBindings converts the binding strings into input.Bindings.
func (s Settings) InputBindings() (input.Bindings, error) {
	return input.ParseBindings(
		map[input.Action][]string{
			input.ActionLeftWheel:  s.Bindings.LeftWheel,
			input.ActionRightWheel: s.Bindings.RightWheel,
		},
		map[input.Action][]string{
			input.ActionScroll: s.Bindings.Scroll,
		},
		s.Bindings.ScrollScale,
	)
}
