package orbitfx

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the file/env configuration for an orbitfx program.
type Config struct {
	Window    WindowConfig
	Particles ParticlesConfig
	Timeline  TimelineSettings
	Debug     bool
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	FPS    bool `mapstructure:"show_fps"`
}

// ParticlesConfig holds starfield settings.
type ParticlesConfig struct {
	Enabled     bool
	Count       int
	RepelRadius float64 `mapstructure:"repel_radius"`
	Seed        uint64
}

// TimelineSettings holds orbit section settings.
type TimelineSettings struct {
	Enabled             bool
	Milestones          []Milestone
	Stagger             time.Duration
	PathDelay           time.Duration `mapstructure:"path_delay"`
	NodeDelay           time.Duration `mapstructure:"node_delay"`
	VisibilityThreshold float64       `mapstructure:"visibility_threshold"`
	Width               float64
	Height              float64
}

// DefaultMilestones is the card content used when no milestones are configured.
var DefaultMilestones = []Milestone{
	{Title: "Ignition", Body: "Core protocol design"},
	{Title: "Liftoff", Body: "Private testnet"},
	{Title: "Ascent", Body: "Public testnet"},
	{Title: "Orbit", Body: "Mainnet launch"},
	{Title: "Relay", Body: "Cross-chain bridges"},
	{Title: "Cluster", Body: "Validator expansion"},
	{Title: "Drift", Body: "Governance handover"},
	{Title: "Horizon", Body: "Open ecosystem"},
}

// Load reads configuration from path, or from ./orbitfx.toml when path is
// empty, and applies env overrides with prefix ORBITFX_ (for example
// ORBITFX_PARTICLES_COUNT). A missing default file is not an error; a missing
// explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "orbitfx")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.show_fps", false)
	v.SetDefault("particles.enabled", true)
	v.SetDefault("particles.count", DefaultParticleCount)
	v.SetDefault("particles.repel_radius", DefaultRepelRadius)
	v.SetDefault("particles.seed", 0)
	v.SetDefault("timeline.enabled", true)
	v.SetDefault("timeline.stagger", DefaultStagger)
	v.SetDefault("timeline.path_delay", DefaultPathDelay)
	v.SetDefault("timeline.node_delay", DefaultNodeDelay)
	v.SetDefault("timeline.visibility_threshold", DefaultVisibilityThreshold)
	v.SetDefault("timeline.width", DefaultCurveWidth)
	v.SetDefault("timeline.height", DefaultCurveHeight)
	v.SetDefault("debug", false)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("ORBITFX_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("orbitfx")
	}

	v.SetEnvPrefix("ORBITFX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Timeline.Milestones) == 0 {
		c.Timeline.Milestones = append([]Milestone(nil), DefaultMilestones...)
	}
	return c, nil
}

// SceneConfig converts c into the runtime scene settings.
func (c Config) SceneConfig() SceneConfig {
	field := DefaultFieldConfig()
	field.Count = c.Particles.Count
	if c.Particles.RepelRadius > 0 {
		field.RepelRadius = c.Particles.RepelRadius
	}
	field.Seed = c.Particles.Seed

	return SceneConfig{
		Width:            c.Window.Width,
		Height:           c.Window.Height,
		Field:            field,
		DisableParticles: !c.Particles.Enabled,
		Timeline: TimelineConfig{
			Milestones: c.Timeline.Milestones,
			Space:      CurveSpace{Width: c.Timeline.Width, Height: c.Timeline.Height},
			Stagger:    c.Timeline.Stagger,
			PathDelay:  c.Timeline.PathDelay,
			NodeDelay:  c.Timeline.NodeDelay,
		},
		DisableTimeline:     !c.Timeline.Enabled,
		VisibilityThreshold: c.Timeline.VisibilityThreshold,
		Debug:               c.Debug,
	}
}

// RunConfig returns the window settings for Run.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:   c.Window.Title,
		Width:   c.Window.Width,
		Height:  c.Window.Height,
		ShowFPS: c.Window.FPS,
	}
}
