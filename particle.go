package orbitfx

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"
)

// Particle field defaults.
const (
	DefaultParticleCount = 160
	DefaultRepelRadius   = 250.0

	repelPush     = 2.5 // max positional nudge per frame at d=0
	sizeBoost     = 2.0 // max radius gain near the pointer
	opacityBoost  = 0.5 // max opacity gain near the pointer
	driftVelocity = 0.15
)

// ParticlePalette is the default set of particle tints: cyan and violet.
var ParticlePalette = []Color{
	RGB255(0, 229, 255),
	RGB255(124, 124, 255),
}

// particle holds per-particle simulation state. Unexported; managed by ParticleField.
type particle struct {
	x, y        float64
	vx, vy      float64
	z           float64 // depth factor; scales drift speed
	baseSize    float64
	baseOpacity float64
	variant     int // index into the field palette
}

// FieldConfig controls how a ParticleField spawns and reacts to the pointer.
type FieldConfig struct {
	// Count is the number of particles created by Initialize. Zero or negative
	// yields an empty field.
	Count int
	// RepelRadius is the distance within which the pointer pushes and
	// highlights particles. Defaults to DefaultRepelRadius.
	RepelRadius float64
	// Depth is the range of depth factors z.
	Depth Range
	// Size is the range of base disc radii.
	Size Range
	// Opacity is the range of base opacities.
	Opacity Range
	// Palette lists the color variants. Defaults to ParticlePalette.
	Palette []Color
	// Seed seeds the random source. Zero seeds from the clock.
	Seed uint64
}

// DefaultFieldConfig returns the starfield configuration.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:       DefaultParticleCount,
		RepelRadius: DefaultRepelRadius,
		Depth:       Range{0.5, 2.5},
		Size:        Range{0.5, 2.0},
		Opacity:     Range{0.2, 0.8},
		Palette:     ParticlePalette,
	}
}

// ParticleField owns a fixed-size collection of drifting particles that wrap
// around the canvas edges and are pushed away from the pointer.
type ParticleField struct {
	config        FieldConfig
	particles     []particle
	width, height float64
	rng           *rand.Rand
}

// NewParticleField creates an empty field. Call Initialize to populate it.
func NewParticleField(cfg FieldConfig) *ParticleField {
	if cfg.RepelRadius <= 0 {
		cfg.RepelRadius = DefaultRepelRadius
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = ParticlePalette
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &ParticleField{
		config: cfg,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Initialize replaces the field's particles with count freshly randomized
// particles spread uniformly over bounds (width x height).
func (f *ParticleField) Initialize(count int, width, height float64) {
	f.width, f.height = width, height
	if count <= 0 {
		f.particles = f.particles[:0]
		return
	}
	if cap(f.particles) < count {
		f.particles = make([]particle, count)
	}
	f.particles = f.particles[:count]
	for i := range f.particles {
		f.spawn(&f.particles[i])
	}
}

// spawn randomizes every attribute of p.
func (f *ParticleField) spawn(p *particle) {
	p.x = f.rng.Float64() * f.width
	p.y = f.rng.Float64() * f.height

	p.z = f.config.Depth.Random(f.rng)
	p.baseSize = f.config.Size.Random(f.rng)

	p.vx = (f.rng.Float64() - 0.5) * driftVelocity * p.z
	p.vy = (f.rng.Float64() - 0.5) * driftVelocity * p.z

	p.baseOpacity = f.config.Opacity.Random(f.rng)
	p.variant = f.rng.IntN(len(f.config.Palette))
}

// Resize changes the canvas bounds. Existing particles are kept and re-wrap
// into the new bounds on the next Update. Non-positive sizes, such as a
// minimized window, are ignored so the field keeps its last real bounds.
func (f *ParticleField) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	f.width, f.height = width, height
}

// Bounds returns the canvas size the field wraps within.
func (f *ParticleField) Bounds() (width, height float64) {
	return f.width, f.height
}

// Len returns the number of particles.
func (f *ParticleField) Len() int {
	return len(f.particles)
}

// Config returns a copy of the field's config, defaults applied.
func (f *ParticleField) Config() FieldConfig {
	cfg := f.config
	cfg.Palette = slices.Clone(f.config.Palette)
	return cfg
}

// SetRepelRadius changes the pointer repulsion radius. Non-positive values
// restore DefaultRepelRadius.
func (f *ParticleField) SetRepelRadius(r float64) {
	if r <= 0 {
		r = DefaultRepelRadius
	}
	f.config.RepelRadius = r
}

// Update advances every particle by one frame: linear drift, a positional
// push away from the pointer, then toroidal wrap.
func (f *ParticleField) Update(ptr *Pointer) {
	for i := range f.particles {
		p := &f.particles[i]

		p.x += p.vx
		p.y += p.vy

		// The push is a nudge, not a velocity change, so it stops as soon
		// as the pointer leaves the radius.
		if force, angle, ok := f.repulsion(p, ptr); ok {
			push := force * repelPush
			p.x += math.Cos(angle) * push
			p.y += math.Sin(angle) * push
		}

		p.x = wrap(p.x, f.width)
		p.y = wrap(p.y, f.height)
	}
}

// Render draws every particle as a filled disc. Particles near the pointer
// grow by up to sizeBoost and brighten by up to opacityBoost, capped at 1.
func (f *ParticleField) Render(s Surface, ptr *Pointer) {
	if s == nil {
		return
	}
	for i := range f.particles {
		p := &f.particles[i]
		size, opacity := f.appearance(p, ptr)
		s.FillDisc(p.x, p.y, size, f.config.Palette[p.variant].WithAlpha(opacity))
	}
}

// appearance returns the rendered radius and opacity for p.
func (f *ParticleField) appearance(p *particle, ptr *Pointer) (size, opacity float64) {
	size, opacity = p.baseSize, p.baseOpacity
	if force, _, ok := f.repulsion(p, ptr); ok {
		size += force * sizeBoost
		opacity += force * opacityBoost
		if opacity > 1 {
			opacity = 1
		}
	}
	return size, opacity
}

// repulsion returns the proximity force in (0, 1] and the angle from the
// pointer to p. ok is false when p is outside the repulsion radius.
func (f *ParticleField) repulsion(p *particle, ptr *Pointer) (force, angle float64, ok bool) {
	if ptr == nil {
		return 0, 0, false
	}
	dx := p.x - ptr.X
	dy := p.y - ptr.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	r := f.config.RepelRadius
	if dist >= r {
		return 0, 0, false
	}
	return (r - dist) / r, math.Atan2(dy, dx), true
}

// wrap maps v into [0, bound), carrying any overshoot across the opposite edge.
// A non-positive bound leaves v unchanged.
func wrap(v, bound float64) float64 {
	if bound <= 0 {
		return v
	}
	if v >= 0 && v < bound {
		return v
	}
	v = math.Mod(v, bound)
	if v < 0 {
		v += bound
	}
	// Mod of a tiny negative can round up to bound itself.
	if v >= bound {
		v = 0
	}
	return v
}
