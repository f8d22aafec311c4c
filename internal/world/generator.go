package world

import (
	"log/slog"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/saltwindgames/saltwind/internal/errors"
	"github.com/saltwindgames/saltwind/internal/pkg/idgen"
)

// Noise parameters and biome thresholds. These are design constants, not
// tunables: the world's character depends on every generator using the same
// values.
const (
	noiseScale       = 100.0
	noiseOctaves     = 6
	noisePersistence = 0.5
	noiseLacunarity  = 2.0

	deepWaterBelow    = -0.2
	shallowWaterBelow = -0.1
	sandBelow         = 0.0
	grassBelow        = 0.3
	forestBelow       = 0.5

	featureChance       = 0.005
	placementAttempts   = 200
	placementEdgeMargin = 10
)

// Config configures a world Generator.
type Config struct {
	// Seed drives every random draw; the same seed reproduces the same
	// world.
	Seed int64
	// IDGenerator mints IDs for spawned monsters and NPCs.
	IDGenerator idgen.Generator
}

// Validate ensures the config is complete.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.CodeInvalidArgument, "config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Generator produces the overworld and its sub-maps. All randomness flows
// from the seeded source, so a Generator is deterministic but not safe for
// concurrent use.
type Generator struct {
	rng   *rand.Rand
	noise *perlin.Perlin
	idGen idgen.Generator
}

// NewGenerator creates a world generator from a validated config.
func NewGenerator(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Info("creating world generator", "seed", cfg.Seed)
	return &Generator{
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		noise: perlin.NewPerlin(2, 2, 1, cfg.Seed),
		idGen: cfg.IDGenerator,
	}, nil
}

// sample returns fractal noise at a map coordinate: noiseOctaves octaves of
// Perlin noise with persistence-scaled amplitudes and lacunarity-scaled
// frequencies.
func (g *Generator) sample(x, y int) float64 {
	var total float64
	amplitude := 1.0
	frequency := 1.0
	for octave := 0; octave < noiseOctaves; octave++ {
		total += amplitude * g.noise.Noise2D(
			float64(x)*frequency/noiseScale,
			float64(y)*frequency/noiseScale,
		)
		amplitude *= noisePersistence
		frequency *= noiseLacunarity
	}
	return total
}

// biomeTile classifies a noise value into its biome band.
func biomeTile(value float64) Tile {
	switch {
	case value < deepWaterBelow:
		return NewTile(true, GlyphWater, ColorDeepWater, "deep water")
	case value < shallowWaterBelow:
		return NewTile(true, GlyphWater, ColorShallowWater, "shallow water")
	case value < sandBelow:
		return NewTile(false, GlyphBlank, ColorSand, "sand")
	case value < grassBelow:
		return NewTile(false, GlyphBlank, ColorGrass, "grass")
	case value < forestBelow:
		return NewGlyphTile(false, GlyphForest, ColorGrass, ColorForest, "forest")
	default:
		return NewGlyphTile(true, GlyphMountain, ColorMountain, ColorGrey, "mountain")
	}
}

// intBetween draws uniformly from [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// EnterPlace returns the sub-map behind a gateway, generating and caching it
// on first entry. Returns false for landmarks with nothing behind them.
func (g *Generator) EnterPlace(p *Place) (*GeneratedMap, bool) {
	if p == nil || !p.Enterable() {
		return nil, false
	}
	if p.cached != nil {
		return p.cached, true
	}

	slog.Info("generating sub-map", "place", p.Name, "kind", p.Kind)
	switch p.Kind {
	case KindVillage:
		p.cached = g.Village(SubMapSize, SubMapSize)
	case KindDungeon:
		p.cached = g.Dungeon(SubMapSize, SubMapSize)
	default:
		return nil, false
	}
	return p.cached, true
}
