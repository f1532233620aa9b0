// Package config provides YAML-based game configuration loading and
// difficulty management for the Night Walk games.
package config

// NightwalkConfig contains every tunable of the Night Walk simulation.
// Both registered variants share this shape; the park variant simply
// disables the hazard, shop and zine spawners.
type NightwalkConfig struct {
	Terrain      TerrainConfig     `yaml:"terrain"`
	Lighting     LightingConfig    `yaml:"lighting"`
	Scroll       ScrollConfig      `yaml:"scroll"`
	Avatar       AvatarConfig      `yaml:"avatar"`
	Meters       MeterConfig       `yaml:"meters"`
	Hazards      HazardConfig      `yaml:"hazards"`
	Benefits     BenefitConfig     `yaml:"benefits"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	States       StateConfig       `yaml:"states"`
	Catalog      CatalogConfig     `yaml:"catalog"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
}

// TerrainConfig defines the lane and the procedural row generator.
type TerrainConfig struct {
	Width        int         `yaml:"width"`         // Lane width in tiles, borders included
	TileSize     float64     `yaml:"tile_size"`     // World units per tile
	ViewRows     int         `yaml:"view_rows"`     // Rows visible in the viewport
	ExtraRows    int         `yaml:"extra_rows"`    // Ring rows beyond the viewport
	TrailingRows float64     `yaml:"trailing_rows"` // Rows past the bottom edge before recycle
	Lights       LightConfig `yaml:"lights"`
	Benches      BenchConfig `yaml:"benches"`
	GrassColumns []int       `yaml:"grass_columns"`
}

// LightConfig defines streetlight spacing on the border hedges.
type LightConfig struct {
	MinSpacing  int `yaml:"min_spacing"`
	Span        int `yaml:"span"`
	InitialSpan int `yaml:"initial_span"`
}

// BenchConfig defines median benches, which block the avatar.
type BenchConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Columns    []BenchColumn `yaml:"columns"` // Checked in order; the first match wins a row
	Height     int           `yaml:"height"`  // Rows per bench
	MinSpacing int           `yaml:"min_spacing"`
	Span       int           `yaml:"span"`
	Band       float64       `yaml:"band"`  // Vertical band (tiles) for lateral entry checks
	Reach      float64       `yaml:"reach"` // Distance (tiles) ahead at which a bench halts scrolling
}

// BenchColumn is a median column that may carry a bench.
// Blocks names the side from which the bench cannot be entered ("left", "right" or "").
type BenchColumn struct {
	Column int    `yaml:"column"`
	Blocks string `yaml:"blocks"`
}

// LightingConfig defines the brightness falloff around light tiles.
type LightingConfig struct {
	Floor float64 `yaml:"floor"` // Night brightness far from any light
	Peak  float64 `yaml:"peak"`  // Brightness on the light tile
	Range float64 `yaml:"range"` // Distance (tiles) at which the floor is reached
	Step  float64 `yaml:"step"`  // Quantization of distance (tiles)
}

// ScrollConfig defines world scrolling.
type ScrollConfig struct {
	BaseSpeed         float64 `yaml:"base_speed"`         // World units per second
	SlowdownThreshold float64 `yaml:"slowdown_threshold"` // Hazard meter value that slows the world
	SlowdownFactor    float64 `yaml:"slowdown_factor"`
}

// AvatarConfig defines where the avatar starts and may walk.
type AvatarConfig struct {
	StartRow     int `yaml:"start_row"`     // 0 places the avatar three rows above the bottom
	MinRow       int `yaml:"min_row"`       // Highest row the avatar may step to
	BottomMargin int `yaml:"bottom_margin"` // Rows kept free below the avatar
}

// MeterConfig defines resource meter bounds.
type MeterConfig struct {
	Max float64 `yaml:"max"`
}

// SpawnWindow is a countdown range [min_ms, min_ms+span_ms).
type SpawnWindow struct {
	Enabled bool    `yaml:"enabled"`
	MinMs   float64 `yaml:"min_ms"`
	SpanMs  float64 `yaml:"span_ms"`
}

// HazardConfig groups the hazard entity classes.
type HazardConfig struct {
	Structure StructureConfig `yaml:"structure"`
	Agent     AgentConfig     `yaml:"agent"`
}

// StructureConfig defines the side-anchored singleton hazard.
type StructureConfig struct {
	Spawn         SpawnWindow `yaml:"spawn"`
	Rate          float64     `yaml:"rate"`   // Meter units per second at full intensity
	Radius        float64     `yaml:"radius"` // Tiles
	PullFactor    float64     `yaml:"pull_factor"`
	Width         int         `yaml:"width"`
	Height        int         `yaml:"height"`
	DisableRadius float64     `yaml:"disable_radius"` // Tiles from center for an empowered touch
}

// AgentConfig defines roaming hazard agents.
type AgentConfig struct {
	Spawn      SpawnWindow `yaml:"spawn"`
	Rate       float64     `yaml:"rate"`
	Radius     float64     `yaml:"radius"`
	MoveMs     float64     `yaml:"move_ms"`
	FlipChance float64     `yaml:"flip_chance"`
}

// BenefitConfig defines shops, which dispense collectibles.
type BenefitConfig struct {
	DispenseRadius float64      `yaml:"dispense_radius"`
	Width          int          `yaml:"width"`
	Height         int          `yaml:"height"`
	Shops          []ShopConfig `yaml:"shops"`
}

// ShopConfig defines one shop kind.
type ShopConfig struct {
	Kind      string      `yaml:"kind"`
	Dispenses string      `yaml:"dispenses"`
	Spawn     SpawnWindow `yaml:"spawn"`
}

// CollectibleConfig defines pickups.
type CollectibleConfig struct {
	PickupRadius float64        `yaml:"pickup_radius"`
	Gain         float64        `yaml:"gain"` // Meter units per pickup
	Values       map[string]int `yaml:"values"`
	Zine         SpawnWindow    `yaml:"zine"`
}

// StateConfig defines the transformation state machine.
type StateConfig struct {
	EmpowerMs          float64 `yaml:"empower_ms"`
	MaxTransformations int     `yaml:"max_transformations"`
	RecoveryBonus      int     `yaml:"recovery_bonus"`
	DisableBonus       int     `yaml:"disable_bonus"`
	ScorePerMs         float64 `yaml:"score_per_ms"`
}

// CatalogConfig lists the hazard structure catalogs.
// University selects one by name; empty means pick with the session seed.
type CatalogConfig struct {
	University   string       `yaml:"university"`
	Universities []University `yaml:"universities"`
}

// University is one catalog of hazard structure names.
type University struct {
	Name   string   `yaml:"name"`
	Houses []string `yaml:"houses"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed milliseconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to scroll speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from hazard spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// FindUniversity returns the catalog with the given name.
func (c CatalogConfig) FindUniversity(name string) (University, bool) {
	for _, u := range c.Universities {
		if u.Name == name {
			return u, true
		}
	}
	return University{}, false
}
