package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

// Variant IDs, also used as config file names.
const (
	VariantNightwalk = "nightwalk"
	VariantPark      = "nightwalk_park"
)

//go:embed defaults/nightwalk.yaml
var defaultNightwalkYAML []byte

//go:embed defaults/park.yaml
var defaultParkYAML []byte

//go:embed defaults/catalogs.yaml
var defaultCatalogsYAML []byte

// DefaultNightwalkConfig returns the default configuration of the hazard variant.
func DefaultNightwalkConfig() NightwalkConfig {
	return NightwalkConfig{
		Terrain: TerrainConfig{
			Width:        11,
			TileSize:     48,
			ViewRows:     11,
			ExtraRows:    6,
			TrailingRows: 2,
			Lights: LightConfig{
				MinSpacing:  6,
				Span:        12,
				InitialSpan: 18,
			},
			Benches: BenchConfig{
				Enabled: true,
				Columns: []BenchColumn{
					{Column: 4, Blocks: "left"},
					{Column: 6, Blocks: "right"},
				},
				Height:     2,
				MinSpacing: 8,
				Span:       12,
				Band:       0.5,
				Reach:      1.5,
			},
			GrassColumns: []int{5},
		},
		Lighting: LightingConfig{
			Floor: 0.3,
			Peak:  1.0,
			Range: 8.5,
			Step:  0.25,
		},
		Scroll: ScrollConfig{
			BaseSpeed:         120,
			SlowdownThreshold: 3,
			SlowdownFactor:    0.5,
		},
		Avatar: AvatarConfig{
			MinRow:       3,
			BottomMargin: 2,
		},
		Meters: MeterConfig{Max: 5},
		Hazards: HazardConfig{
			Structure: StructureConfig{
				Spawn:         SpawnWindow{Enabled: true, MinMs: 1667, SpanMs: 2000},
				Rate:          3.0,
				Radius:        2.5,
				PullFactor:    0.3,
				Width:         3,
				Height:        4,
				DisableRadius: 2.0,
			},
			Agent: AgentConfig{
				Spawn:      SpawnWindow{Enabled: true, MinMs: 2000, SpanMs: 2500},
				Rate:       2.0,
				Radius:     1.5,
				MoveMs:     500,
				FlipChance: 0.3,
			},
		},
		Benefits: BenefitConfig{
			DispenseRadius: 3.0,
			Width:          3,
			Height:         3,
			Shops: []ShopConfig{
				{Kind: "coffee", Dispenses: "coffee", Spawn: SpawnWindow{Enabled: true, MinMs: 500, SpanMs: 667}},
				{Kind: "record", Dispenses: "vinyl", Spawn: SpawnWindow{Enabled: true, MinMs: 667, SpanMs: 833}},
				{Kind: "skate", Dispenses: "skateboard", Spawn: SpawnWindow{Enabled: true, MinMs: 833, SpanMs: 1000}},
			},
		},
		Collectibles: CollectibleConfig{
			PickupRadius: 0.8,
			Gain:         1,
			Values: map[string]int{
				"coffee":     100,
				"vinyl":      175,
				"skateboard": 150,
				"zine":       200,
			},
			Zine: SpawnWindow{Enabled: true, MinMs: 2500, SpanMs: 3333},
		},
		States: StateConfig{
			EmpowerMs:          10000,
			MaxTransformations: 2,
			RecoveryBonus:      500,
			DisableBonus:       1000,
			ScorePerMs:         0.01,
		},
		Catalog: DefaultCatalog(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300000, // 5 minutes
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultParkConfig returns the default configuration of the park variant:
// the same lane with every spawner switched off.
func DefaultParkConfig() NightwalkConfig {
	cfg := DefaultNightwalkConfig()
	cfg.Scroll.BaseSpeed = 100
	cfg.Hazards.Structure.Spawn.Enabled = false
	cfg.Hazards.Agent.Spawn.Enabled = false
	for i := range cfg.Benefits.Shops {
		cfg.Benefits.Shops[i].Spawn.Enabled = false
	}
	cfg.Collectibles.Zine.Enabled = false
	cfg.Difficulty.Scaling.SpeedMultiplier = 0.3
	return cfg
}

// DefaultFor returns the hardcoded default for a variant ID.
func DefaultFor(gameID string) NightwalkConfig {
	if gameID == VariantPark {
		return DefaultParkConfig()
	}
	return DefaultNightwalkConfig()
}

// DefaultCatalog returns the embedded university catalogs.
func DefaultCatalog() CatalogConfig {
	var cat CatalogConfig
	if err := yaml.Unmarshal(defaultCatalogsYAML, &cat); err != nil || len(cat.Universities) == 0 {
		// Fallback to a single hardcoded catalog if embed fails
		return CatalogConfig{Universities: []University{{
			Name:   "USC",
			Houses: []string{"Alpha Epsilon Pi", "Beta Theta Pi", "Kappa Sigma", "Sigma Chi", "Theta Chi"},
		}}}
	}
	return cat
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case VariantNightwalk:
		return defaultNightwalkYAML
	case VariantPark:
		return defaultParkYAML
	default:
		return nil
	}
}
