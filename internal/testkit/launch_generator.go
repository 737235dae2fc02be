package testkit

import (
	"math"
	"math/rand"

	"launchdash/domain/launch"
)

// LaunchGeneratorConfig configures the synthetic launch generator
type LaunchGeneratorConfig struct {
	Count       int      `json:"count"`
	Sites       []string `json:"sites"`
	Categories  []string `json:"categories"`
	MaxPayload  float64  `json:"max_payload"`
	SuccessRate float64  `json:"success_rate"`
	Seed        int64    `json:"seed"`
}

// DefaultLaunchConfig returns sensible defaults for launch generation
func DefaultLaunchConfig() LaunchGeneratorConfig {
	return LaunchGeneratorConfig{
		Count:       200,
		Sites:       Sites,
		Categories:  []string{"v1.0", "v1.1", "FT", "B4", "B5"},
		MaxPayload:  15600,
		SuccessRate: 0.6,
		Seed:        42,
	}
}

// LaunchGenerator produces deterministic launch histories for property tests.
type LaunchGenerator struct {
	config LaunchGeneratorConfig
	rng    *rand.Rand
}

// NewLaunchGenerator creates a new launch generator
func NewLaunchGenerator(config LaunchGeneratorConfig) *LaunchGenerator {
	return &LaunchGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns Count records. Later booster categories carry heavier
// payloads and a higher success rate, roughly like the real history.
func (g *LaunchGenerator) Generate() []launch.Record {
	records := make([]launch.Record, g.config.Count)
	nCat := len(g.config.Categories)

	for i := range records {
		catIdx := i * nCat / max(g.config.Count, 1)
		if catIdx >= nCat {
			catIdx = nCat - 1
		}
		progress := float64(catIdx+1) / float64(nCat)

		payload := g.rng.Float64() * g.config.MaxPayload * progress
		payload = math.Round(payload)

		rate := g.config.SuccessRate * (0.5 + progress/2)
		outcome := launch.OutcomeFailure
		if g.rng.Float64() < rate {
			outcome = launch.OutcomeSuccess
		}

		records[i] = launch.Record{
			FlightNumber:           i + 1,
			LaunchSite:             g.config.Sites[g.rng.Intn(len(g.config.Sites))],
			PayloadMassKg:          payload,
			Outcome:                outcome,
			BoosterVersionCategory: g.config.Categories[catIdx],
		}
	}
	return records
}
