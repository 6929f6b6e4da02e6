package advisor

import (
	"context"

	"github.com/vovakirdan/nagapatha/internal/config"
)

// Thresholds tune RulesAdvisor.
type Thresholds struct {
	// MinGames is the number of games needed before any change is suggested.
	MinGames int
	// IncreaseScore is the last score, per tier, that earns a harder tier.
	IncreaseScore map[config.Tier]int
	// StruggleScore is the last score at or below which a lower tier is suggested.
	StruggleScore int
	// ShortSessionSeconds marks sessions that end too quickly.
	ShortSessionSeconds float64
}

// DefaultThresholds returns the thresholds used by the "rules" advisor.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinGames: 2,
		IncreaseScore: map[config.Tier]int{
			config.TierEasy:   15,
			config.TierMedium: 20,
		},
		StruggleScore:       3,
		ShortSessionSeconds: 20,
	}
}

// RulesAdvisor is a deterministic local advisor. A high score on a low tier
// earns an increase; low scores or short sessions on a higher tier earn a
// decrease; everything else stays.
type RulesAdvisor struct {
	t Thresholds
}

// NewRulesAdvisor creates an advisor with default thresholds.
func NewRulesAdvisor() *RulesAdvisor {
	return &RulesAdvisor{t: DefaultThresholds()}
}

// NewRulesAdvisorWith creates an advisor with custom thresholds.
func NewRulesAdvisorWith(t Thresholds) *RulesAdvisor {
	return &RulesAdvisor{t: t}
}

// Advise implements Advisor.
func (a *RulesAdvisor) Advise(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	tier := config.ClampTier(req.CurrentTier)

	if req.GamesPlayed < a.t.MinGames {
		return Response{
			Recommendation:  Stay,
			RecommendedTier: tier,
			Explanation:     "Play a few more rounds so we can get a feel for your style.",
		}, nil
	}

	if target, ok := a.t.IncreaseScore[tier]; ok && tier < config.MaxTier &&
		req.LastScore >= target && req.AverageSessionSeconds >= a.t.ShortSessionSeconds {
		return Response{
			Recommendation:  Increase,
			RecommendedTier: tier + 1,
			Explanation:     "You're mastering this level, time for a faster snake!",
		}, nil
	}

	if tier > config.MinTier &&
		(req.LastScore <= a.t.StruggleScore || req.AverageSessionSeconds < a.t.ShortSessionSeconds) {
		return Response{
			Recommendation:  Decrease,
			RecommendedTier: tier - 1,
			Explanation:     "A slightly calmer pace should help you build longer runs.",
		}, nil
	}

	return Response{
		Recommendation:  Stay,
		RecommendedTier: tier,
		Explanation:     "This speed suits you well, keep chasing that high score!",
	}, nil
}
