// Package advisor recommends difficulty tier changes from player statistics.
//
// The game only consumes the recommended tier. Whether it is applied is up to
// the player: recommendations are shown after a game ends and take effect on
// the next game once accepted.
package advisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/nagapatha/internal/config"
)

// ErrInvalidRequest is returned for requests with out-of-range fields.
var ErrInvalidRequest = errors.New("advisor: invalid request")

// Recommendation is the direction of a tier change.
type Recommendation string

const (
	Increase Recommendation = "increase"
	Decrease Recommendation = "decrease"
	Stay     Recommendation = "stay"
)

// Request carries the player statistics an advisor works from.
type Request struct {
	CurrentTier           config.Tier `json:"currentDifficultyTier"`
	LastScore             int         `json:"lastScore"`
	HighScore             int         `json:"highestScore"`
	AverageSessionSeconds float64     `json:"averageSessionLengthSeconds"`
	GamesPlayed           int         `json:"gamesPlayed"`
}

// Validate checks the request fields.
func (r Request) Validate() error {
	if r.CurrentTier < config.MinTier || r.CurrentTier > config.MaxTier {
		return fmt.Errorf("%w: tier %d", ErrInvalidRequest, r.CurrentTier)
	}
	if r.LastScore < 0 || r.HighScore < 0 || r.GamesPlayed < 0 || r.AverageSessionSeconds < 0 {
		return fmt.Errorf("%w: negative statistic", ErrInvalidRequest)
	}
	return nil
}

// Response is an advisor's recommendation.
type Response struct {
	Recommendation  Recommendation `json:"recommendation"`
	RecommendedTier config.Tier    `json:"recommendedTier"`
	Explanation     string         `json:"explanation"`
}

// Normalize clamps the recommended tier and makes Recommendation agree with
// the change relative to current.
func (r Response) Normalize(current config.Tier) Response {
	r.RecommendedTier = config.ClampTier(r.RecommendedTier)
	switch {
	case r.RecommendedTier > current:
		r.Recommendation = Increase
	case r.RecommendedTier < current:
		r.Recommendation = Decrease
	default:
		r.Recommendation = Stay
	}
	return r
}

// Changes reports whether accepting the response would change the tier.
func (r Response) Changes(current config.Tier) bool {
	return r.RecommendedTier != current
}

// Advisor produces a recommendation for a request.
type Advisor interface {
	Advise(ctx context.Context, req Request) (Response, error)
}

// Func adapts an ordinary function to the Advisor interface.
type Func func(ctx context.Context, req Request) (Response, error)

// Advise calls f.
func (f Func) Advise(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// Ask validates req, calls a and normalizes the answer. Errors from a are
// wrapped; the caller decides how to surface them.
func Ask(ctx context.Context, a Advisor, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}
	if err := ctx.Err(); err != nil {
		return Response{}, fmt.Errorf("advisor: %w", err)
	}
	resp, err := a.Advise(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("advisor: recommendation failed: %w", err)
	}
	return resp.Normalize(req.CurrentTier), nil
}
