// Package esg provides the score engine: pillar normalization, weighting and
// rating band classification.
package esg

import (
	"errors"
	"fmt"

	"github.com/aristath/esgbridge/pkg/formulas"
	"github.com/aristath/esgbridge/pkg/logger"
	"github.com/rs/zerolog"
)

// Pillar and composite scores are bounded to this range.
const (
	MinScore = 0
	MaxScore = 100
)

// ErrInvalidConfiguration is returned when engine weights are rejected.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Weights are the relative pillar weights of the composite score.
type Weights struct {
	Environmental float64 `json:"environmental" yaml:"environmental"`
	Social        float64 `json:"social" yaml:"social"`
	Governance    float64 `json:"governance" yaml:"governance"`
}

// DefaultWeights weights the three pillars equally.
func DefaultWeights() Weights {
	return Weights{
		Environmental: 1.0 / 3.0,
		Social:        1.0 / 3.0,
		Governance:    1.0 / 3.0,
	}
}

func (w Weights) slice() []float64 {
	return []float64{w.Environmental, w.Social, w.Governance}
}

// Engine calculates ESG scores. Weights are normalized at construction and
// never change, so an Engine is safe for concurrent use.
type Engine struct {
	weights []float64 // environmental, social, governance; sums to 1
	log     zerolog.Logger
}

// NewEngine creates a score engine. Weights must be non-negative and sum to a
// positive value; they are normalized to sum to exactly 1.
func NewEngine(w Weights, log zerolog.Logger) (*Engine, error) {
	log = logger.Component(log, "score_engine")

	raw := w.slice()
	if !formulas.WeightsValid(raw) {
		log.Warn().
			Float64("environmental", w.Environmental).
			Float64("social", w.Social).
			Float64("governance", w.Governance).
			Msg("Rejected ESG weights")
		return nil, fmt.Errorf("%w: ESG weights must be non-negative and sum to > 0 (got %v, %v, %v)",
			ErrInvalidConfiguration, w.Environmental, w.Social, w.Governance)
	}

	e := &Engine{
		weights: formulas.NormalizeWeights(raw),
		log:     log,
	}

	log.Debug().
		Float64("environmental", e.weights[0]).
		Float64("social", e.weights[1]).
		Float64("governance", e.weights[2]).
		Msg("Score engine configured")

	return e, nil
}

// NewDefaultEngine creates an engine with equal pillar weights.
func NewDefaultEngine(log zerolog.Logger) *Engine {
	e, err := NewEngine(DefaultWeights(), log)
	if err != nil {
		// DefaultWeights are always valid.
		panic(err)
	}
	return e
}

// Weights returns the normalized weights.
func (e *Engine) Weights() Weights {
	return Weights{
		Environmental: e.weights[0],
		Social:        e.weights[1],
		Governance:    e.weights[2],
	}
}

// Calculate builds a score from raw pillar inputs. Out-of-range and
// non-finite inputs are clamped to [0, 100] rather than rejected; each pillar
// is rounded to the nearest integer before weighting.
func (e *Engine) Calculate(environmental, social, governance float64) Score {
	env := formulas.ClampRound(environmental, MinScore, MaxScore)
	soc := formulas.ClampRound(social, MinScore, MaxScore)
	gov := formulas.ClampRound(governance, MinScore, MaxScore)

	weighted := formulas.WeightedSum(
		[]float64{float64(env), float64(soc), float64(gov)},
		e.weights,
	)
	total := formulas.ClampRound(weighted, MinScore, MaxScore)

	score := Score{
		Environmental: env,
		Social:        soc,
		Governance:    gov,
		Total:         total,
		Rating:        RatingFromScore(total),
	}

	e.log.Debug().
		Int("total", score.Total).
		Str("rating", score.Rating.String()).
		Msg("Calculated ESG score")

	return score
}
