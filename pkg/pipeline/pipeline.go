// Package pipeline runs the full ESG flow for one instrument: scoring,
// compliance evaluation and ISO 20022 message generation.
package pipeline

import (
	"context"
	"fmt"

	"github.com/aristath/esgbridge/pkg/compliance"
	"github.com/aristath/esgbridge/pkg/config"
	"github.com/aristath/esgbridge/pkg/esg"
	"github.com/aristath/esgbridge/pkg/iso20022"
	"github.com/aristath/esgbridge/pkg/logger"
	"github.com/aristath/esgbridge/pkg/oracle"
	"github.com/rs/zerolog"
)

const (
	// Version is the library release.
	Version = "0.1.0"
	// StandardID names the token standard whose rating the documents carry.
	StandardID = "ERC-8040"
)

// Input is one pipeline run.
type Input struct {
	Instrument    iso20022.FinancialInstrument
	Environmental float64
	Social        float64
	Governance    float64
	Rules         []compliance.Rule
}

// Report is the outcome of one pipeline run.
type Report struct {
	Score          esg.Score               `json:"score"`
	Minimum        compliance.Result       `json:"minimum"`
	Results        []compliance.Result     `json:"results"`
	Status         compliance.Status       `json:"status"`
	Classification iso20022.Classification `json:"classification"`
	Message        string                  `json:"message"`
}

// Pipeline wires the score engine to the compliance validator and the
// ISO 20022 bridge.
type Pipeline struct {
	engine       *esg.Engine
	validator    *compliance.Validator
	bridge       *iso20022.Bridge
	minimumScore int
	log          zerolog.Logger
}

// New creates a pipeline from its components.
func New(
	engine *esg.Engine,
	validator *compliance.Validator,
	bridge *iso20022.Bridge,
	minimumScore int,
	log zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		engine:       engine,
		validator:    validator,
		bridge:       bridge,
		minimumScore: minimumScore,
		log:          logger.Component(log, "pipeline"),
	}
}

// FromConfig builds a pipeline with the configured weights and floor.
func FromConfig(cfg *config.Config, log zerolog.Logger) (*Pipeline, error) {
	engine, err := esg.NewEngine(cfg.Weights, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create score engine: %w", err)
	}
	return New(engine, compliance.NewValidator(log), iso20022.NewBridge(log), cfg.MinimumScore, log), nil
}

// Run scores the input and evaluates and renders the result.
func (p *Pipeline) Run(ctx context.Context, in Input) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	score := p.engine.Calculate(in.Environmental, in.Social, in.Governance)
	return p.evaluate(in.Instrument, score, in.Rules), nil
}

// RunFromProvider fetches the entity's score from an oracle instead of
// computing it from raw pillars.
func (p *Pipeline) RunFromProvider(
	ctx context.Context,
	provider oracle.Provider,
	entityID string,
	instrument iso20022.FinancialInstrument,
	rules []compliance.Rule,
) (Report, error) {
	score, err := oracle.FetchScore(ctx, provider, entityID)
	if err != nil {
		return Report{}, err
	}
	return p.evaluate(instrument, score, rules), nil
}

func (p *Pipeline) evaluate(instrument iso20022.FinancialInstrument, score esg.Score, rules []compliance.Rule) Report {
	minimum := p.validator.ValidateAgainstMinimum(score, p.minimumScore)
	results := p.validator.ValidateAll(score, rules)

	all := make([]compliance.Result, 0, len(results)+1)
	all = append(all, minimum)
	all = append(all, results...)

	classification := p.bridge.Classify(score)

	report := Report{
		Score:          score,
		Minimum:        minimum,
		Results:        results,
		Status:         compliance.Aggregate(all),
		Classification: classification,
		Message:        iso20022.RenderMessage(instrument, classification),
	}

	p.log.Info().
		Str("isin", instrument.ISIN).
		Int("total", score.Total).
		Str("rating", score.Rating.String()).
		Str("status", string(report.Status)).
		Int("rules", len(results)).
		Msg("ESG pipeline completed")

	return report
}
