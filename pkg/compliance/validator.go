// Package compliance evaluates ESG scores against caller-supplied regulatory
// rules and folds the verdicts into an aggregate status.
package compliance

import (
	"sync"
	"time"

	"github.com/aristath/esgbridge/pkg/esg"
	"github.com/aristath/esgbridge/pkg/logger"
	"github.com/rs/zerolog"
)

// MinimumScoreRuleID identifies results of ValidateAgainstMinimum.
const MinimumScoreRuleID = "esg_min_score"

const (
	msgMinimumMet    = "ESG score meets minimum requirement"
	msgMinimumMissed = "ESG score below minimum requirement"
	msgRuleValidated = "Rule validated"
)

type evaluatorKey struct {
	framework    Framework
	jurisdiction Jurisdiction
}

// Validator checks scores against rules. Rule-specific behaviour is looked up
// by framework and jurisdiction; rules without a registered evaluator are
// treated as compliant.
type Validator struct {
	mu         sync.RWMutex
	evaluators map[evaluatorKey]RuleEvaluator
	fallback   RuleEvaluator
	now        func() time.Time
	log        zerolog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the clock used for rule effectiveness and result stamps.
// A nil clock leaves time.Now in place.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithFallback replaces the evaluator used when no framework/jurisdiction
// evaluator is registered. A nil evaluator is ignored.
func WithFallback(e RuleEvaluator) Option {
	return func(v *Validator) {
		if e != nil {
			v.fallback = e
		}
	}
}

// NewValidator creates a validator.
func NewValidator(log zerolog.Logger, opts ...Option) *Validator {
	v := &Validator{
		evaluators: make(map[evaluatorKey]RuleEvaluator),
		fallback:   AlwaysCompliant(),
		now:        time.Now,
		log:        logger.Component(log, "compliance_validator"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Register installs an evaluator for rules of one framework in one
// jurisdiction, replacing any previous registration.
func (v *Validator) Register(framework Framework, jurisdiction Jurisdiction, e RuleEvaluator) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.evaluators[evaluatorKey{framework, jurisdiction}] = e
}

func (v *Validator) evaluatorFor(rule Rule) RuleEvaluator {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if e, ok := v.evaluators[evaluatorKey{rule.Framework, rule.Jurisdiction}]; ok {
		return e
	}
	return v.fallback
}

// ValidateAgainstMinimum checks the composite total against a floor.
func (v *Validator) ValidateAgainstMinimum(score esg.Score, minTotal int) Result {
	if score.Total >= minTotal {
		return Result{
			RuleID:    MinimumScoreRuleID,
			Status:    StatusCompliant,
			Message:   msgMinimumMet,
			CheckedAt: v.now(),
		}
	}
	return Result{
		RuleID:    MinimumScoreRuleID,
		Status:    StatusNonCompliant,
		Message:   msgMinimumMissed,
		CheckedAt: v.now(),
	}
}

// ValidateAll evaluates every rule in force, in the order given. Rules that
// are not in force are skipped and produce no result.
func (v *Validator) ValidateAll(score esg.Score, rules []Rule) []Result {
	at := v.now()
	results := make([]Result, 0, len(rules))

	for _, rule := range rules {
		if !rule.IsEffective(at) {
			v.log.Debug().Str("rule_id", rule.ID).Msg("Skipping rule not in force")
			continue
		}

		status, message := v.evaluatorFor(rule).Evaluate(score, rule)
		results = append(results, Result{
			RuleID:    rule.ID,
			Status:    status,
			Message:   message,
			CheckedAt: at,
		})

		v.log.Debug().
			Str("rule_id", rule.ID).
			Str("framework", string(rule.Framework)).
			Str("status", string(status)).
			Msg("Evaluated rule")
	}

	return results
}

// Aggregate folds results into one status; see the package-level Aggregate.
func (v *Validator) Aggregate(results []Result) Status {
	return Aggregate(results)
}
