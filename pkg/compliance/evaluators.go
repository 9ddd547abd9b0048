package compliance

import (
	"fmt"

	"github.com/aristath/esgbridge/pkg/esg"
)

// RuleEvaluator produces the verdict of a single in-force rule.
type RuleEvaluator interface {
	Evaluate(score esg.Score, rule Rule) (Status, string)
}

// EvaluatorFunc adapts a function to RuleEvaluator.
type EvaluatorFunc func(score esg.Score, rule Rule) (Status, string)

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(score esg.Score, rule Rule) (Status, string) {
	return f(score, rule)
}

// AlwaysCompliant marks every rule compliant. It is the default evaluator
// until per-framework semantics are registered.
func AlwaysCompliant() RuleEvaluator {
	return EvaluatorFunc(func(esg.Score, Rule) (Status, string) {
		return StatusCompliant, msgRuleValidated
	})
}

// MinimumRatingEvaluator compares the score's rating with the rule's
// RequiredRating.
func MinimumRatingEvaluator() RuleEvaluator {
	return EvaluatorFunc(func(score esg.Score, rule Rule) (Status, string) {
		if rule.RequiredRating == "" {
			return StatusNotApplicable, "No ESG rating requirement"
		}

		required, ok := esg.ParseRating(rule.RequiredRating)
		if !ok {
			return StatusNonCompliant, fmt.Sprintf("Invalid required ESG rating %q", rule.RequiredRating)
		}

		if score.Rating.AtLeast(required) {
			return StatusCompliant, fmt.Sprintf("ESG rating %s meets requirement", score.Rating)
		}
		return StatusNonCompliant, fmt.Sprintf("ESG rating %s does not meet requirement of %s", score.Rating, required)
	})
}
