package compliance

import (
	"time"
)

// Status is the outcome of a compliance check.
type Status string

const (
	StatusCompliant          Status = "compliant"
	StatusPartiallyCompliant Status = "partially_compliant"
	StatusNonCompliant       Status = "non_compliant"
	StatusPending            Status = "pending"
	StatusNotApplicable      Status = "not_applicable"
)

// Label returns the human readable form of the status.
func (s Status) Label() string {
	switch s {
	case StatusCompliant:
		return "Compliant"
	case StatusPartiallyCompliant:
		return "Partially Compliant"
	case StatusNonCompliant:
		return "Non-Compliant"
	case StatusPending:
		return "Pending"
	case StatusNotApplicable:
		return "Not Applicable"
	default:
		return "Unknown"
	}
}

// Result is the verdict of one rule against one score.
type Result struct {
	RuleID    string    `json:"rule_id" yaml:"rule_id"`
	Status    Status    `json:"status" yaml:"status"`
	Message   string    `json:"message" yaml:"message"`
	CheckedAt time.Time `json:"checked_at" yaml:"checked_at"`
}

// Aggregate folds results into one status. Any NonCompliant result wins,
// then any PartiallyCompliant; Pending and NotApplicable are ignored. An
// empty slice is vacuously Compliant.
func Aggregate(results []Result) Status {
	partial := false
	for _, r := range results {
		switch r.Status {
		case StatusNonCompliant:
			return StatusNonCompliant
		case StatusPartiallyCompliant:
			partial = true
		}
	}
	if partial {
		return StatusPartiallyCompliant
	}
	return StatusCompliant
}
