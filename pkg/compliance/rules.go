package compliance

import (
	"fmt"
	"strings"
	"time"
)

// Framework is a regulatory framework a rule belongs to.
type Framework string

const (
	FrameworkEUSFDR     Framework = "EU_SFDR"
	FrameworkEUTaxonomy Framework = "EU_Taxonomy"
	FrameworkSECClimate Framework = "SEC_Climate"
	FrameworkMiFIDII    Framework = "MiFID_II"
	FrameworkBasel      Framework = "Basel"
)

// CustomFramework identifies a caller-defined framework.
func CustomFramework(id uint32) Framework {
	return Framework(fmt.Sprintf("Custom-%d", id))
}

// Name returns the display name of the framework.
func (f Framework) Name() string {
	switch f {
	case FrameworkEUSFDR:
		return "EU SFDR"
	case FrameworkEUTaxonomy:
		return "EU Taxonomy"
	case FrameworkSECClimate:
		return "SEC Climate"
	case FrameworkMiFIDII:
		return "MiFID II"
	case FrameworkBasel:
		return "Basel"
	default:
		return string(f)
	}
}

// Jurisdiction is where a rule applies.
type Jurisdiction string

const (
	JurisdictionEU     Jurisdiction = "EU"
	JurisdictionUS     Jurisdiction = "US"
	JurisdictionUK     Jurisdiction = "UK"
	JurisdictionBrazil Jurisdiction = "BRAZIL"
	JurisdictionGlobal Jurisdiction = "GLOBAL"
)

// CustomJurisdiction identifies a caller-defined jurisdiction.
func CustomJurisdiction(id uint32) Jurisdiction {
	return Jurisdiction(fmt.Sprintf("CUSTOM-%d", id))
}

// Code returns the short jurisdiction code.
func (j Jurisdiction) Code() string {
	if j == JurisdictionBrazil {
		return "BR"
	}
	return string(j)
}

// Category groups rules by regulatory concern.
type Category string

const (
	CategoryKYCAML                Category = "KYC_AML"
	CategoryESGDisclosure         Category = "ESG_Disclosure"
	CategoryInvestmentRestriction Category = "InvestmentRestriction"
	CategoryReporting             Category = "Reporting"
	CategoryRiskManagement        Category = "RiskManagement"
)

// Severity orders rules by impact; higher is more severe. The zero value
// SeverityUnknown marks a rule that declares no severity.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses a severity name (case-insensitive).
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LOW":
		return SeverityLow, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "HIGH":
		return SeverityHigh, nil
	case "CRITICAL":
		return SeverityCritical, nil
	default:
		return SeverityUnknown, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalText renders the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name. Empty text and "UNKNOWN" decode to
// SeverityUnknown.
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "", "UNKNOWN":
		*s = SeverityUnknown
		return nil
	}
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Rule is a caller-supplied compliance rule.
type Rule struct {
	ID           string       `json:"id" yaml:"id"`
	Framework    Framework    `json:"framework" yaml:"framework"`
	Jurisdiction Jurisdiction `json:"jurisdiction" yaml:"jurisdiction"`
	Category     Category     `json:"category" yaml:"category"`
	Severity     Severity     `json:"severity" yaml:"severity"`
	Description  string       `json:"description" yaml:"description"`
	// A zero EffectiveFrom means the rule has always been in force.
	EffectiveFrom  time.Time  `json:"effective_from" yaml:"effective_from"`
	EffectiveUntil *time.Time `json:"effective_until,omitempty" yaml:"effective_until,omitempty"`
	// RequiredRating is a rating code such as "BBB"; empty means none.
	RequiredRating string `json:"required_rating,omitempty" yaml:"required_rating,omitempty"`
}

// IsEffective reports whether the rule is in force at the given time.
// Both window bounds are inclusive.
func (r Rule) IsEffective(at time.Time) bool {
	if !r.EffectiveFrom.IsZero() && at.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveUntil != nil && at.After(*r.EffectiveUntil) {
		return false
	}
	return true
}

// AppliesTo reports whether the rule covers the jurisdiction, either
// directly or because the rule is global.
func (r Rule) AppliesTo(j Jurisdiction) bool {
	return r.Jurisdiction == j || r.Jurisdiction == JurisdictionGlobal
}
