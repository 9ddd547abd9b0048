package esg

// Score is an immutable ESG score produced by Engine.Calculate.
// All numeric fields are in [0, 100].
type Score struct {
	Environmental int    `json:"environmental" yaml:"environmental"`
	Social        int    `json:"social" yaml:"social"`
	Governance    int    `json:"governance" yaml:"governance"`
	Total         int    `json:"total" yaml:"total"`
	Rating        Rating `json:"rating" yaml:"rating"`
}

// IsInvestmentGrade reports whether the score's rating is BBB or better.
func (s Score) IsInvestmentGrade() bool {
	return s.Rating.IsInvestmentGrade()
}

// Pillar returns the sub-score of one pillar.
func (s Score) Pillar(c Category) int {
	switch c {
	case CategoryEnvironmental:
		return s.Environmental
	case CategorySocial:
		return s.Social
	case CategoryGovernance:
		return s.Governance
	default:
		return 0
	}
}
