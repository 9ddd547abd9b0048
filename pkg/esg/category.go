package esg

// Category is one of the three ESG pillars.
type Category string

const (
	CategoryEnvironmental Category = "ENVIRONMENTAL"
	CategorySocial        Category = "SOCIAL"
	CategoryGovernance    Category = "GOVERNANCE"
)

// Code returns the single letter pillar code.
func (c Category) Code() string {
	switch c {
	case CategoryEnvironmental:
		return "E"
	case CategorySocial:
		return "S"
	case CategoryGovernance:
		return "G"
	default:
		return "?"
	}
}
