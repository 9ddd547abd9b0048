package esg

import "strings"

// Rating is one of the ten ESG rating bands. Better bands compare greater,
// so D < C < CC < ... < AAA. The zero value is RatingUnknown.
type Rating int

const (
	RatingUnknown Rating = iota
	RatingD
	RatingC
	RatingCC
	RatingCCC
	RatingB
	RatingBB
	RatingBBB
	RatingA
	RatingAA
	RatingAAA
)

// Ratings lists every band from best to worst.
var Ratings = []Rating{
	RatingAAA, RatingAA, RatingA, RatingBBB, RatingBB,
	RatingB, RatingCCC, RatingCC, RatingC, RatingD,
}

// Band thresholds, inclusive lower bounds on the composite total.
const (
	ThresholdAAA = 90
	ThresholdAA  = 85
	ThresholdA   = 80
	ThresholdBBB = 70
	ThresholdBB  = 60
	ThresholdB   = 50
	ThresholdCCC = 40
	ThresholdCC  = 30
	ThresholdC   = 20
)

// RatingFromScore maps a composite total to its rating band.
// Every integer maps to exactly one band; anything below 20 is D.
func RatingFromScore(total int) Rating {
	switch {
	case total >= ThresholdAAA:
		return RatingAAA
	case total >= ThresholdAA:
		return RatingAA
	case total >= ThresholdA:
		return RatingA
	case total >= ThresholdBBB:
		return RatingBBB
	case total >= ThresholdBB:
		return RatingBB
	case total >= ThresholdB:
		return RatingB
	case total >= ThresholdCCC:
		return RatingCCC
	case total >= ThresholdCC:
		return RatingCC
	case total >= ThresholdC:
		return RatingC
	default:
		return RatingD
	}
}

// RatingToString returns the canonical short code of a rating.
func RatingToString(r Rating) string {
	switch r {
	case RatingAAA:
		return "AAA"
	case RatingAA:
		return "AA"
	case RatingA:
		return "A"
	case RatingBBB:
		return "BBB"
	case RatingBB:
		return "BB"
	case RatingB:
		return "B"
	case RatingCCC:
		return "CCC"
	case RatingCC:
		return "CC"
	case RatingC:
		return "C"
	case RatingD:
		return "D"
	default:
		return "Unknown"
	}
}

func (r Rating) String() string {
	return RatingToString(r)
}

// ParseRating parses a canonical rating code (case-insensitive).
func ParseRating(code string) (Rating, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, r := range Ratings {
		if RatingToString(r) == code {
			return r, true
		}
	}
	return RatingUnknown, false
}

// IsInvestmentGrade reports whether the rating is BBB or better.
func (r Rating) IsInvestmentGrade() bool {
	switch r {
	case RatingAAA, RatingAA, RatingA, RatingBBB:
		return true
	default:
		return false
	}
}

// AtLeast reports whether r is the same band as min or better.
func (r Rating) AtLeast(min Rating) bool {
	return r != RatingUnknown && r >= min
}

// MarshalText renders the rating as its short code.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts a canonical rating code. Unrecognised codes decode to
// RatingUnknown rather than failing.
func (r *Rating) UnmarshalText(text []byte) error {
	parsed, _ := ParseRating(string(text))
	*r = parsed
	return nil
}
