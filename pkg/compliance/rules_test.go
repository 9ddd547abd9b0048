package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_IsEffective(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	until := now.Add(10 * 24 * time.Hour)
	rule := Rule{
		ID:             "TEST-001",
		EffectiveFrom:  now.Add(-10 * 24 * time.Hour),
		EffectiveUntil: &until,
	}

	assert.True(t, rule.IsEffective(now))
	assert.True(t, rule.IsEffective(rule.EffectiveFrom), "lower bound is inclusive")
	assert.True(t, rule.IsEffective(until), "upper bound is inclusive")
	assert.False(t, rule.IsEffective(now.Add(-20*24*time.Hour)))
	assert.False(t, rule.IsEffective(now.Add(20*24*time.Hour)))

	assert.True(t, Rule{ID: "OPEN"}.IsEffective(now), "zero window is always in force")
}

func TestRule_AppliesTo(t *testing.T) {
	rule := Rule{ID: "TEST-001", Jurisdiction: JurisdictionEU}
	assert.True(t, rule.AppliesTo(JurisdictionEU))
	assert.False(t, rule.AppliesTo(JurisdictionUS))

	global := Rule{ID: "TEST-002", Jurisdiction: JurisdictionGlobal}
	assert.True(t, global.AppliesTo(JurisdictionEU))
	assert.True(t, global.AppliesTo(JurisdictionUS))
}

func TestFramework_Name(t *testing.T) {
	assert.Equal(t, "EU SFDR", FrameworkEUSFDR.Name())
	assert.Equal(t, "EU Taxonomy", FrameworkEUTaxonomy.Name())
	assert.Equal(t, "SEC Climate", FrameworkSECClimate.Name())
	assert.Equal(t, "MiFID II", FrameworkMiFIDII.Name())
	assert.Equal(t, "Basel", FrameworkBasel.Name())
	assert.Equal(t, "Custom-7", CustomFramework(7).Name())
}

func TestJurisdiction_Code(t *testing.T) {
	assert.Equal(t, "EU", JurisdictionEU.Code())
	assert.Equal(t, "US", JurisdictionUS.Code())
	assert.Equal(t, "UK", JurisdictionUK.Code())
	assert.Equal(t, "BR", JurisdictionBrazil.Code())
	assert.Equal(t, "GLOBAL", JurisdictionGlobal.Code())
	assert.Equal(t, "CUSTOM-3", CustomJurisdiction(3).Code())
}

func TestSeverity(t *testing.T) {
	assert.Less(t, SeverityLow, SeverityMedium)
	assert.Less(t, SeverityHigh, SeverityCritical)
	assert.Equal(t, "HIGH", SeverityHigh.String())
	assert.Equal(t, "UNKNOWN", Severity(0).String())

	s, err := ParseSeverity("critical")
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, s)

	_, err = ParseSeverity("extreme")
	assert.Error(t, err)
}

func TestSeverity_TextRoundTrip(t *testing.T) {
	for _, s := range []Severity{SeverityUnknown, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		t.Run(s.String(), func(t *testing.T) {
			text, err := s.MarshalText()
			require.NoError(t, err)

			var decoded Severity
			require.NoError(t, decoded.UnmarshalText(text))
			assert.Equal(t, s, decoded)
		})
	}

	empty := SeverityHigh
	require.NoError(t, empty.UnmarshalText(nil))
	assert.Equal(t, SeverityUnknown, empty)
}
