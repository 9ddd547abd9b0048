package pipeline

import (
	"context"
	"encoding/xml"
	"testing"

	"github.com/aristath/esgbridge/pkg/compliance"
	"github.com/aristath/esgbridge/pkg/config"
	"github.com/aristath/esgbridge/pkg/esg"
	"github.com/aristath/esgbridge/pkg/iso20022"
	"github.com/aristath/esgbridge/pkg/oracle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInstrument = iso20022.FinancialInstrument{
	ISIN: "US1234567890",
	LEI:  "123456789012345678XX",
	Name: "ERC8040 Token",
}

func newPipeline(t *testing.T, minimum int) *Pipeline {
	t.Helper()
	log := zerolog.Nop()
	return New(esg.NewDefaultEngine(log), compliance.NewValidator(log), iso20022.NewBridge(log), minimum, log)
}

func TestRun_FullWorkflow(t *testing.T) {
	p := newPipeline(t, 70)
	rules := []compliance.Rule{
		{ID: "SFDR-001", Framework: compliance.FrameworkEUSFDR, Jurisdiction: compliance.JurisdictionEU, RequiredRating: "BBB"},
		{ID: "TAX-001", Framework: compliance.FrameworkEUTaxonomy, Jurisdiction: compliance.JurisdictionEU},
	}

	report, err := p.Run(context.Background(), Input{
		Instrument:    testInstrument,
		Environmental: 90,
		Social:        85,
		Governance:    80,
		Rules:         rules,
	})
	require.NoError(t, err)

	assert.Equal(t, 85, report.Score.Total)
	assert.Equal(t, esg.RatingAA, report.Score.Rating)
	assert.Equal(t, compliance.StatusCompliant, report.Minimum.Status)
	require.Len(t, report.Results, 2)
	assert.Equal(t, compliance.StatusCompliant, report.Status)
	assert.Equal(t, 9, report.Classification.SFDRArticle)
	assert.Equal(t, 0.9, report.Classification.TaxonomyAlignment)

	var doc struct {
		Name   string `xml:"SctiesTradConf>FinInstrmId>Nm"`
		Rating string `xml:"SctiesTradConf>ESGClssfctn>ERC8040Rtg"`
	}
	require.NoError(t, xml.Unmarshal([]byte(report.Message), &doc))
	assert.Equal(t, testInstrument.Name, doc.Name)
	assert.Equal(t, "AA", doc.Rating)
}

func TestRun_BelowMinimum(t *testing.T) {
	p := newPipeline(t, 60)

	report, err := p.Run(context.Background(), Input{
		Instrument:    testInstrument,
		Environmental: 47,
		Social:        47,
		Governance:    47,
	})
	require.NoError(t, err)

	assert.Equal(t, 47, report.Score.Total)
	assert.Equal(t, compliance.StatusNonCompliant, report.Minimum.Status)
	assert.Empty(t, report.Results)
	assert.Equal(t, compliance.StatusNonCompliant, report.Status)
	assert.Equal(t, 6, report.Classification.SFDRArticle)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPipeline(t, 50).Run(ctx, Input{Instrument: testInstrument})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunFromProvider(t *testing.T) {
	p := newPipeline(t, 70)
	provider := oracle.NewStaticProvider(esg.NewDefaultEngine(zerolog.Nop()), zerolog.Nop())

	report, err := p.RunFromProvider(context.Background(), provider, "0x1234567890abcdef", testInstrument, nil)
	require.NoError(t, err)

	assert.Equal(t, 75, report.Score.Total)
	assert.Equal(t, esg.RatingBBB, report.Score.Rating)
	assert.Equal(t, compliance.StatusCompliant, report.Status)
	assert.Equal(t, 8, report.Classification.SFDRArticle)
	assert.Contains(t, report.Message, "<TaxnmyAlgnmt>0.8</TaxnmyAlgnmt>")
}

func TestFromConfig(t *testing.T) {
	p, err := FromConfig(&config.Config{Weights: esg.Weights{Environmental: 2, Social: 1, Governance: 1}, MinimumScore: 70}, zerolog.Nop())
	require.NoError(t, err)

	report, err := p.Run(context.Background(), Input{Instrument: testInstrument, Environmental: 80, Social: 60, Governance: 60})
	require.NoError(t, err)
	assert.Equal(t, 70, report.Score.Total)
	assert.Equal(t, compliance.StatusCompliant, report.Minimum.Status)

	_, err = FromConfig(&config.Config{Weights: esg.Weights{}}, zerolog.Nop())
	assert.ErrorIs(t, err, esg.ErrInvalidConfiguration)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "0.1.0", Version)
	assert.Equal(t, "ERC-8040", StandardID)
}
