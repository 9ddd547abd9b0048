// Package iso20022 derives regulatory classifications from ESG scores and
// renders them as ISO 20022 securities trade confirmation documents.
package iso20022

import (
	"strconv"
	"strings"
	"time"

	"github.com/aristath/esgbridge/pkg/esg"
	"github.com/aristath/esgbridge/pkg/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SFDR disclosure articles.
const (
	SFDRArticle6 = 6 // No sustainability objective
	SFDRArticle8 = 8 // Promotes ESG characteristics
	SFDRArticle9 = 9 // Sustainable investment objective
)

// Bridge maps ESG scores to ISO 20022 classifications. It holds no state
// beyond its logger.
type Bridge struct {
	log zerolog.Logger
}

// NewBridge creates a bridge.
func NewBridge(log zerolog.Logger) *Bridge {
	return &Bridge{log: logger.Component(log, "iso20022_bridge")}
}

// Classify derives the ESG classification of a score.
func (b *Bridge) Classify(score esg.Score) Classification {
	c := Classification{
		TaxonomyAlignment: TaxonomyAlignment(score),
		SFDRArticle:       SFDRArticle(score.Rating),
		Rating:            esg.RatingToString(score.Rating),
	}

	b.log.Debug().
		Float64("taxonomy_alignment", c.TaxonomyAlignment).
		Int("sfdr_article", c.SFDRArticle).
		Str("rating", c.Rating).
		Msg("Classified ESG score")

	return c
}

// TaxonomyAlignment is the environmental pillar as a fraction of 100. Social
// and governance pillars do not contribute.
func TaxonomyAlignment(score esg.Score) float64 {
	return float64(score.Environmental) / 100.0
}

// SFDRArticle maps a rating to its SFDR disclosure article.
func SFDRArticle(rating esg.Rating) int {
	switch rating {
	case esg.RatingAAA, esg.RatingAA, esg.RatingA:
		return SFDRArticle9
	case esg.RatingBBB, esg.RatingBB:
		return SFDRArticle8
	default:
		return SFDRArticle6
	}
}

// NewTradeConfirmation classifies the score and wraps it with the instrument
// in a confirmation carrying a fresh message id.
func (b *Bridge) NewTradeConfirmation(
	instrument FinancialInstrument,
	score esg.Score,
	quantity float64,
	tradeDate time.Time,
) TradeConfirmation {
	tc := TradeConfirmation{
		MessageID:      uuid.New(),
		Instrument:     instrument,
		Classification: b.Classify(score),
		Quantity:       quantity,
		TradeDate:      tradeDate,
	}

	b.log.Debug().
		Str("message_id", tc.MessageID.String()).
		Str("isin", instrument.ISIN).
		Msg("Built trade confirmation")

	return tc
}

// RenderMessage serializes a setr.010.001.04 document. The five XML markup
// characters in instrument and rating text are replaced by entities; every
// other byte, including whitespace and invalid UTF-8, is emitted unchanged.
// The alignment uses the shortest decimal form that round-trips, e.g. 0.85.
func RenderMessage(instrument FinancialInstrument, c Classification) string {
	lines := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<Document xmlns="` + TradeConfirmationNamespace + `">`,
		`  <SctiesTradConf>`,
		`    <FinInstrmId>`,
		`      <ISIN>` + escape(instrument.ISIN) + `</ISIN>`,
		`      <LEI>` + escape(instrument.LEI) + `</LEI>`,
		`      <Nm>` + escape(instrument.Name) + `</Nm>`,
		`    </FinInstrmId>`,
		`    <ESGClssfctn>`,
		`      <TaxnmyAlgnmt>` + strconv.FormatFloat(c.TaxonomyAlignment, 'g', -1, 64) + `</TaxnmyAlgnmt>`,
		`      <SFDRArtcl>` + strconv.Itoa(c.SFDRArticle) + `</SFDRArtcl>`,
		`      <ERC8040Rtg>` + escape(c.Rating) + `</ERC8040Rtg>`,
		`    </ESGClssfctn>`,
		`  </SctiesTradConf>`,
		`</Document>`,
	}
	return strings.Join(lines, "\n")
}

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return markupEscaper.Replace(s)
}
