package iso20022

import (
	"time"

	"github.com/google/uuid"
)

// MessageType is an ISO 20022 business area.
type MessageType string

const (
	MessageTypeSecuritiesTrade   MessageType = "setr"
	MessageTypePaymentInitiation MessageType = "pain"
	MessageTypeAccountStatement  MessageType = "camt"
)

// TradeConfirmationNamespace is the namespace of the generated document.
const TradeConfirmationNamespace = "urn:iso:std:iso:20022:tech:xsd:setr.010.001.04"

// FinancialInstrument identifies the instrument a message is about. Fields
// are opaque text; their format is not validated.
type FinancialInstrument struct {
	ISIN  string `json:"isin"`
	LEI   string `json:"lei"`
	Name  string `json:"name"`
	CUSIP string `json:"cusip,omitempty"`
}

// Classification is the ESG block carried by a trade confirmation.
type Classification struct {
	// TaxonomyAlignment is a fraction in [0, 1].
	TaxonomyAlignment float64 `json:"taxonomy_alignment"`
	// SFDRArticle is 6, 8 or 9.
	SFDRArticle int    `json:"sfdr_article"`
	Rating      string `json:"rating"`
	// CarbonIntensity in tCO2e per $M revenue; not populated by Classify.
	CarbonIntensity *float64 `json:"carbon_intensity,omitempty"`
}

// Purpose classifies the sustainability purpose of a debt instrument.
type Purpose string

const (
	PurposeGreenBond                Purpose = "GreenBond"
	PurposeSocialBond               Purpose = "SocialBond"
	PurposeSustainabilityBond       Purpose = "SustainabilityBond"
	PurposeSustainabilityLinkedBond Purpose = "SustainabilityLinkedBond"
	PurposeTransitionBond           Purpose = "TransitionBond"
	PurposeOther                    Purpose = "Other"
)

// Code returns the ISO 20022 purpose code.
func (p Purpose) Code() string {
	switch p {
	case PurposeGreenBond:
		return "GRBN"
	case PurposeSocialBond:
		return "SOCB"
	case PurposeSustainabilityBond:
		return "SUSB"
	case PurposeSustainabilityLinkedBond:
		return "SUSL"
	case PurposeTransitionBond:
		return "TRBN"
	default:
		return "OTHR"
	}
}

// TradeConfirmation is a securities trade confirmation with an ESG block.
type TradeConfirmation struct {
	MessageID      uuid.UUID           `json:"message_id"`
	Instrument     FinancialInstrument `json:"instrument"`
	Classification Classification      `json:"esg_classification"`
	Quantity       float64             `json:"quantity"`
	TradeDate      time.Time           `json:"trade_date"`
}

// Render serializes the confirmation document.
func (tc TradeConfirmation) Render() string {
	return RenderMessage(tc.Instrument, tc.Classification)
}
