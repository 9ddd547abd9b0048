// Package oracle defines the interface to external ESG data providers and a
// static provider for tests and offline use.
package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/esgbridge/pkg/esg"
	"github.com/aristath/esgbridge/pkg/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DataType is the kind of data requested from an oracle.
type DataType string

const (
	DataTypeESGScore         DataType = "esg_score"
	DataTypeCarbonEmissions  DataType = "carbon_emissions"
	DataTypeRegulatoryStatus DataType = "regulatory_status"
	DataTypeSanctionsCheck   DataType = "sanctions_check"
	DataTypeCreditRating     DataType = "credit_rating"
)

// Request asks an oracle for one datum about one entity.
type Request struct {
	ID          string    `json:"id"`
	DataType    DataType  `json:"data_type"`
	EntityID    string    `json:"entity_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewRequest creates a request with a fresh id.
func NewRequest(dataType DataType, entityID string) Request {
	return Request{
		ID:          uuid.NewString(),
		DataType:    dataType,
		EntityID:    entityID,
		RequestedAt: time.Now().UTC(),
	}
}

// Data is the payload of a response. Only the field matching Type is set.
type Data struct {
	Type             DataType   `json:"type"`
	Score            *esg.Score `json:"score,omitempty"`
	CarbonEmissions  float64    `json:"carbon_emissions,omitempty"`
	RegulatoryStatus bool       `json:"regulatory_status,omitempty"`
	Sanctioned       bool       `json:"sanctioned,omitempty"`
	CreditRating     string     `json:"credit_rating,omitempty"`
}

// Response is an oracle answer to a Request.
type Response struct {
	RequestID string    `json:"request_id"`
	Data      Data      `json:"data"`
	Timestamp time.Time `json:"timestamp"`
	Signature string    `json:"signature,omitempty"`
}

// Provider fetches data from an oracle.
type Provider interface {
	Fetch(ctx context.Context, req Request) (Response, error)
	Supports(dataType DataType) bool
}

// StaticProvider answers every request with fixed data.
type StaticProvider struct {
	score esg.Score
	log   zerolog.Logger
}

// NewStaticProvider creates a provider whose default score is computed by
// the engine from pillars 80/75/70.
func NewStaticProvider(engine *esg.Engine, log zerolog.Logger) *StaticProvider {
	return &StaticProvider{
		score: engine.Calculate(80, 75, 70),
		log:   logger.Component(log, "static_oracle"),
	}
}

// WithScore returns a copy of the provider that answers score requests with s.
func (p *StaticProvider) WithScore(s esg.Score) *StaticProvider {
	cp := *p
	cp.score = s
	return &cp
}

// Supports reports true for every known data type.
func (p *StaticProvider) Supports(dataType DataType) bool {
	switch dataType {
	case DataTypeESGScore, DataTypeCarbonEmissions, DataTypeRegulatoryStatus,
		DataTypeSanctionsCheck, DataTypeCreditRating:
		return true
	default:
		return false
	}
}

// Fetch answers the request.
func (p *StaticProvider) Fetch(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, fmt.Errorf("oracle request %s: %w", req.ID, err)
	}

	data := Data{Type: req.DataType}
	switch req.DataType {
	case DataTypeESGScore:
		score := p.score
		data.Score = &score
	case DataTypeCarbonEmissions:
		data.CarbonEmissions = 1000.0
	case DataTypeRegulatoryStatus:
		data.RegulatoryStatus = true
	case DataTypeSanctionsCheck:
		data.Sanctioned = false
	case DataTypeCreditRating:
		data.CreditRating = "A"
	default:
		return Response{}, fmt.Errorf("oracle request %s: unsupported data type %q", req.ID, req.DataType)
	}

	p.log.Debug().
		Str("request_id", req.ID).
		Str("entity_id", req.EntityID).
		Str("data_type", string(req.DataType)).
		Msg("Served oracle request")

	return Response{
		RequestID: req.ID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// FetchScore requests an ESG score for an entity.
func FetchScore(ctx context.Context, p Provider, entityID string) (esg.Score, error) {
	if !p.Supports(DataTypeESGScore) {
		return esg.Score{}, fmt.Errorf("provider does not supply %s data", DataTypeESGScore)
	}

	resp, err := p.Fetch(ctx, NewRequest(DataTypeESGScore, entityID))
	if err != nil {
		return esg.Score{}, fmt.Errorf("failed to fetch ESG score for %s: %w", entityID, err)
	}
	if resp.Data.Score == nil {
		return esg.Score{}, fmt.Errorf("oracle response %s carries no ESG score", resp.RequestID)
	}
	return *resp.Data.Score, nil
}
