// Package history provides persistent storage for completed screenings so a
// clinician can retrieve earlier results by ID or browse recent activity.
package history

import (
	"context"
	"time"

	"github.com/pediasafe-screening-server/internal/domain"
)

// Record is one persisted screening: the request, the full result and the
// per-category finding counts used for listing without unmarshaling results.
type Record struct {
	ID                 string                  `json:"id"`
	Request            domain.ScreeningRequest `json:"request"`
	Result             domain.ScreeningResult  `json:"result"`
	InappropriateCount int                     `json:"inappropriate_count"`
	OmissionCount      int                     `json:"omission_count"`
	InteractionCount   int                     `json:"interaction_count"`
	CreatedAt          time.Time               `json:"created_at"`
}

// NewRecord builds a record from a screening, deriving the counts.
func NewRecord(id string, req domain.ScreeningRequest, result domain.ScreeningResult) *Record {
	return &Record{
		ID:                 id,
		Request:            req,
		Result:             result,
		InappropriateCount: len(result.Inappropriate),
		OmissionCount:      len(result.Omissions),
		InteractionCount:   len(result.Interactions),
		CreatedAt:          time.Now().UTC(),
	}
}

// Store defines screening history storage operations.
type Store interface {
	// Save persists a screening record.
	Save(ctx context.Context, record *Record) error

	// Get retrieves a record by ID. A missing ID returns (nil, nil).
	Get(ctx context.Context, id string) (*Record, error)

	// List returns records newest first with pagination.
	List(ctx context.Context, limit, offset int) ([]*Record, error)

	// Count returns the total number of records.
	Count(ctx context.Context) (int64, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error

	// Close closes the store and releases resources.
	Close() error
}
