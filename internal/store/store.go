// Package store provides the exam data sources the query service
// reads from. Both implementations expose the same immutable view:
// records for one qualification, in ingestion order.
package store

import (
	"context"
	"errors"

	"github.com/examfinder/examfinder-backend/internal/model"
)

// Errors returned by data sources. ErrUnknownQualification maps to a
// not-found response; ErrSourceUnavailable to a server error.
var (
	ErrUnknownQualification = errors.New("unknown qualification")
	ErrSourceUnavailable    = errors.New("exam data unavailable")
)

// Source answers qualification-scoped reads over the exam dataset.
// Implementations are safe for concurrent readers; nothing writes
// after construction.
type Source interface {
	// Exams returns all records for one qualification in ingestion
	// order. The caller owns the returned slice.
	Exams(ctx context.Context, qualification string) ([]model.ExamRecord, error)
	// Qualifications lists the qualifications this source can serve,
	// in presentation order.
	Qualifications() []string
}
