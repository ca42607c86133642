package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/examfinder/examfinder-backend/internal/model"
	"github.com/examfinder/examfinder-backend/internal/store"
)

// SearchService answers qualification-scoped, optionally filtered
// queries over the exam dataset. It is stateless: every call reads
// the injected source and filters in place.
type SearchService struct {
	source store.Source
	log    zerolog.Logger
}

func NewSearchService(source store.Source, log zerolog.Logger) *SearchService {
	return &SearchService{
		source: source,
		log:    log.With().Str("component", "search_service").Logger(),
	}
}

// Search returns the qualification's records matching term, in
// ingestion order. An empty term matches everything. Matching is a
// case-insensitive substring test over subject and title.
func (s *SearchService) Search(ctx context.Context, qualification, term string) ([]model.ExamRecord, error) {
	exams, err := s.source.Exams(ctx, qualification)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return exams, nil
	}

	needle := strings.ToLower(term)
	matches := make([]model.ExamRecord, 0, len(exams))
	for _, exam := range exams {
		if strings.Contains(strings.ToLower(exam.Subject), needle) ||
			strings.Contains(strings.ToLower(exam.Title), needle) {
			matches = append(matches, exam)
		}
	}

	s.log.Debug().
		Str("qualification", qualification).
		Str("term", term).
		Int("matches", len(matches)).
		Msg("search complete")
	return matches, nil
}

// Qualifications lists the qualification names the data source can
// serve, for populating client selection UI.
func (s *SearchService) Qualifications() []string {
	return s.source.Qualifications()
}
