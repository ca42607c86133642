package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examfinder/examfinder-backend/internal/model"
)

func sampleExams() []model.ExamRecord {
	return []model.ExamRecord{
		{
			Qualification: "GCSE",
			Subject:       "Mathematics",
			Title:         "Paper 1: Non-Calculator",
			ExamCode:      "1MA1 1F",
			Date:          "2025-06-02",
			Time:          "Morning",
			Duration:      "1h 30m",
		},
		{
			Qualification: "GCSE",
			Subject:       "English Language",
			Title:         "Paper 1",
			ExamCode:      "1EN0 01",
			Date:          "2025-06-04",
			Time:          "Afternoon",
			Duration:      "1h 45m",
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam-data.json")
	exams := sampleExams()

	require.NoError(t, WriteSnapshot(path, map[string][]model.ExamRecord{"GCSE": exams}))

	snapshot, err := LoadSnapshot(path)
	require.NoError(t, err)

	// Every known qualification has an entry, even without data.
	require.Len(t, snapshot, len(model.Qualifications))
	assert.Equal(t, exams, snapshot["GCSE"].Exams)
	assert.Empty(t, snapshot["BTEC"].Exams)
}

func TestLoadSnapshotMissing(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSnapshotStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam-data.json")
	require.NoError(t, WriteSnapshot(path, map[string][]model.ExamRecord{"GCSE": sampleExams()}))

	s, err := NewSnapshotStore(path, zerolog.Nop())
	require.NoError(t, err)

	t.Run("serves records in ingestion order", func(t *testing.T) {
		exams, err := s.Exams(context.Background(), "GCSE")
		require.NoError(t, err)
		assert.Equal(t, sampleExams(), exams)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		exams, err := s.Exams(context.Background(), "GCSE")
		require.NoError(t, err)
		exams[0].Subject = "mutated"

		again, err := s.Exams(context.Background(), "GCSE")
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", again[0].Subject)
	})

	t.Run("unknown qualification", func(t *testing.T) {
		_, err := s.Exams(context.Background(), "NotARealQualification")
		assert.ErrorIs(t, err, ErrUnknownQualification)
	})

	t.Run("qualifications in presentation order", func(t *testing.T) {
		assert.Equal(t, model.Qualifications, s.Qualifications())
	})
}

func TestSnapshotStoreBackfillsQualification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam-data.json")
	exams := sampleExams()
	for i := range exams {
		exams[i].Qualification = ""
	}
	require.NoError(t, WriteSnapshot(path, map[string][]model.ExamRecord{"GCSE": exams}))

	s, err := NewSnapshotStore(path, zerolog.Nop())
	require.NoError(t, err)

	loaded, err := s.Exams(context.Background(), "GCSE")
	require.NoError(t, err)
	for _, exam := range loaded {
		assert.Equal(t, "GCSE", exam.Qualification)
	}
}
