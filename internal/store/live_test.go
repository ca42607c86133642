package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/examfinder/examfinder-backend/internal/model"
)

func writeTimetable(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "All Papers"))
	rows := [][]interface{}{
		{"Date", "Examination code", "Subject", "Title", "Time", "Duration"},
		{45810, "1MA1 1F", "Mathematics", "Paper 1: Non-Calculator", "Morning", "1.30"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("All Papers", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLiveStoreExams(t *testing.T) {
	dataDir := t.TempDir()
	writeTimetable(t, filepath.Join(dataDir, model.WorkbookFiles["GCSE"]))

	s := NewLiveStore(dataDir, zerolog.Nop())

	exams, err := s.Exams(context.Background(), "GCSE")
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "Mathematics", exams[0].Subject)
	// Live responses render dates in long form.
	assert.Equal(t, "2 June 2025", exams[0].Date)
	assert.Equal(t, "1h 30m", exams[0].Duration)
}

func TestLiveStoreUnknownQualification(t *testing.T) {
	s := NewLiveStore(t.TempDir(), zerolog.Nop())
	_, err := s.Exams(context.Background(), "NotARealQualification")
	assert.ErrorIs(t, err, ErrUnknownQualification)
}

func TestLiveStoreMissingWorkbook(t *testing.T) {
	s := NewLiveStore(t.TempDir(), zerolog.Nop())
	_, err := s.Exams(context.Background(), "GCSE")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestLiveStoreQualifications(t *testing.T) {
	s := NewLiveStore(t.TempDir(), zerolog.Nop())
	assert.Equal(t, model.Qualifications, s.Qualifications())
}
