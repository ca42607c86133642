package ingest

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/examfinder/examfinder-backend/internal/model"
)

// DateFormat selects how numeric (serial) workbook dates are rendered.
type DateFormat int

const (
	// DateISO renders dates as YYYY-MM-DD. Used for persisted snapshots.
	DateISO DateFormat = iota
	// DateLong renders dates in en-GB long form, e.g. "15 June 2025".
	// Used for live API responses.
	DateLong
)

// Sentinel errors for per-file conversion failures. All are non-fatal
// at batch level; callers isolate them per qualification.
var (
	ErrSheetNotFound = errors.New("no sheet containing \"all papers\" found")
	ErrNoRows        = errors.New("sheet contains no data rows")
)

// excelEpochOffset is the day difference between the workbook serial
// date epoch and 1970-01-01.
const excelEpochOffset = 25569

// Column alias chains, tried in priority order per field. New source
// spellings are added here, not in code.
var (
	dateAliases     = []string{"Date"}
	examCodeAliases = []string{"Examination code", "Exam code", "Code"}
	subjectAliases  = []string{"Subject"}
	titleAliases    = []string{"Title", "Paper Title", "Paper"}
	timeAliases     = []string{"Time", "Session"}
	durationAliases = []string{"Duration"}
)

// Converter turns timetable workbooks into ExamRecord lists.
type Converter struct {
	// Dates selects the rendering of serial date cells.
	Dates DateFormat
	// Strict controls sheet selection: when false, a missing "all
	// papers" sheet logs a diagnostic sample from the first sheet
	// before failing. The fallback sheet is never converted.
	Strict bool

	log zerolog.Logger
}

// NewConverter returns a Converter with the given date rendering and
// sheet-matching mode.
func NewConverter(dates DateFormat, strict bool, log zerolog.Logger) *Converter {
	return &Converter{
		Dates:  dates,
		Strict: strict,
		log:    log.With().Str("component", "converter").Logger(),
	}
}

// recordFromRow maps one header-keyed row onto an ExamRecord,
// applying alias fallbacks, serial date conversion and duration
// normalization. Malformed values degrade to empty fields.
func (cv *Converter) recordFromRow(qualification string, row map[string]string) model.ExamRecord {
	return model.ExamRecord{
		Qualification: qualification,
		Subject:       firstPresent(row, subjectAliases),
		Title:         firstPresent(row, titleAliases),
		ExamCode:      firstPresent(row, examCodeAliases),
		Date:          cv.formatDate(firstPresent(row, dateAliases)),
		Time:          firstPresent(row, timeAliases),
		Duration:      normalizeDuration(firstPresent(row, durationAliases)),
	}
}

// firstPresent returns the first non-empty value among the alias
// chain, or "" when none is present.
func firstPresent(row map[string]string, aliases []string) string {
	for _, key := range aliases {
		if v := row[key]; v != "" {
			return v
		}
	}
	return ""
}

// formatDate converts a serial day-count to a calendar date string.
// Non-numeric values pass through verbatim (the source sometimes
// stores dates as text).
func (cv *Converter) formatDate(raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	t := time.Unix(int64((serial-excelEpochOffset)*86400), 0).UTC()
	if cv.Dates == DateLong {
		return t.Format("2 January 2006")
	}
	return t.Format("2006-01-02")
}

// normalizeDuration reformats bare decimal durations ("1.5") into the
// "<hours>h <minutes>m" shape. Values already carrying an hour or
// minute marker pass through unchanged.
//
// The minutes part is taken verbatim from the decimal split, so "1.5"
// becomes "1h 5m", not "1h 30m".
func normalizeDuration(raw string) string {
	if raw == "" || strings.Contains(raw, "h") || strings.Contains(raw, "m") {
		return raw
	}
	hours, minutes, found := strings.Cut(raw, ".")
	if !found || minutes == "" {
		minutes = "00"
	}
	return hours + "h " + minutes + "m"
}
