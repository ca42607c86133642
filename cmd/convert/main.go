// Command convert reads every qualification's timetable workbook and
// writes the combined dataset as a JSON snapshot. Failures are
// isolated per file: a missing or malformed workbook is logged and
// skipped, and its qualification ends up with an empty record list.
package main

import (
	"os"

	"github.com/examfinder/examfinder-backend/internal/config"
	"github.com/examfinder/examfinder-backend/internal/ingest"
	"github.com/examfinder/examfinder-backend/internal/logger"
	"github.com/examfinder/examfinder-backend/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	log.Info().Str("data_dir", cfg.DataDir).Msg("Converting timetable workbooks")

	// Snapshots carry ISO dates. Non-strict sheet matching so an
	// unrecognized workbook dumps a diagnostic sample before being
	// skipped.
	cv := ingest.NewConverter(ingest.DateISO, false, log)
	results, failures := ingest.ConvertAll(cfg.DataDir, cv)

	total := 0
	for _, exams := range results {
		total += len(exams)
	}
	for _, failure := range failures {
		log.Warn().
			Err(failure.Err).
			Str("qualification", failure.Qualification).
			Msg("Qualification skipped")
	}

	if err := store.WriteSnapshot(cfg.SnapshotPath, results); err != nil {
		log.Error().Err(err).Str("path", cfg.SnapshotPath).Msg("Failed to write snapshot")
		os.Exit(1)
	}

	log.Info().
		Str("path", cfg.SnapshotPath).
		Int("qualifications", len(results)).
		Int("records", total).
		Int("failures", len(failures)).
		Msg("Snapshot written")
}
