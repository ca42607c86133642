package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/examfinder/examfinder-backend/internal/model"
)

// Snapshot is the on-disk materialization of all ingested records:
// a JSON object keyed by qualification name.
type Snapshot map[string]QualificationData

// QualificationData wraps one qualification's record list in the
// snapshot file.
type QualificationData struct {
	Exams []model.ExamRecord `json:"exams"`
}

// WriteSnapshot persists the converted dataset as pretty-printed JSON.
// Every known qualification gets an entry, failed ones with an empty
// list, so the file shape is stable across partial conversions.
func WriteSnapshot(path string, data map[string][]model.ExamRecord) error {
	snapshot := make(Snapshot, len(model.Qualifications))
	for _, qualification := range model.Qualifications {
		exams := data[qualification]
		if exams == nil {
			exams = []model.ExamRecord{}
		}
		snapshot[qualification] = QualificationData{Exams: exams}
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot file back into memory.
func LoadSnapshot(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

// SnapshotStore serves exam data from a snapshot loaded once at
// construction. Reads after that never touch the filesystem.
type SnapshotStore struct {
	data Snapshot
	log  zerolog.Logger
}

// NewSnapshotStore loads the snapshot at path. Records carry their
// qualification externally in the file, so the field is backfilled
// here.
func NewSnapshotStore(path string, log zerolog.Logger) (*SnapshotStore, error) {
	snapshot, err := LoadSnapshot(path)
	if err != nil {
		return nil, err
	}

	total := 0
	for qualification, data := range snapshot {
		for i := range data.Exams {
			if data.Exams[i].Qualification == "" {
				data.Exams[i].Qualification = qualification
			}
		}
		total += len(data.Exams)
	}

	log = log.With().Str("component", "snapshot_store").Logger()
	log.Info().Str("path", path).Int("records", total).Msg("snapshot loaded")

	return &SnapshotStore{data: snapshot, log: log}, nil
}

func (s *SnapshotStore) Exams(_ context.Context, qualification string) ([]model.ExamRecord, error) {
	data, ok := s.data[qualification]
	if !ok {
		return nil, ErrUnknownQualification
	}
	// Copy so callers can never mutate the loaded dataset.
	exams := make([]model.ExamRecord, len(data.Exams))
	copy(exams, data.Exams)
	return exams, nil
}

func (s *SnapshotStore) Qualifications() []string {
	names := make([]string, 0, len(s.data))
	for _, qualification := range model.Qualifications {
		if _, ok := s.data[qualification]; ok {
			names = append(names, qualification)
		}
	}
	return names
}
