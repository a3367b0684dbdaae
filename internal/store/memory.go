package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/noteflowhq/noteflow/internal/model"
)

// memoryStore is a process-local Store used by tests and local runs
// without Firestore credentials.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]model.NotesRecord
	seq     map[string]uint64
	nextSeq uint64
	now     func() time.Time
}

// NewMemory creates an empty in-memory Store.
func NewMemory() Store {
	return &memoryStore{
		records: make(map[string]model.NotesRecord),
		seq:     make(map[string]uint64),
		now:     time.Now,
	}
}

func (s *memoryStore) Save(ctx context.Context, audioName, transcription, summary string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UTC()
	s.nextSeq++
	s.records[audioName] = model.NotesRecord{
		AudioName:     audioName,
		Transcription: transcription,
		Summary:       summary,
		Timestamp:     ts,
	}
	// Insertion sequence breaks ties between saves within clock resolution.
	s.seq[audioName] = s.nextSeq
	return ts, nil
}

func (s *memoryStore) FetchAll(ctx context.Context) ([]model.NotesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.NotesRecord, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		ti, tj := records[i].Timestamp, records[j].Timestamp
		if ti.Equal(tj) {
			return s.seq[records[i].AudioName] > s.seq[records[j].AudioName]
		}
		return ti.After(tj)
	})
	return records, nil
}
