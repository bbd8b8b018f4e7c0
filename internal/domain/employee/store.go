package employee

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an insertion-ordered, in-memory list of records.
type Store struct {
	mu      sync.RWMutex
	records []Record
	index   map[string]int
}

func NewStore() *Store {
	return &Store{index: map[string]int{}}
}

func (s *Store) Create(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[rec.ID]; exists {
		return ErrDuplicateID
	}
	s.index[rec.ID] = len(s.records)
	s.records = append(s.records, rec.clone())
	return nil
}

func (s *Store) Update(rec Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[rec.ID]
	if !ok {
		return false
	}
	s.records[pos] = rec.clone()
	return true
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.records = append(s.records[:pos], s.records[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.records); i++ {
		s.index[s.records[i].ID] = i
	}
	return true
}

func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return Record{}, false
	}
	return s.records[pos].clone(), true
}

func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.clone())
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// NewRecordID returns a time-ordered UUIDv7, falling back to a random v4
// if the clock source fails.
func NewRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
