package storage

import (
	"encoding/json"
	"sync"
	"time"

	"resumeforge/internal/errors"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// MemoryStore keeps records in process memory. Useful for tests and as
// the server's store when no path is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records []SavedResume

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

func (s *MemoryStore) Save(name string, resume types.Resume, customization style.Customization) (SavedResume, error) {
	if name == "" {
		return SavedResume{}, errNameRequired()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := SavedResume{
		Name:          name,
		Data:          resume,
		Customization: customization,
		Date:          s.now(),
	}
	s.records = upsert(s.records, record)
	return record, nil
}

func (s *MemoryStore) List() ([]SavedResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SavedResume, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Load(name string) (SavedResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.Name == name {
			return r, nil
		}
	}
	return SavedResume{}, errResumeNotFound(name)
}

func (s *MemoryStore) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, found := remove(s.records, name)
	s.records = records
	return found, nil
}

func (s *MemoryStore) ExportAll() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.records
	if records == nil {
		records = []SavedResume{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, errors.NewExportError(errors.ErrCodeExportFailed, "marshal saved resumes", err)
	}
	return data, nil
}

func (s *MemoryStore) ImportAll(data []byte) ([]SavedResume, error) {
	imported, err := validateImport(data)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = mergeImported(s.records, imported)
	return imported, nil
}

func (s *MemoryStore) Search(keyword string) ([]SavedResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterByKeyword(s.records, keyword), nil
}

func (s *MemoryStore) Duplicate(originalName, newName string) (SavedResume, error) {
	original, err := s.Load(originalName)
	if err != nil {
		return SavedResume{}, err
	}
	return s.Save(newName, original.Data, original.Customization)
}

func (s *MemoryStore) Usage() (int64, error) {
	data, err := s.ExportAll()
	if err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}
