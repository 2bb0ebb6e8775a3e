package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"resumeforge/internal/errors"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// FileStore persists all records in a single JSON file. A writer mutex
// serializes mutations so concurrent save/delete resolve to one
// deterministic final state; writes go through a temp file rename.
type FileStore struct {
	path string
	mu   sync.Mutex

	now func() time.Time
}

// NewFileStore creates a store backed by the given file. The file is
// created on first write; a missing file reads as an empty store.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig, "storage path is required", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable, "create storage directory", err).
			WithContext("path", path)
	}
	return &FileStore{
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *FileStore) read() ([]SavedResume, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []SavedResume{}, nil
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable, "read storage file", err).
			WithContext("path", s.path)
	}
	if len(data) == 0 {
		return []SavedResume{}, nil
	}

	var records []SavedResume
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewStorageError("CORRUPT_STORE", "storage file does not decode", err).
			WithContext("path", s.path)
	}
	return records, nil
}

func (s *FileStore) write(records []SavedResume) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.NewStorageError(errors.ErrCodeExportFailed, "marshal saved resumes", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".resumes-*.json")
	if err != nil {
		return errors.NewIOError("WRITE_FAILED", "create temp storage file", err).
			WithContext("path", s.path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewIOError("WRITE_FAILED", "write storage file", err).
			WithContext("path", s.path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError("WRITE_FAILED", "close storage file", err).
			WithContext("path", s.path)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError("WRITE_FAILED", "replace storage file", err).
			WithContext("path", s.path)
	}
	return nil
}

func (s *FileStore) Save(name string, resume types.Resume, customization style.Customization) (SavedResume, error) {
	if name == "" {
		return SavedResume{}, errNameRequired()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return SavedResume{}, err
	}

	record := SavedResume{
		Name:          name,
		Data:          resume,
		Customization: customization,
		Date:          s.now(),
	}
	if err := s.write(upsert(records, record)); err != nil {
		return SavedResume{}, err
	}
	return record, nil
}

func (s *FileStore) List() ([]SavedResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Load(name string) (SavedResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return SavedResume{}, err
	}
	for _, r := range records {
		if r.Name == name {
			return r, nil
		}
	}
	return SavedResume{}, errResumeNotFound(name)
}

func (s *FileStore) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return false, err
	}

	remaining, found := remove(records, name)
	if !found {
		return false, nil
	}
	if err := s.write(remaining); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) ExportAll() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, errors.NewExportError(errors.ErrCodeExportFailed, "marshal saved resumes", err)
	}
	return data, nil
}

func (s *FileStore) ImportAll(data []byte) ([]SavedResume, error) {
	imported, err := validateImport(data)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}
	if err := s.write(mergeImported(records, imported)); err != nil {
		return nil, err
	}
	return imported, nil
}

func (s *FileStore) Search(keyword string) ([]SavedResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}
	return filterByKeyword(records, keyword), nil
}

func (s *FileStore) Duplicate(originalName, newName string) (SavedResume, error) {
	original, err := s.Load(originalName)
	if err != nil {
		return SavedResume{}, err
	}
	return s.Save(newName, original.Data, original.Customization)
}

func (s *FileStore) Usage() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.NewIOError(errors.ErrCodeFileNotReadable, "stat storage file", err).
			WithContext("path", s.path)
	}
	return info.Size(), nil
}
