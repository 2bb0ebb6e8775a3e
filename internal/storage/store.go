// Package storage persists named resume snapshots together with their
// style customization. Two implementations exist: an in-memory store
// and a single-file JSON store. Writes are serialized per store.
package storage

import (
	"time"

	"resumeforge/internal/errors"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// SavedResume is one persisted snapshot. The template id travels inside
// Data.Template.
type SavedResume struct {
	Name          string              `json:"name"`
	Data          types.Resume        `json:"data"`
	Customization style.Customization `json:"customization"`
	Date          time.Time           `json:"date"`
}

// Store is the persistence contract. Save overwrites an existing entry
// with the same name and appends it at the end; Delete reports whether
// an entry was removed; ImportAll merges by name with imported entries
// winning, and leaves the store untouched when validation fails.
type Store interface {
	Save(name string, resume types.Resume, customization style.Customization) (SavedResume, error)
	List() ([]SavedResume, error)
	Load(name string) (SavedResume, error)
	Delete(name string) (bool, error)
	ExportAll() ([]byte, error)
	ImportAll(data []byte) ([]SavedResume, error)
	Search(keyword string) ([]SavedResume, error)
	Duplicate(originalName, newName string) (SavedResume, error)
	Usage() (int64, error)
}

func errResumeNotFound(name string) error {
	return errors.NewStorageError(
		errors.ErrCodeResumeNotFound,
		"resume not found: "+name,
		nil,
	).WithContext("name", name)
}

func errNameRequired() error {
	return errors.NewValidationError(
		errors.ErrCodeInvalidResume,
		"resume name is required",
		nil,
	)
}
