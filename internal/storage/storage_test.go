package storage

import (
	"path/filepath"
	"testing"

	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "resumes.json"))
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func sampleResume(first string) types.Resume {
	return types.Resume{
		FirstName: first,
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Skills:    []string{"Go", "Analysis"},
		Experience: []types.ExperienceEntry{
			{Position: "Engineer", Company: "Acme Analytical", Description: "Built engines."},
		},
		Education: []types.EducationEntry{{Degree: "BSc", School: "State University"}},
	}
}

func TestSaveAndLoad(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := store.Save("draft", sampleResume("Ada"), style.Customization{Font: "Lato"})
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if saved.Name != "draft" || saved.Date.IsZero() {
				t.Errorf("saved record = %+v", saved)
			}

			loaded, err := store.Load("draft")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded.Data.FirstName != "Ada" || loaded.Customization.Font != "Lato" {
				t.Errorf("loaded record = %+v", loaded)
			}
		})
	}
}

func TestSaveRequiresName(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Save("", sampleResume("Ada"), style.Customization{}); err == nil {
				t.Error("expected error for empty name")
			}
		})
	}
}

func TestSaveOverwriteMovesToEnd(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"first", "second", "third"} {
				if _, err := store.Save(n, sampleResume("Ada"), style.Customization{}); err != nil {
					t.Fatalf("Save(%q) error = %v", n, err)
				}
			}

			if _, err := store.Save("first", sampleResume("Grace"), style.Customization{}); err != nil {
				t.Fatalf("re-save error = %v", err)
			}

			records, err := store.List()
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(records) != 3 {
				t.Fatalf("List() count = %d, want 3", len(records))
			}
			if records[2].Name != "first" || records[2].Data.FirstName != "Grace" {
				t.Errorf("overwritten record not appended last: %+v", records)
			}
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Load("missing"); err == nil {
				t.Error("expected not-found error")
			}
		})
	}
}

func TestDelete(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Save("draft", sampleResume("Ada"), style.Customization{}); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			found, err := store.Delete("draft")
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if !found {
				t.Error("Delete() = false for existing record")
			}

			found, err = store.Delete("draft")
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if found {
				t.Error("Delete() = true for missing record")
			}
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Save("a", sampleResume("Ada"), style.Customization{}); err != nil {
				t.Fatal(err)
			}
			if _, err := store.Save("b", sampleResume("Grace"), style.Customization{}); err != nil {
				t.Fatal(err)
			}

			exported, err := store.ExportAll()
			if err != nil {
				t.Fatalf("ExportAll() error = %v", err)
			}

			fresh := NewMemoryStore()
			imported, err := fresh.ImportAll(exported)
			if err != nil {
				t.Fatalf("ImportAll() error = %v", err)
			}
			if len(imported) != 2 {
				t.Fatalf("imported count = %d, want 2", len(imported))
			}

			records, _ := fresh.List()
			if len(records) != 2 || records[0].Name != "a" || records[1].Name != "b" {
				t.Errorf("round-trip records = %+v", records)
			}
		})
	}
}

func TestImportRejectsInvalidPayload(t *testing.T) {
	payloads := map[string]string{
		"not an array":          `{"name":"x"}`,
		"missing name":          `[{"data":{},"customization":{}}]`,
		"missing data":          `[{"name":"x","customization":{}}]`,
		"missing customization": `[{"name":"x","data":{}}]`,
		"empty name":            `[{"name":"","data":{},"customization":{}}]`,
		"not json":              `{{{`,
	}

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Save("keep", sampleResume("Ada"), style.Customization{}); err != nil {
				t.Fatal(err)
			}

			for payloadName, payload := range payloads {
				t.Run(payloadName, func(t *testing.T) {
					if _, err := store.ImportAll([]byte(payload)); err == nil {
						t.Fatal("expected validation error")
					}

					// Existing data must be untouched on failure.
					records, err := store.List()
					if err != nil {
						t.Fatalf("List() error = %v", err)
					}
					if len(records) != 1 || records[0].Name != "keep" {
						t.Errorf("store modified by failed import: %+v", records)
					}
				})
			}
		})
	}
}

func TestImportMergeImportedWins(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Save("draft", sampleResume("Ada"), style.Customization{}); err != nil {
				t.Fatal(err)
			}
			if _, err := store.Save("other", sampleResume("Grace"), style.Customization{}); err != nil {
				t.Fatal(err)
			}

			payload := `[{"name":"draft","data":{"firstName":"Imported"},"customization":{"font":"Lato"}}]`
			if _, err := store.ImportAll([]byte(payload)); err != nil {
				t.Fatalf("ImportAll() error = %v", err)
			}

			records, err := store.List()
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != 2 {
				t.Fatalf("record count = %d, want 2", len(records))
			}

			loaded, err := store.Load("draft")
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Data.FirstName != "Imported" {
				t.Errorf("imported entry did not win: %+v", loaded)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Save("tech draft", sampleResume("Ada"), style.Customization{}); err != nil {
				t.Fatal(err)
			}
			other := types.Resume{FirstName: "Grace", Skills: []string{"Compilers"}}
			if _, err := store.Save("navy", other, style.Customization{}); err != nil {
				t.Fatal(err)
			}

			tests := []struct {
				keyword string
				want    int
			}{
				{"", 2},
				{"tech", 1},
				{"grace", 1},
				{"compilers", 1},
				{"acme", 1},
				{"state university", 1},
				{"nothing here", 0},
			}

			for _, tt := range tests {
				got, err := store.Search(tt.keyword)
				if err != nil {
					t.Fatalf("Search(%q) error = %v", tt.keyword, err)
				}
				if len(got) != tt.want {
					t.Errorf("Search(%q) count = %d, want %d", tt.keyword, len(got), tt.want)
				}
			}
		})
	}
}

func TestDuplicate(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Save("original", sampleResume("Ada"), style.Customization{Font: "Lato"}); err != nil {
				t.Fatal(err)
			}

			dup, err := store.Duplicate("original", "copy")
			if err != nil {
				t.Fatalf("Duplicate() error = %v", err)
			}
			if dup.Name != "copy" || dup.Data.FirstName != "Ada" || dup.Customization.Font != "Lato" {
				t.Errorf("duplicate = %+v", dup)
			}

			if _, err := store.Duplicate("missing", "copy2"); err == nil {
				t.Error("expected error duplicating missing record")
			}
		})
	}
}

func TestUsage(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			before, err := store.Usage()
			if err != nil {
				t.Fatalf("Usage() error = %v", err)
			}

			if _, err := store.Save("draft", sampleResume("Ada"), style.Customization{}); err != nil {
				t.Fatal(err)
			}

			after, err := store.Usage()
			if err != nil {
				t.Fatalf("Usage() error = %v", err)
			}
			if after <= before {
				t.Errorf("Usage() = %d after save, want > %d", after, before)
			}
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumes.json")

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := first.Save("draft", sampleResume("Ada"), style.Customization{}); err != nil {
		t.Fatal(err)
	}

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := second.Load("draft")
	if err != nil {
		t.Fatalf("Load() from second instance error = %v", err)
	}
	if loaded.Data.FirstName != "Ada" {
		t.Errorf("loaded = %+v", loaded)
	}
}
