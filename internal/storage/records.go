package storage

import "strings"

// Pure helpers over record slices, shared by both store implementations.

// upsert drops any record with the same name and appends the new one at
// the end, matching the save ordering contract.
func upsert(records []SavedResume, record SavedResume) []SavedResume {
	out := make([]SavedResume, 0, len(records)+1)
	for _, r := range records {
		if r.Name != record.Name {
			out = append(out, r)
		}
	}
	return append(out, record)
}

// remove filters out the named record, reporting whether it was found.
func remove(records []SavedResume, name string) ([]SavedResume, bool) {
	out := make([]SavedResume, 0, len(records))
	found := false
	for _, r := range records {
		if r.Name == name {
			found = true
			continue
		}
		out = append(out, r)
	}
	return out, found
}

// mergeImported keeps existing records not shadowed by an import, then
// appends all imported records. Imported entries win by name.
func mergeImported(existing, imported []SavedResume) []SavedResume {
	shadowed := make(map[string]bool, len(imported))
	for _, r := range imported {
		shadowed[r.Name] = true
	}

	out := make([]SavedResume, 0, len(existing)+len(imported))
	for _, r := range existing {
		if !shadowed[r.Name] {
			out = append(out, r)
		}
	}
	return append(out, imported...)
}

// matchesKeyword searches the record's name, personal info, experience,
// education, and skills for a case-insensitive keyword.
func matchesKeyword(record SavedResume, keyword string) bool {
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), keyword)
	}

	if contains(record.Name) {
		return true
	}

	data := record.Data
	for _, s := range []string{data.FirstName, data.LastName, data.Email, data.Summary} {
		if contains(s) {
			return true
		}
	}

	for _, exp := range data.Experience {
		if contains(exp.Company) || contains(exp.Position) || contains(exp.Description) {
			return true
		}
	}

	for _, edu := range data.Education {
		if contains(edu.School) || contains(edu.Degree) || contains(edu.Description) {
			return true
		}
	}

	for _, skill := range data.Skills {
		if contains(skill) {
			return true
		}
	}

	return false
}

func filterByKeyword(records []SavedResume, keyword string) []SavedResume {
	if keyword == "" {
		return records
	}
	keyword = strings.ToLower(keyword)

	out := make([]SavedResume, 0, len(records))
	for _, r := range records {
		if matchesKeyword(r, keyword) {
			out = append(out, r)
		}
	}
	return out
}
