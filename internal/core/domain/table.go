package domain

import "sort"

// Table is the full document set held by the snapshot store.
// Order is not significant; listings sort by ascending ID.
type Table []Document

// Find returns the document with the given ID.
func (t Table) Find(id int) (Document, bool) {
	for i := range t {
		if t[i].ID == id {
			return t[i], true
		}
	}
	return Document{}, false
}

// MaxID returns the highest ID in the table, or 0 when empty.
func (t Table) MaxID() int {
	maxID := 0
	for i := range t {
		if t[i].ID > maxID {
			maxID = t[i].ID
		}
	}
	return maxID
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// SortedByID returns a copy of the table in ascending ID order.
func (t Table) SortedByID() Table {
	out := t.Clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks every document and that no two share an ID.
func (t Table) Validate() error {
	seen := make(map[int]struct{}, len(t))
	for i := range t {
		if err := t[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[t[i].ID]; dup {
			return duplicateIDError(t[i].ID)
		}
		seen[t[i].ID] = struct{}{}
	}
	return nil
}
