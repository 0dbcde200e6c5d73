package sequence

import "fmt"

// EmptyNameError is returned when a sequence has no name.
type EmptyNameError struct {
	Index int
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("sequence %d has an empty name", e.Index)
}

// DuplicateNameError is returned when two sequences of one collection share
// a name.
type DuplicateNameError struct {
	Name   string
	First  int
	Second int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate sequence name %q at positions %d and %d", e.Name, e.First, e.Second)
}

// ValidateNames checks that every sequence is named and that names are unique
// within the collection.
func ValidateNames(seqs []Sequence) error {
	seen := make(map[string]int, len(seqs))
	for i, s := range seqs {
		if s.Name == "" {
			return &EmptyNameError{Index: i}
		}
		if first, ok := seen[s.Name]; ok {
			return &DuplicateNameError{Name: s.Name, First: first, Second: i}
		}
		seen[s.Name] = i
	}
	return nil
}

// Names returns the names of seqs in order.
func Names(seqs []Sequence) []string {
	names := make([]string, len(seqs))
	for i, s := range seqs {
		names[i] = s.Name
	}
	return names
}
