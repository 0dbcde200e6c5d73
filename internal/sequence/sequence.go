// Package sequence provides the named sequence type compared by the matcher.
//
// Residues are bytes over an arbitrary alphabet. Nucleotide-specific helpers
// (complement, reverse complement) understand the IUPAC codes in either case
// and leave every other byte untouched.
package sequence

import "fmt"

// Sequence is a named run of residues. It is a value type and is never
// modified after it has been read.
type Sequence struct {
	Name     string
	Residues string
}

// New creates a sequence.
func New(name, residues string) Sequence {
	return Sequence{Name: name, Residues: residues}
}

// Len returns the number of residues.
func (s Sequence) Len() int {
	return len(s.Residues)
}

// ReverseComplement returns a copy of s with reverse-complemented residues.
// The name is kept.
func (s Sequence) ReverseComplement() Sequence {
	return Sequence{Name: s.Name, Residues: ReverseComplement(s.Residues)}
}

// String returns the sequence as a single FASTA record.
func (s Sequence) String() string {
	return fmt.Sprintf(">%s\n%s", s.Name, s.Residues)
}

var complementTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	pairs := []string{"AT", "CG", "RY", "KM", "BV", "DH", "SS", "WW", "NN"}
	for _, p := range pairs {
		for _, up := range []bool{true, false} {
			a, b := p[0], p[1]
			if !up {
				a, b = a+'a'-'A', b+'a'-'A'
			}
			t[a] = b
			t[b] = a
		}
	}
	t['U'] = 'A'
	t['u'] = 'a'
	return t
}()

// Complement returns the complement of every residue, keeping case.
func Complement(residues string) string {
	out := make([]byte, len(residues))
	for i := 0; i < len(residues); i++ {
		out[i] = complementTable[residues[i]]
	}
	return string(out)
}

// ReverseComplement returns the reverse complement of residues.
func ReverseComplement(residues string) string {
	n := len(residues)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = complementTable[residues[i]]
	}
	return string(out)
}
