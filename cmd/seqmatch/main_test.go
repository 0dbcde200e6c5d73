package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/seqmatch-go/internal/output"
	"github.com/aria-lang/seqmatch-go/pkg/seqmatch"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestMatchTab(t *testing.T) {
	a := writeFile(t, "a.fa", ">ref1\nACTGN\n")
	b := writeFile(t, "b.fa", ">read1 sample\nACTGA\n")

	stdout, stderr, err := run(t, "match", "-a", a, "-b", b)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, output.TabHeader(), lines[0])
	assert.Equal(t, "ref1\tread1\t+\t5\t5\t1\t1\t0.9200\t18\tACTGN\tACTGA", lines[1])
	assert.Contains(t, stderr, "sequences in A")
	assert.Contains(t, stderr, "1 matches")
}

func TestMatchThreshold(t *testing.T) {
	a := writeFile(t, "a.fa", ">ref1\nACTGN\n")
	b := writeFile(t, "b.fa", ">read1\nACTGA\n>read2\nGGGGGGGG\n")

	stdout, _, err := run(t, "match", "-a", a, "-b", b, "--nm", "1", "--norc", "--aln", "none")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ref1\tread1\t+\t5\t5\t1\t1\t0.9200\t-1\t*\t*", lines[1])
}

func TestMatchNoLDWithLevenshteinGate(t *testing.T) {
	a := writeFile(t, "a.fa", ">ref1\nACTGN\n")
	b := writeFile(t, "b.fa", ">read1\nACTGA\n")

	stdout, _, err := run(t, "match", "-a", a, "-b", b, "--noLD", "--norc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ref1\tread1\t+\t5\t5\t1\t1\t0.9200\t18\tACTGN\tACTGA", lines[1])
}

func TestMatchSelf(t *testing.T) {
	a := writeFile(t, "a.fa", ">s1\nACGT\n>s2\nACGA\n>s3\nTTTT\n")

	stdout, _, err := run(t, "match", "-a", a, "--aln", "none", "--norc")
	require.NoError(t, err)

	// three sequences give six unordered pairs, self pairs included
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 7)
}

func TestMatchSAM(t *testing.T) {
	a := writeFile(t, "a.fa", ">ref1\nACTGN\n")
	b := writeFile(t, "b.fa", ">read1\nACTGA\n")

	stdout, _, err := run(t, "match", "-a", a, "-b", b, "-o", "sam", "--norc")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "@HD"))
	assert.Contains(t, stdout, "@SQ\tSN:ref1\tLN:5\n")
	assert.Contains(t, stdout, "read1\t0\tref1\t1\t255\t5M\t")
	assert.Contains(t, stdout, "AS:i:18")
}

func TestMatchErrors(t *testing.T) {
	a := writeFile(t, "a.fa", ">ref1\nACTGN\n")
	dup := writeFile(t, "dup.fa", ">x\nAC\n>x\nGT\n")

	tests := []struct {
		name string
		args []string
	}{
		{"missing a", []string{"match"}},
		{"missing file", []string{"match", "-a", filepath.Join(t.TempDir(), "nope.fa")}},
		{"bad method", []string{"match", "-a", a, "-m", "XX"}},
		{"bad alignment", []string{"match", "-a", a, "--aln", "semi"}},
		{"bad format", []string{"match", "-a", a, "-o", "bam"}},
		{"duplicate names", []string{"match", "-a", dup}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestConvert(t *testing.T) {
	a := writeFile(t, "a.fa", ">ref1\nACTGN\n")
	b := writeFile(t, "b.fa", ">read1\nACTGA\n")

	tab, _, err := run(t, "match", "-a", a, "-b", b, "--norc")
	require.NoError(t, err)
	in := writeFile(t, "matches.tsv", tab)

	sam, _, err := run(t, "convert", "-i", in, "-a", a)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sam, "@HD"))
	assert.Contains(t, sam, "read1\t0\tref1\t1\t255\t5M\t*\t0\t0\tACTGA\t*\tNM:i:1")

	bare, _, err := run(t, "convert", "-i", in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(bare, "read1\t"))

	_, _, err = run(t, "convert", "-i", in, "-o", "tab")
	assert.Error(t, err)
}

func TestConfigAndVersion(t *testing.T) {
	stdout, _, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gap-open: -10")

	stdout, _, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, seqmatch.Info()+"\n", stdout)
}
