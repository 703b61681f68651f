package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvplanar/graphio"
)

const k5Text = `n 5
0 1
0 2
0 3
0 4
1 2
1 3
1 4
2 3
2 4
3 4
`

const squareYAML = `n: 4
edges: [[0, 1], [1, 2], [2, 3], [3, 0]]
`

// write stores content under dir and returns its path.
func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

// run executes the command tree and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	k5 := write(t, dir, "k5.edges", k5Text)
	sq := write(t, dir, "square.yaml", squareYAML)

	out, err := run(t, "check", k5, sq)
	require.NoError(t, err)
	assert.Equal(t, k5+": non-planar\n"+sq+": planar\n", out)
}

func TestCheck_FormatOverride(t *testing.T) {
	dir := t.TempDir()
	p := write(t, dir, "k5.dat", k5Text)

	_, err := run(t, "check", "--format", "yaml", p)
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	_, err = run(t, "check", "--format", "xml", p)
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	out, err := run(t, "check", "--format", "text", p)
	require.NoError(t, err)
	assert.Equal(t, p+": non-planar\n", out)
}

func TestWitness(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "witness", write(t, dir, "k5.txt", k5Text))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "# K5 subdivision, 10 edges", lines[10])

	out, err = run(t, "witness", write(t, dir, "sq.yaml", squareYAML))
	require.NoError(t, err)
	assert.Equal(t, "planar\n", out)
}

func TestAddable(t *testing.T) {
	dir := t.TempDir()
	// K5 with every edge but 0-1 and 3-4 selected.
	p := write(t, dir, "k5.txt", k5Text+"select 1 2 3 4 5 6 7 8\n")

	out, err := run(t, "addable", p)
	require.NoError(t, err)
	assert.Equal(t, "0: 0 1\n9: 3 4\n", out)

	out, err = run(t, "addable", "--greedy", p)
	require.NoError(t, err)
	assert.Equal(t, "0: 0 1\n", out)

	out, err = run(t, "addable", "--greedy", "--ids", p)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	// The toggle completes K5 minus 0-1, leaving nothing addable.
	p = write(t, dir, "k5-toggled.txt", k5Text+"select 1 2 3 4 5 6 7 8\ntoggle 9 on\n")
	out, err = run(t, "addable", p)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	k5 := write(t, dir, "k5.txt", k5Text)
	sq := write(t, dir, "square.yml", squareYAML)

	out, err := run(t, "batch", "-j", "2", k5, sq, k5)
	require.NoError(t, err)
	want := k5 + ": non-planar (K5, 10 witness edges)\n" +
		sq + ": planar\n" +
		k5 + ": non-planar (K5, 10 witness edges)\n"
	assert.Equal(t, want, out)

	_, err = run(t, "batch", sq, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
