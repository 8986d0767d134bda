package zipcat

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zippedrange "github.com/smukherj1/zipped-range"
	"github.com/smukherj1/zipped-range/internal/zlog"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return p
}

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(nil)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestZipcatText(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "0", "1", "2", "3")
	b := writeFile(t, dir, "b.txt", "3", "2", "1", "0", "5")

	out, err := execute(t, context.Background(), "--header=false", a, b)
	require.NoError(t, err)

	want := "0\t3\n1\t2\n2\t1\n3\t0\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestZipcatHeaderAndSeparator(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "names", "ada", "grace")
	b := writeFile(t, dir, "years", "1815", "1906", "1926")
	c := writeFile(t, dir, "langs", "analytical engine", "cobol")

	out, err := execute(t, context.Background(), "--header", "-s", ",", "--upper", a, b, c)
	require.NoError(t, err)

	want := "names,years,langs\nADA,1815,ANALYTICAL ENGINE\nGRACE,1906,COBOL\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestZipcatJSON(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "x", "y", "z")
	b := writeFile(t, dir, "b", "1", "2")

	out, err := execute(t, context.Background(), "--header=false", "--format", "JSON", a, b)
	require.NoError(t, err)

	var got []record
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r record
		require.NoError(t, json.Unmarshal([]byte(line), &r), line)
		got = append(got, r)
	}

	want := []record{
		{Line: 1, Fields: []string{"x", "1"}},
		{Line: 2, Fields: []string{"y", "2"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestZipcatYAML(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "x", "y")
	b := writeFile(t, dir, "b", "1", "2")

	out, err := execute(t, context.Background(), "--header", "-f", "yaml", a, b)
	require.NoError(t, err)

	var got document
	require.NoError(t, yaml.Unmarshal([]byte(out), &got), out)

	want := document{
		Files: []string{"a", "b"},
		Rows: []record{
			{Line: 1, Fields: []string{"x", "1"}},
			{Line: 2, Fields: []string{"y", "2"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestZipcatLongLine(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("x", 200<<10)
	a := writeFile(t, dir, "a", long, "short")
	b := writeFile(t, dir, "b", "1", "2")

	out, err := execute(t, context.Background(), "--header=false", a, b)
	require.NoError(t, err)
	assert.Equal(t, long+"\t1\nshort\t2\n", out)
}

func TestZipcatArity(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "x")

	for _, args := range [][]string{{}, {a}} {
		_, err := execute(t, context.Background(), args...)
		require.Error(t, err)
		assert.ErrorIs(t, err, zippedrange.ErrArity)
		assert.True(t, zippedrange.IsArityError(err))
	}
}

func TestZipcatMissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "x")

	_, err := execute(t, context.Background(), a, filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestZipcatBadFormat(t *testing.T) {
	_, err := execute(t, context.Background(), "--format", "xml", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestZipcatDebugLog(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "long", "1", "2", "3")
	b := writeFile(t, dir, "short", "1")

	var logs bytes.Buffer
	var level slog.LevelVar
	level.Set(slog.LevelInfo)
	ctx := zlog.ContextWithLogger(context.Background(), zlog.NewTextLogger(&logs, &level))

	cmd := NewRootCmd(&level)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--debug", "--header=false", a, b})
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Contains(t, logs.String(), "truncated at shortest file")
	assert.Contains(t, logs.String(), "rows=1")
	assert.Contains(t, logs.String(), "short")
}
