package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-grid/gridsearch"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Search.Highlight)
	assert.Equal(t, "contains", cfg.Search.Match)
	assert.Equal(t, "Germany", cfg.Demo.NextText)
	assert.Equal(t, "BOTTM", cfg.Demo.PreviousText)
	assert.Empty(t, cfg.Grid.GroupBy)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfgrid.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[search]
columns = ["Country", "ShipCity"]
highlight = false
match = "fuzzy"

[grid]
group_by = ["Country"]
details = true
filter_row = "top"

[demo]
next_text = "UK"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Country", "ShipCity"}, cfg.Search.Columns)
	assert.False(t, cfg.Search.Highlight)
	assert.Equal(t, "fuzzy", cfg.Search.Match)
	assert.Equal(t, []string{"Country"}, cfg.Grid.GroupBy)
	assert.True(t, cfg.Grid.Details)
	assert.Equal(t, "top", cfg.Grid.FilterRow)
	assert.Equal(t, "UK", cfg.Demo.NextText)
	assert.Equal(t, "BOTTM", cfg.Demo.PreviousText, "unset keys keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfgrid.toml")
	require.NoError(t, os.WriteFile(path, []byte("[demo]\nnext_text = \"UK\"\n"), 0o600))
	t.Setenv("SFGRID_DEMO_NEXT_TEXT", "Mexico")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Mexico", cfg.Demo.NextText)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[search]\nmatch = \"regex\"\n"), 0o600))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "search.match")

	pos := filepath.Join(dir, "pos.toml")
	require.NoError(t, os.WriteFile(pos, []byte("[grid]\nadd_new_row = \"sideways\"\n"), 0o600))
	_, err = Load(pos)
	assert.ErrorContains(t, err, "grid.add_new_row")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestWriteExampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.toml")
	require.NoError(t, WriteExample(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Demo, cfg.Demo)
	assert.Equal(t, Default().Search.Match, cfg.Search.Match)

	assert.Error(t, WriteExample(path), "existing file is kept")
}

func TestParsePosition(t *testing.T) {
	tests := map[string]gridsearch.RowPosition{
		"":             gridsearch.PositionNone,
		"none":         gridsearch.PositionNone,
		"Top":          gridsearch.PositionTop,
		"bottom":       gridsearch.PositionBottom,
		"fixed-top":    gridsearch.PositionFixedTop,
		"FixedBottom":  gridsearch.PositionFixedBottom,
		" fixed-bottom": gridsearch.PositionFixedBottom,
	}
	for in, want := range tests {
		got, err := ParsePosition(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePosition("middle")
	assert.Error(t, err)
}
