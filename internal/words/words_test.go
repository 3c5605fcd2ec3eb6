package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndDedupes(t *testing.T) {
	c, err := New([]string{" Crane ", "slate", "crane", "toolong", "ab1de", "TRACE"})
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "slate", "trace"}, c.Words())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "slate", c.At(1))
	assert.Equal(t, 2, c.Index("trace"))
	assert.Equal(t, -1, c.Index("brace"))
	assert.True(t, c.Contains("crane"))
	assert.False(t, c.Contains("Crane"))
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New([]string{"abc", "12345"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestWordsReturnsCopy(t *testing.T) {
	c, err := New([]string{"crane", "slate"})
	require.NoError(t, err)

	ws := c.Words()
	ws[0] = "zzzzz"
	assert.Equal(t, "crane", c.At(0))
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 100)
	for _, w := range c.Words() {
		assert.True(t, Valid(w), w)
	}
}

func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\ncrane\n\nslate\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, c.Words())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- crane\n- slate\n- trace\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "trace"}, c.Words())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestReadYAMLEmpty(t *testing.T) {
	list, err := ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("crane"))
	assert.False(t, Valid("cran"))
	assert.False(t, Valid("Crane"))
	assert.False(t, Valid("cr-ne"))
}
