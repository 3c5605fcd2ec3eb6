// internal/words/words.go
//
// Word corpus management for the solver and the game.
//
// Responsibilities:
//   - Load the corpus from a configured file or fall back to the embedded default.
//   - Normalize entries (trim, lowercase) and keep only valid five-letter words.
//   - Expose an immutable, ordered, duplicate-free Corpus.
//
// Supported file formats:
//   - *.yaml / *.yml: a YAML sequence of words (the format the original list ships in).
//   - anything else:  one word per line, '#' comments and blank lines ignored.
//
// Constraints:
//   • Words must be exactly 5 ASCII letters a–z.
//   • Corpus order is the file order; it is the canonical order for tie-breaking.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle-solver/assets"
)

// Length is the fixed word length.
const Length = 5

// ErrEmpty is returned when a corpus would contain no valid words.
var ErrEmpty = errors.New("words: corpus is empty")

// Corpus is an ordered list of unique five-letter words.
// It is read-only after construction and safe for concurrent use.
type Corpus struct {
	list  []string
	index map[string]int
}

// New builds a Corpus from raw entries. Entries are trimmed and lowercased;
// invalid words and repeats are dropped, first occurrence wins.
func New(entries []string) (*Corpus, error) {
	c := &Corpus{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		w := strings.TrimSpace(strings.ToLower(e))
		if !Valid(w) {
			continue
		}
		if _, dup := c.index[w]; dup {
			continue
		}
		c.index[w] = len(c.list)
		c.list = append(c.list, w)
	}
	if len(c.list) == 0 {
		return nil, ErrEmpty
	}
	return c, nil
}

// Default returns the embedded corpus.
func Default() (*Corpus, error) {
	f, err := assets.Open(assets.DefaultWords)
	if err != nil {
		return nil, fmt.Errorf("words: open embedded list: %w", err)
	}
	defer f.Close()

	list, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("words: read embedded list: %w", err)
	}
	return New(list)
}

// Load reads a corpus from path, or the embedded default when path is empty.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var list []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		list, err = ReadYAML(f)
	default:
		list, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return New(list)
}

// ReadText reads one word per line. Blank lines and '#' comments are skipped.
func ReadText(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// ReadYAML decodes a YAML sequence of words.
func ReadYAML(r io.Reader) ([]string, error) {
	var out []string
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// Valid reports whether w is exactly five lowercase ASCII letters.
func Valid(w string) bool {
	return len(w) == Length && IsAlpha(w)
}

// IsAlpha reports whether s is all lowercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Len returns the number of words.
func (c *Corpus) Len() int { return len(c.list) }

// At returns the i-th word in corpus order.
func (c *Corpus) At(i int) string { return c.list[i] }

// Words returns a copy of the word list in corpus order.
func (c *Corpus) Words() []string {
	return append([]string(nil), c.list...)
}

// Contains reports whether w is in the corpus.
func (c *Corpus) Contains(w string) bool {
	_, ok := c.index[w]
	return ok
}

// Index returns the corpus position of w, or -1.
func (c *Corpus) Index(w string) int {
	if i, ok := c.index[w]; ok {
		return i
	}
	return -1
}
