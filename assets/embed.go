// assets/embed.go
//
// Embedded default word list. Used when no WORDS_FILE is configured so the
// solver and benchmarks run out of the box.
package assets

import (
	"embed"
	"io/fs"
)

// DefaultWords names the embedded corpus, one word per line.
const DefaultWords = "words.txt"

//go:embed words.txt
var files embed.FS

// Open opens an embedded file by name.
func Open(name string) (fs.File, error) {
	return files.Open(name)
}
