package game

import (
	"os"
	"strconv"
	"strings"
)

// HighScoreStore is the persistence collaborator. Saves are
// fire-and-forget; the engine never waits on an acknowledgement.
type HighScoreStore interface {
	Load() int
	SaveIfHigher(score int)
}

// FileStore keeps the single high score in a plain text file.
type FileStore struct {
	Path string
}

func (f *FileStore) Load() int {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (f *FileStore) SaveIfHigher(score int) {
	if score <= f.Load() {
		return
	}
	// Best effort; a failed write just loses the record.
	_ = os.WriteFile(f.Path, []byte(strconv.Itoa(score)), 0o644)
}

// NullStore discards everything; used when no persistence is wired.
type NullStore struct{}

func (NullStore) Load() int        { return 0 }
func (NullStore) SaveIfHigher(int) {}
