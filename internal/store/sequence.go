package store

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// sequenceFile holds the corpus-level id counter. The dot prefix keeps
// it out of document enumeration.
const sequenceFile = ".sequence"

// nextID issues the next document id from the persisted corpus
// sequence. Identity is decoupled from storage location: a renamed
// document keeps its id, and ids never collide within a corpus.
func (s *Store) nextID() (int, error) {
	last := 0
	data, err := s.fs.Read(sequenceFile)
	switch {
	case err == nil:
		n, perr := strconv.Atoi(strings.TrimSpace(string(data)))
		if perr != nil {
			return 0, fmt.Errorf("store: corrupt sequence file: %w", perr)
		}
		last = n
	case errors.Is(err, os.ErrNotExist):
		// First create in this corpus.
	default:
		return 0, fmt.Errorf("store: read sequence: %w", err)
	}

	next := last + 1
	if err := s.fs.Write(sequenceFile, []byte(strconv.Itoa(next)+"\n")); err != nil {
		return 0, fmt.Errorf("store: write sequence: %w", err)
	}
	return next, nil
}
