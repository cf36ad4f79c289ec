// Package highscore keeps the top ten scores in a plain text file of
// "name score" lines.
package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is the file used when no path is configured.
const DefaultPath = "highscores.txt"

// ErrMalformed is returned by ParseLine for lines that are not "name score".
var ErrMalformed = errors.New("malformed high score line")

// Entry is a single recorded score.
type Entry struct {
	Name  string
	Score int
}

func (e Entry) String() string {
	return e.Name + " " + strconv.Itoa(e.Score)
}

// ParseLine parses one "name score" line. Names containing whitespace are
// not representable and are rejected.
func ParseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	return Entry{Name: fields[0], Score: score}, nil
}

// Store persists an ordered list of entries.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// FileStore reads and writes entries at a filesystem path.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every well-formed line in file order. A missing file yields an
// empty list; malformed lines are skipped.
func (s *FileStore) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open high scores: %w", err)
	}
	defer f.Close()

	entries, err := readEntries(f)
	if err != nil {
		return nil, fmt.Errorf("read high scores %s: %w", s.path, err)
	}
	return entries, nil
}

func readEntries(r io.Reader) ([]Entry, error) {
	entries := []Entry{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		e, err := ParseLine(scanner.Text())
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

// Save overwrites the file with one line per entry.
func (s *FileStore) Save(entries []Entry) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create high score dir: %w", err)
		}
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	return nil
}
