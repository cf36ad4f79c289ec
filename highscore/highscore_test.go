package highscore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/highscore"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want highscore.Entry
		ok   bool
	}{
		{"ana 1200", highscore.Entry{Name: "ana", Score: 1200}, true},
		{"  bo\t40  ", highscore.Entry{Name: "bo", Score: 40}, true},
		{"neg -5", highscore.Entry{Name: "neg", Score: -5}, true},
		{"", highscore.Entry{}, false},
		{"ana", highscore.Entry{}, false},
		{"ana lots", highscore.Entry{}, false},
		{"mary ann 300", highscore.Entry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := highscore.ParseLine(tt.line)
			if !tt.ok {
				assert.ErrorIs(t, err, highscore.ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileStore(t *testing.T) {
	t.Run("missing file loads empty", func(t *testing.T) {
		store := highscore.NewFileStore(filepath.Join(t.TempDir(), "none.txt"))
		entries, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("malformed lines are skipped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.txt")
		data := "ana 500\nbroken\nmary ann 300\nbo 200\nzed x\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		entries, err := highscore.NewFileStore(path).Load()
		require.NoError(t, err)
		assert.Equal(t, []highscore.Entry{{Name: "ana", Score: 500}, {Name: "bo", Score: 200}}, entries)
	})

	t.Run("save writes one line per entry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "scores.txt")
		store := highscore.NewFileStore(path)
		require.NoError(t, store.Save([]highscore.Entry{{Name: "ana", Score: 500}, {Name: "bo", Score: 200}}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ana 500\nbo 200\n", string(data))

		entries, err := store.Load()
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("unreadable path is wrapped", func(t *testing.T) {
		dir := t.TempDir()
		_, err := highscore.NewFileStore(dir).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "high scores")
	})

	t.Run("default path", func(t *testing.T) {
		assert.Equal(t, highscore.DefaultPath, highscore.NewFileStore("").Path())
	})
}

type memoryStore struct {
	entries []highscore.Entry
	saves   int
	err     error
}

func (m *memoryStore) Load() ([]highscore.Entry, error) {
	return append([]highscore.Entry(nil), m.entries...), m.err
}

func (m *memoryStore) Save(entries []highscore.Entry) error {
	m.saves++
	m.entries = append([]highscore.Entry(nil), entries...)
	return m.err
}

func TestTable(t *testing.T) {
	t.Run("load sorts and truncates", func(t *testing.T) {
		store := &memoryStore{}
		for i := range 12 {
			store.entries = append(store.entries, highscore.Entry{Name: "p", Score: i * 10})
		}

		table, err := highscore.Open(store)
		require.NoError(t, err)

		entries := table.Entries()
		require.Len(t, entries, highscore.MaxEntries)
		assert.Equal(t, 110, entries[0].Score)
		assert.Equal(t, 20, entries[9].Score)
	})

	t.Run("add ranks and saves", func(t *testing.T) {
		store := &memoryStore{entries: []highscore.Entry{{Name: "ana", Score: 500}, {Name: "bo", Score: 200}}}
		table, err := highscore.Open(store)
		require.NoError(t, err)

		entries, err := table.Add("cy", 300)
		require.NoError(t, err)
		assert.Equal(t, []highscore.Entry{{Name: "ana", Score: 500}, {Name: "cy", Score: 300}, {Name: "bo", Score: 200}}, entries)
		assert.Equal(t, 1, store.saves)
		assert.Equal(t, entries, store.entries)
	})

	t.Run("ties keep earlier entries first", func(t *testing.T) {
		table := highscore.NewTable(&memoryStore{})
		table.Add("first", 100)
		entries, _ := table.Add("second", 100)
		assert.Equal(t, "first", entries[0].Name)
		assert.Equal(t, "second", entries[1].Name)
	})

	t.Run("add drops the lowest beyond ten", func(t *testing.T) {
		table := highscore.NewTable(&memoryStore{})
		for i := 1; i <= highscore.MaxEntries; i++ {
			table.Add("p", i*100)
		}

		entries, err := table.Add("low", 50)
		require.NoError(t, err)
		assert.Len(t, entries, highscore.MaxEntries)
		assert.Equal(t, 100, entries[9].Score)

		entries, _ = table.Add("high", 5000)
		assert.Equal(t, "high", entries[0].Name)
		assert.Equal(t, 200, entries[9].Score)
	})

	t.Run("save failure still returns the ranked list", func(t *testing.T) {
		failure := errors.New("disk full")
		table := highscore.NewTable(&memoryStore{err: failure})
		entries, err := table.Add("ana", 10)
		assert.ErrorIs(t, err, failure)
		assert.Len(t, entries, 1)
	})

	t.Run("entries is a copy", func(t *testing.T) {
		table := highscore.NewTable(&memoryStore{})
		table.Add("ana", 10)
		table.Entries()[0].Score = 99
		assert.Equal(t, 10, table.Entries()[0].Score)
	})
}

func TestQualifies(t *testing.T) {
	table := highscore.NewTable(&memoryStore{})
	assert.True(t, table.Qualifies(0))

	for i := 1; i <= highscore.MaxEntries; i++ {
		table.Add("p", i*100)
	}
	assert.Equal(t, highscore.MaxEntries, table.Len())
	assert.False(t, table.Qualifies(50))
	assert.False(t, table.Qualifies(100))
	assert.True(t, table.Qualifies(101))
}

func TestNamesWithSpacesDoNotSurviveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	table := highscore.NewTable(highscore.NewFileStore(path))
	_, err := table.Add("mary ann", 300)
	require.NoError(t, err)
	_, err = table.Add("bo", 200)
	require.NoError(t, err)

	reloaded, err := highscore.Open(highscore.NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, []highscore.Entry{{Name: "bo", Score: 200}}, reloaded.Entries())
}
