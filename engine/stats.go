package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/piece"
)

// Stats counts spawned pieces by kind and line clears by size.
type Stats struct {
	spawns *intmap.Map[piece.Kind, int]
	clears *intmap.Map[int, int]
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[piece.Kind, int](piece.KindCount),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(k piece.Kind) {
	n, _ := s.spawns.Get(k)
	s.spawns.Put(k, n+1)
}

func (s *Stats) recordClear(rows int) {
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
}

// Spawned returns how many pieces of kind k have entered play.
func (s *Stats) Spawned(k piece.Kind) int {
	n, _ := s.spawns.Get(k)
	return n
}

// TotalSpawned returns the number of pieces that have entered play.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, k := range piece.Kinds() {
		total += s.Spawned(k)
	}
	return total
}

// Clears returns how many locks cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}
