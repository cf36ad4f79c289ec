package highscore_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plus3/blockfall/highscore"
)

// ExampleTable records two scores and reads them back from disk.
func ExampleTable() {
	dir, _ := os.MkdirTemp("", "scores")
	defer os.RemoveAll(dir)
	store := highscore.NewFileStore(filepath.Join(dir, "highscores.txt"))

	table, _ := highscore.Open(store)
	table.Add("ana", 800)
	table.Add("bo", 1200)

	reloaded, _ := highscore.Open(store)
	for i, e := range reloaded.Entries() {
		fmt.Printf("%d. %s %d\n", i+1, e.Name, e.Score)
	}
	fmt.Println("qualifies:", reloaded.Qualifies(10))

	// Output:
	// 1. bo 1200
	// 2. ana 800
	// qualifies: true
}
