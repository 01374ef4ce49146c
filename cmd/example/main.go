package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"strconv"

	"indexkit/pkg/core"
	"indexkit/pkg/index"
	"indexkit/pkg/table"
)

type pair struct {
	A int64
	B int64
}

type city struct {
	Name string
	Pop  int64
}

func main() {
	dbPath := flag.String("db", "", "optional SQLite file to index (table: cities(name, pop))")
	flag.Parse()

	fmt.Println("indexkit demo: one record type, two keys")
	records := []pair{{A: 10, B: 34}, {A: 1, B: 56}, {A: 2, B: 23}}
	tab := table.NewSlice(records)
	fmt.Printf("table holds %d records\n\n", tab.Len())

	byInt := func(p pair) int64 { return p.A }
	byString := func(p pair) string { return strconv.FormatInt(p.A, 10) }

	numIdx := core.NewSorted(tab.Records(), byInt, index.Ordered[int64]())
	fmt.Printf("numeric Find(1): %v\n", deref(numIdx.Find(1)))
	fmt.Printf("numeric FindRange(1, 10): %v\n", deref(numIdx.FindRange(1, 10)))
	fmt.Printf("numeric Find(99): %v\n\n", deref(numIdx.Find(99)))

	lexIdx := core.NewSorted(tab.Records(), byString, index.Ordered[string]())
	fmt.Printf("lexicographic FindRange(\"1\", \"2\"): %v\n\n", deref(lexIdx.FindRange("1", "2")))

	fmt.Println("destructured index: keys and fields retained, records freed")
	d := core.NewDestructured(tab.Records(), byInt,
		func(p pair) int64 { return p.B }, index.Ordered[int64]())
	for _, e := range d.FindRange(1, 10) {
		fmt.Printf("  key=%d fields=%d\n", e.Key, *e.Fields)
	}
	rebuilt := core.Rebuild(d, func(key, fields int64) pair {
		return pair{A: key, B: fields}
	})
	fmt.Printf("rebuilt records: %v\n", rebuilt)

	if *dbPath != "" {
		fmt.Printf("\nindexing SQLite file %s\n", *dbPath)
		runSQLiteDemo(*dbPath)
	}
}

func runSQLiteDemo(path string) {
	cities, err := table.LoadSQLite(path, `SELECT name, pop FROM cities`, func(rows *sql.Rows) (city, error) {
		var c city
		err := rows.Scan(&c.Name, &c.Pop)
		return c, err
	})
	if err != nil {
		log.Fatalf("load sqlite: %v", err)
	}
	fmt.Printf("loaded %d cities\n", len(cities))

	byName := core.NewSorted(cities, func(c city) string { return c.Name }, index.Ordered[string]())
	byPop := core.NewSorted(cities, func(c city) int64 { return c.Pop }, index.Ordered[int64]())

	fmt.Printf("names a..m: %d matches\n", len(byName.FindRange("a", "m")))
	fmt.Printf("population 100k..1M: %d matches\n", len(byPop.FindRange(100000, 1000000)))
}

func deref(refs []*pair) []pair {
	out := make([]pair, 0, len(refs))
	for _, r := range refs {
		out = append(out, *r)
	}
	return out
}
