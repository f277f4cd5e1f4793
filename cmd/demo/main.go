package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Hakuto4838/SkipDict.git/datastream"
	"github.com/Hakuto4838/SkipDict.git/skiplist"
	"github.com/Hakuto4838/SkipDict.git/skiplist/analyTool"
	"github.com/Hakuto4838/SkipDict.git/skiplist/basic"
	"github.com/olekukonko/tablewriter"
)

func main() {
	var maxLevel int
	var p float64
	var seed int64

	flag.IntVar(&maxLevel, "maxlevel", 4, "maximum number of levels")
	flag.Float64Var(&p, "p", basic.DefaultProbability, "level promotion probability")
	flag.Int64Var(&seed, "seed", 42, "seed for the level generator")
	flag.Parse()

	sl, err := basic.NewWithConfig(maxLevel, p, seed)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	section("1. INSERTION")
	data := []skiplist.Item{
		{Key: 3, Value: "three"},
		{Key: 6, Value: "six"},
		{Key: 7, Value: "seven"},
		{Key: 9, Value: "nine"},
		{Key: 12, Value: "twelve"},
		{Key: 19, Value: "nineteen"},
		{Key: 17, Value: "seventeen"},
		{Key: 26, Value: "twenty-six"},
		{Key: 21, Value: "twenty-one"},
		{Key: 25, Value: "twenty-five"},
	}
	for _, it := range data {
		fmt.Printf("Inserting: %d -> %s\n", it.Key, it.Value)
		sl.Put(it.Key, it.Value)
	}
	fmt.Println()
	analyTool.Display(os.Stdout, sl)
	fmt.Printf("Total elements: %d\n", sl.Len())

	section("2. SEARCH")
	for _, key := range []skiplist.K{7, 19, 100, 3} {
		if value, ok := sl.Get(key); ok {
			fmt.Printf("Found: %d -> %s\n", key, value)
		} else {
			fmt.Printf("Not found: %d\n", key)
		}
	}

	section("3. MEMBERSHIP")
	fmt.Printf("Contains 12? %t\n", sl.Contains(12))
	fmt.Printf("Contains 50? %t\n", sl.Contains(50))

	section("4. DELETION")
	for _, key := range []skiplist.K{19, 7, 100} {
		if sl.Delete(key) {
			fmt.Printf("Delete %d: success\n", key)
		} else {
			fmt.Printf("Delete %d: failed (not found)\n", key)
		}
	}
	fmt.Println()
	analyTool.Display(os.Stdout, sl)
	fmt.Printf("Total elements: %d\n", sl.Len())

	section("5. SORTED ORDER")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	for _, it := range sl.Items() {
		table.Append([]string{fmt.Sprintf("%d", it.Key), it.Value})
	}
	table.Render()

	section("6. UPDATE")
	fmt.Println("Updating key 12 with new value 'TWELVE'")
	sl.Put(12, "TWELVE")
	if value, ok := sl.Get(12); ok {
		fmt.Printf("Value for key 12: %s\n", value)
	}

	section("7. TOWER VIEW")
	analyTool.DisplayTower(os.Stdout, sl)

	section("8. INTERLEAVED OPERATIONS")
	replay := datastream.NewSequenceModelFromOps([]datastream.Operation{
		{Type: datastream.OpInsert, Key: 5, Value: "five"},
		{Type: datastream.OpInsert, Key: 33, Value: "thirty-three"},
		{Type: datastream.OpQuery, Key: 5},
		{Type: datastream.OpDelete, Key: 33},
		{Type: datastream.OpInsert, Key: 1, Value: "one"},
		{Type: datastream.OpQuery, Key: 33},
	})
	for {
		op, ok := replay.Next()
		if !ok {
			break
		}
		fmt.Printf("  %s %d\n", op.Type, op.Key)
		switch op.Type {
		case datastream.OpQuery:
			sl.Get(op.Key)
		case datastream.OpInsert:
			sl.Put(op.Key, op.Value)
		case datastream.OpDelete:
			sl.Delete(op.Key)
		}
	}
	fmt.Println()
	analyTool.Display(os.Stdout, sl)
	fmt.Printf("Final elements: %d\n", sl.Len())
}

func section(title string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}
