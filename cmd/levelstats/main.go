package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Hakuto4838/SkipDict.git/datastream"
	"github.com/Hakuto4838/SkipDict.git/skiplist"
	"github.com/Hakuto4838/SkipDict.git/skiplist/analyTool"
	"github.com/Hakuto4838/SkipDict.git/skiplist/basic"
	"github.com/olekukonko/tablewriter"
)

func main() {
	var n int
	var maxLevel int
	var p float64
	var seed int64
	var trials int
	var dist string
	var zipfA, zipfB float64
	var samples int

	flag.IntVar(&n, "n", 10000, "number of keys to insert per trial")
	flag.IntVar(&maxLevel, "maxlevel", basic.DefaultMaxLevel, "maximum number of levels")
	flag.Float64Var(&p, "p", basic.DefaultProbability, "level promotion probability")
	flag.Int64Var(&seed, "seed", 42, "base seed for generators and structures")
	flag.IntVar(&trials, "trials", 5, "how many independent lists to build")
	flag.StringVar(&dist, "dist", "uniform", "key distribution: uniform or zipf")
	flag.Float64Var(&zipfA, "zipf.a", 1.07, "Zipf parameter a")
	flag.Float64Var(&zipfB, "zipf.b", 0.0, "Zipf parameter b")
	flag.IntVar(&samples, "samples", 1000, "keys sampled per trial for search step statistics")
	flag.Parse()

	if n <= 0 || trials <= 0 {
		log.Fatalf("invalid -n or -trials: n=%d trials=%d", n, trials)
	}

	fmt.Printf("dist: %s, n: %d, maxlevel: %d, p: %g, trials: %d\n", dist, n, maxLevel, p, trials)
	fmt.Println(strings.Repeat("=", 60))

	// 各 trial 的每層節點數累計
	totals := make([]float64, maxLevel)
	var totalSteps float64
	var stepCount int

	for t := 0; t < trials; t++ {
		trialSeed := seed + int64(t)
		stream := newStream(dist, n, zipfA, zipfB, trialSeed)

		sl, err := basic.NewWithConfig(maxLevel, p, trialSeed)
		if err != nil {
			log.Fatalf("invalid configuration: %v", err)
		}
		for _, idx := range stream.GenerateSequence(n) {
			key := skiplist.K(idx)
			sl.Put(key, strconv.Itoa(idx))
		}

		if !analyTool.CheckStruct(sl) {
			log.Fatalf("trial %d: structure check failed", t)
		}

		counts := analyTool.CountLevel(sl)
		for h, c := range counts {
			if h < len(totals) {
				totals[h] += float64(c)
			}
		}

		for i := 0; i < samples; i++ {
			step, _ := analyTool.FindStep(sl, skiplist.K(stream.Next()))
			totalSteps += float64(step)
			stepCount++
		}

		fmt.Printf("trial %d: size=%d, entropy=%.6f\n", t, sl.Len(), stream.Entropy())
	}

	fmt.Println(strings.Repeat("=", 60))

	rows := make([][]string, 0, len(totals))
	for h := len(totals) - 1; h >= 0; h-- {
		if totals[h] == 0 {
			continue
		}
		avg := totals[h] / float64(trials)
		ratio := "N/A"
		if h > 0 && totals[h-1] > 0 {
			ratio = fmt.Sprintf("%.4f", totals[h]/totals[h-1])
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", h),
			fmt.Sprintf("%.1f", avg),
			ratio,
			fmt.Sprintf("%.4f", p),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Avg Nodes", "Ratio To Below", "Expected"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	if stepCount > 0 {
		fmt.Printf("avg search steps: %.4f over %d lookups\n", totalSteps/float64(stepCount), stepCount)
	}
}

func newStream(dist string, n int, a, b float64, seed int64) datastream.DataStream {
	switch strings.ToLower(dist) {
	case "uniform":
		return datastream.NewUniformDataGenerator(n, seed)
	case "zipf":
		return datastream.NewZipfDataGenerator(n, a, b, seed)
	default:
		log.Fatalf("unknown -dist: %s", dist)
		return nil
	}
}
