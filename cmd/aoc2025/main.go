// Command aoc2025 runs one day's puzzle solver and prints both answers.
//
// Usage:
//
//	aoc2025 -day 8 [-input path] [-sample] [-v]
//
// Without -input the puzzle is read from input/DayNN.txt. -sample selects
// the smaller parameters some days use for the worked example, and -v
// traces intermediate grids to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/aoc2025/internal/days"
	"github.com/katalvlaran/aoc2025/internal/input"
)

func main() {
	day := flag.Int("day", 0, "day number to run")
	path := flag.String("input", "", "puzzle input file; default input/DayNN.txt")
	sample := flag.Bool("sample", false, "input is the worked example from the puzzle text")
	verbose := flag.Bool("v", false, "trace intermediate state to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("aoc2025: ")

	d, err := days.Lookup(*day)
	if err != nil {
		log.Fatalf("%v (have %v)", err, days.Numbers())
	}
	if *path == "" {
		*path = fmt.Sprintf("input/Day%02d.txt", d.Number)
	}
	lines, err := input.ReadLines(*path)
	if err != nil {
		log.Fatal(err)
	}

	debug := log.New(io.Discard, "", 0)
	if *verbose {
		debug = log.New(os.Stderr, fmt.Sprintf("day%02d: ", d.Number), 0)
	}
	in := days.Input{Lines: lines, Sample: *sample, Log: debug}

	for i, part := range []days.Part{d.Part1, d.Part2} {
		v, err := part(in)
		if err != nil {
			log.Fatalf("day %d part %d: %v", d.Number, i+1, err)
		}
		fmt.Println(v)
	}
}
