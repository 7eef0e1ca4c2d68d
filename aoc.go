// Package aoc are quick & dirty utilities for solving the 2025 Advent of
// Code puzzles. (forked from maisem/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/kr/pretty"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous sample in the same file.
func extractSamples(filename string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractAllSamples walks every .go file in src and merges their samples.
func extractAllSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	all := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		samples, err := extractSamples(name, b)
		if err != nil {
			return nil, err
		}
		for k, v := range samples {
			if _, dup := all[k]; dup {
				return nil, fmt.Errorf("duplicate sample for %s in %s", k, name)
			}
			all[k] = v
		}
	}
	return all, nil
}

// Puzzle is the per-day state handed to a solver. Solvers embed *Puzzle and
// read their input through it.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample

	input []byte // cached real input
}

// Input returns the raw input for the current mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = MustGet(loadInput(p.year, p.day.day))
	}
	return p.input
}

// Lines returns the input lines trimmed of surrounding whitespace, with blank
// lines dropped.
func (p *Puzzle) Lines() []string {
	return ParseLines(p.Input())
}

// RawLines returns every input line as is, blank lines included.
func (p *Puzzle) RawLines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// Scanner returns a line scanner over the input. Its buffer can hold the
// whole input, so no line is too long.
func (p *Puzzle) Scanner() *bufio.Scanner {
	in := p.Input()
	s := bufio.NewScanner(bytes.NewReader(in))
	s.Buffer(nil, len(in)+1)
	return s
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debug pretty-prints v when running with -debug.
func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		pretty.Println(v...)
	}
}

// Debugf is like Debug but only prints while solving the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		pretty.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of x named D{day}p{part}. The methods
// must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s: got %s; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInput      string
	flagFetch      bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", ".", "directory holding dayNN/long.txt inputs")
	flag.BoolVar(&flagFetch, "fetch", false, "download missing inputs from adventofcode.com")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs every part of d, sample first. It reports whether all
// samples matched.
func runDay(slvr any, year int, d day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	fmt.Println("Running day", d.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range d.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return false
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return true
}

// Run registers the D{day}p{part} methods of slvr, which must be a pointer
// to a struct embedding *Puzzle, and runs the selected days. src holds the
// solver's Go source files; their doc comments carry the samples.
func Run(year int, src fs.FS, slvr any) {
	samples := MustGet(extractAllSamples(src))
	days := MustGet(extractMethods(slvr))
	initFlags()

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if !runDay(slvr, year, d, samples) {
			log.Fatalf("day %d: sample mismatch", d.day)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	failed := 0
	for _, n := range dayNums {
		if !runDay(slvr, year, days[n], samples) {
			failed++
		}
		fmt.Println()
	}
	if failed > 0 {
		log.Fatalf("%d day(s) failed their sample", failed)
	}
}
