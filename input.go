package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
)

// InputName is the file name every day's input is stored under.
const InputName = "long.txt"

// InputPath returns the path of the input file for day under dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d", day), InputName)
}

// ParseLines splits b into lines, trims each one and drops the blank ones.
// Lines may be of any length.
func ParseLines(b []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ReadLines reads the file at path and returns its non-blank, trimmed lines.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLines(b), nil
}

func loadInput(year, day int) ([]byte, error) {
	path := InputPath(flagInput, day)
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && flagFetch:
		b, err = fileOrFetch(path, fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("reading input for day %d: %w", day, err)
	}
	fmt.Printf("input %s (%s)\n", path, humanize.Bytes(uint64(len(b))))
	return b, nil
}

var session = sync.OnceValue(func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req, nil
}

// fileOrFetch returns the contents of filename, downloading it from url and
// caching it on disk if it does not exist yet.
func fileOrFetch(filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}
	body, err := fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(url string) ([]byte, error) {
	req, err := request("GET", url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
