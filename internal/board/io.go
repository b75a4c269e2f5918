package board

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadGrid reads raw grid rows, skipping blank lines. Rows are kept
// as-is otherwise; shape checking happens in Parse.
func ReadGrid(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var rows []string
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadGridFile reads a grid file from disk.
func LoadGridFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGrid(f)
}
