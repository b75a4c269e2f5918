package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadWords reads one word per line, trimming whitespace and skipping
// blank lines. Words come back in file order, not yet normalized.
func ReadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var words []string
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadWordsFile reads a word list from disk.
func LoadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}
