package wordlist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Stdin is the path that makes ReadFile read standard input.
const Stdin = "-"

var ErrEmptyPath = errors.New("word list path is empty")

// Options control how raw lines become words.
type Options struct {
	// Normalize converts every word to Unicode NFC.
	Normalize bool
}

// Read loads the whole input, trims it and returns one word per line.
// Lines are not validated; blank lines come back as empty words.
func Read(r io.Reader, opts Options) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return []string{}, nil
	}

	words := strings.Split(text, "\n")
	for i, w := range words {
		w = strings.TrimSuffix(w, "\r")
		if opts.Normalize {
			w = norm.NFC.String(w)
		}
		words[i] = w
	}
	return words, nil
}

// ReadFile reads the word list at path, or stdin when path is Stdin.
func ReadFile(path string, opts Options) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	var r io.Reader = os.Stdin
	if path != Stdin {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open word list: %w", err)
		}
		defer file.Close()
		r = file
	}

	words, err := Read(r, opts)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return words, nil
}
