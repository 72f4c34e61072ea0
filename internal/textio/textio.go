// Package textio reads and writes whole text files in a named character set.
package textio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "utf-8"

// Lookup resolves a character set name such as "utf-8", "windows-1252" or
// "latin1". An empty name selects UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	return enc, nil
}

// ReadText reads the file at path and decodes it to UTF-8. A leading byte
// order mark is honored and dropped.
func ReadText(path, encName string) (string, error) {
	enc, err := Lookup(encName)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return "", fmt.Errorf("opening file %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(enc.NewDecoder())))
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}

	return string(data), nil
}

// ReadLines reads the file at path and splits it with SplitLines.
func ReadLines(path, encName string) ([]string, error) {
	text, err := ReadText(path, encName)
	if err != nil {
		return nil, err
	}

	return SplitLines(text), nil
}

// SplitLines splits s at "\n", "\r\n" and "\r". Line breaks are not kept and
// a final line break does not produce an empty last line.
func SplitLines(s string) []string {
	var lines []string

	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}

		lines = append(lines, s[:i])

		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}

		s = s[i+1:]
	}

	return lines
}

// WriteText encodes text in the named character set and writes it to path,
// replacing any existing file. Parent directories are created as needed.
func WriteText(path, text, encName string) error {
	enc, err := Lookup(encName)
	if err != nil {
		return err
	}

	if dir := dirOf(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	encoded, _, err := transform.String(enc.NewEncoder(), text)
	if err != nil {
		return fmt.Errorf("encoding file %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(encoded), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

func dirOf(path string) string {
	i := strings.LastIndexAny(path, "/\\")
	if i <= 0 {
		return ""
	}

	return path[:i]
}
