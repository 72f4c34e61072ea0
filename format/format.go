// Package format opens photometric files of either supported kind behind
// one interface.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"phfile/document"
	"phfile/ies"
	"phfile/ldt"
)

// File is implemented by *ldt.File and *ies.File.
type File interface {
	Document() *document.Document
	Extension() string
	Errors() map[string]string
	Validate(input map[string]any, mode document.Mode) error
	Get(names ...string) document.Result
	Set(args []any, kwargs map[string]any) error
	Parse(lines []string) error
	Load(path string) error
	LoadEncoded(path, encoding string) error
	Text() (string, error)
	Lines() []string
	Write(path string) (string, error)
	WriteEncoded(path, encoding string) (string, error)
	DefaultName() string
}

var (
	_ File = (*ldt.File)(nil)
	_ File = (*ies.File)(nil)
)

// UnsupportedError reports a file extension with no codec.
type UnsupportedError struct {
	Extension string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported file extension %q", e.Extension)
}

// New returns an empty file for ext, given with or without the leading dot.
func New(ext string, opts ...document.Option) (File, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case ldt.Extension:
		return ldt.New(opts...), nil
	case ies.Extension:
		return ies.New(opts...), nil
	default:
		return nil, &UnsupportedError{Extension: ext}
	}
}

// Open loads the UTF-8 file at path with the codec matching its extension.
func Open(path string, opts ...document.Option) (File, error) {
	return OpenEncoded(path, "", opts...)
}

// OpenEncoded is Open with a character set; empty means UTF-8.
func OpenEncoded(path, encoding string, opts ...document.Option) (File, error) {
	f, err := New(filepath.Ext(path), opts...)
	if err != nil {
		return nil, err
	}

	if err := f.LoadEncoded(path, encoding); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return f, nil
}
