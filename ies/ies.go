package ies

import (
	"phfile/document"
	"phfile/internal/textio"
	"phfile/schema"
	"phfile/utils"
)

// Extension is the conventional file extension.
const Extension = "ies"

// File is one IES document.
type File struct {
	doc *document.Document
}

// New creates an empty IES file.
func New(opts ...document.Option) *File {
	opts = append(opts, document.WithCheck(checkTables))

	return &File{doc: document.New(schema.IES, opts...)}
}

// Document returns the underlying document.
func (f *File) Document() *document.Document {
	return f.doc
}

// Extension returns "ies".
func (f *File) Extension() string {
	return Extension
}

// Errors returns the field errors of the last operation.
func (f *File) Errors() map[string]string {
	return f.doc.Errors()
}

// Validate validates input against the IES schema, see document.Validate.
func (f *File) Validate(input map[string]any, mode document.Mode) error {
	return f.doc.Validate(input, mode)
}

// Get returns field values, see document.Document.Get.
func (f *File) Get(names ...string) document.Result {
	return f.doc.Get(names...)
}

// Set validates and merges fields, see document.Document.Set.
func (f *File) Set(args []any, kwargs map[string]any) error {
	return f.doc.Set(args, kwargs)
}

// Load reads and parses a UTF-8 file.
func (f *File) Load(path string) error {
	return f.LoadEncoded(path, textio.DefaultEncoding)
}

// LoadEncoded reads a file in the named character set and parses it.
func (f *File) LoadEncoded(path, encoding string) error {
	lines, err := textio.ReadLines(path, encoding)
	if err != nil {
		return err
	}

	return f.Parse(lines)
}

// Write serializes the document to path as UTF-8 and returns the path
// written. An empty path selects DefaultName.
func (f *File) Write(path string) (string, error) {
	return f.WriteEncoded(path, textio.DefaultEncoding)
}

// WriteEncoded is Write with a character set.
func (f *File) WriteEncoded(path, encoding string) (string, error) {
	if path == "" {
		path = f.DefaultName()
	}

	text, err := f.Text()
	if err != nil {
		return "", err
	}

	if err := textio.WriteText(path, text, encoding); err != nil {
		return "", err
	}

	return path, nil
}

// DefaultName derives a file name from the luminaire description, or
// "none.ies" when it is unset.
func (f *File) DefaultName() string {
	name, ok := f.doc.String(schema.IESLuminaire)
	if !ok {
		name = "none"
	}

	return utils.SafeFilename(name, Extension)
}
