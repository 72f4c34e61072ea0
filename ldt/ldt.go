package ldt

import (
	"phfile/document"
	"phfile/internal/textio"
	"phfile/schema"
	"phfile/utils"
)

// Extension is the conventional file extension.
const Extension = "ldt"

// File is one EULUMDAT document.
type File struct {
	doc *document.Document
}

// New creates an empty LDT file.
func New(opts ...document.Option) *File {
	opts = append(opts, document.WithCheck(checkTables))

	return &File{doc: document.New(schema.LDT, opts...)}
}

// Document returns the underlying document.
func (f *File) Document() *document.Document {
	return f.doc
}

// Extension returns "ldt".
func (f *File) Extension() string {
	return Extension
}

// Errors returns the field errors of the last operation.
func (f *File) Errors() map[string]string {
	return f.doc.Errors()
}

// Validate validates input against the LDT schema, see document.Validate.
func (f *File) Validate(input map[string]any, mode document.Mode) error {
	return f.doc.Validate(input, mode)
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

// DefaultName derives a file name from the luminaire name.
func (f *File) DefaultName() string {
	return DefaultName(f.doc, Extension)
}

// DefaultName derives a file name with extension ext from the luminaire
// name of an LDT document, or "none" when it has none.
func DefaultName(doc *document.Document, ext string) string {
	name, ok := doc.String(schema.LDTLuminaireName)
	if !ok {
		name = "none"
	}

	return utils.SafeFilename(name, ext)
}
