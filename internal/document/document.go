// Package document provides the read-only document view consumed by the
// extraction engine, together with a .docx reader that produces it.
package document

// Paragraph is one paragraph of document text with its layout signal.
// Emphasized is true when any run in the paragraph is bold; the extraction
// engine uses it to corroborate section headings.
type Paragraph struct {
	Text       string
	Emphasized bool
}

// Table is an ordered sequence of rows of cell texts.
type Table struct {
	Rows [][]string
}

// View is the input contract of the extraction engine: an ordered body
// paragraph sequence, header/footer paragraph sequences, tables, and a
// best-effort walk of embedded text-frame content. Implementations must be
// safe to read repeatedly; the engine never mutates a view.
type View interface {
	// Name identifies the source document (typically the file name).
	Name() string

	// Paragraphs returns the body paragraphs in document order.
	Paragraphs() []Paragraph

	// HeaderParagraphs returns all header paragraphs across sections.
	HeaderParagraphs() []Paragraph

	// FooterParagraphs returns all footer paragraphs across sections.
	FooterParagraphs() []Paragraph

	// Tables returns all body tables in document order.
	Tables() []Table

	// TextFrames returns the text content of embedded text frames. Access
	// is best-effort: an error here must not abort extraction.
	TextFrames() ([]string, error)
}
