package document

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// documentPart is the required main part of a WordprocessingML package.
const documentPart = "word/document.xml"

// Ensure Document implements View.
var _ View = (*Document)(nil)

// Document is a parsed .docx package. It implements View for the extraction
// engine and additionally supports cell rewriting and re-saving for the
// template mapper.
type Document struct {
	name string

	// parts holds every zip entry so the package can be written back out.
	parts map[string][]byte
	// partNames preserves the original entry order for stable output.
	partNames []string

	main *etree.Document

	paragraphs []Paragraph
	headers    []Paragraph
	footers    []Paragraph
	tables     []Table
	tableElems []*etree.Element
}

// Open reads a .docx file from disk.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return OpenReader(bytes.NewReader(data), int64(len(data)), filepath.Base(path))
}

// OpenReader reads a .docx package from an in-memory reader. The name is
// recorded as the source identity in extraction metadata.
func OpenReader(r io.ReaderAt, size int64, name string) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("not a valid document container: %w", err)
	}

	d := &Document{
		name:  name,
		parts: make(map[string][]byte, len(zr.File)),
	}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open package part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read package part %s: %w", f.Name, err)
		}
		d.parts[f.Name] = content
		d.partNames = append(d.partNames, f.Name)
	}

	mainXML, ok := d.parts[documentPart]
	if !ok {
		return nil, fmt.Errorf("document container has no %s part", documentPart)
	}

	d.main = etree.NewDocument()
	if err := d.main.ReadFromBytes(mainXML); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", documentPart, err)
	}

	if err := d.parseBody(); err != nil {
		return nil, err
	}
	d.parseHeadersFooters()

	return d, nil
}

// parseBody walks the direct children of w:body in document order so that
// paragraphs nested inside tables or text frames are not double counted.
func (d *Document) parseBody() error {
	root := d.main.Root()
	if root == nil {
		return fmt.Errorf("%s has no root element", documentPart)
	}
	body := root.SelectElement("w:body")
	if body == nil {
		return fmt.Errorf("%s has no w:body element", documentPart)
	}

	for _, child := range body.ChildElements() {
		switch child.Tag {
		case "p":
			d.paragraphs = append(d.paragraphs, parseParagraph(child))
		case "tbl":
			d.tables = append(d.tables, parseTable(child))
			d.tableElems = append(d.tableElems, child)
		}
	}
	return nil
}

// parseHeadersFooters collects paragraphs from every header and footer part.
// Part names are sorted because zip entry order is not meaningful.
func (d *Document) parseHeadersFooters() {
	names := make([]string, 0, len(d.parts))
	for name := range d.parts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		isHeader := strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml")
		isFooter := strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml")
		if !isHeader && !isFooter {
			continue
		}

		part := etree.NewDocument()
		if err := part.ReadFromBytes(d.parts[name]); err != nil {
			// A malformed header part is not fatal to extraction.
			continue
		}
		root := part.Root()
		if root == nil {
			continue
		}
		for _, p := range root.SelectElements("w:p") {
			para := parseParagraph(p)
			if isHeader {
				d.headers = append(d.headers, para)
			} else {
				d.footers = append(d.footers, para)
			}
		}
	}
}

func parseParagraph(p *etree.Element) Paragraph {
	var sb strings.Builder
	for _, t := range p.FindElements(".//w:t") {
		sb.WriteString(t.Text())
	}

	emphasized := false
	for _, r := range p.FindElements(".//w:r") {
		b := r.FindElement("w:rPr/w:b")
		if b == nil {
			continue
		}
		val := b.SelectAttrValue("w:val", "")
		if val != "0" && val != "false" {
			emphasized = true
			break
		}
	}

	return Paragraph{Text: sb.String(), Emphasized: emphasized}
}

func parseTable(tbl *etree.Element) Table {
	var table Table
	for _, tr := range tbl.SelectElements("w:tr") {
		var row []string
		for _, tc := range tr.SelectElements("w:tc") {
			var cell []string
			for _, p := range tc.SelectElements("w:p") {
				cell = append(cell, parseParagraph(p).Text)
			}
			row = append(row, strings.Join(cell, "\n"))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// Name returns the source document name.
func (d *Document) Name() string { return d.name }

// Paragraphs returns the body paragraphs in document order.
func (d *Document) Paragraphs() []Paragraph { return d.paragraphs }

// HeaderParagraphs returns all header paragraphs.
func (d *Document) HeaderParagraphs() []Paragraph { return d.headers }

// FooterParagraphs returns all footer paragraphs.
func (d *Document) FooterParagraphs() []Paragraph { return d.footers }

// Tables returns all body tables.
func (d *Document) Tables() []Table { return d.tables }

// TextFrames returns the text of every embedded text frame in the main part.
func (d *Document) TextFrames() ([]string, error) {
	if d.main == nil || d.main.Root() == nil {
		return nil, fmt.Errorf("document tree is not available")
	}

	var frames []string
	for _, frame := range d.main.FindElements("//w:txbxContent") {
		var sb strings.Builder
		for _, p := range frame.SelectElements("w:p") {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(parseParagraph(p).Text)
		}
		if strings.TrimSpace(sb.String()) != "" {
			frames = append(frames, sb.String())
		}
	}
	return frames, nil
}

// SetCellText replaces the text of one table cell, addressed by table, row,
// and column index in document order. The first text run keeps the new value
// and any further runs in the cell are cleared, preserving run formatting.
func (d *Document) SetCellText(table, row, col int, text string) error {
	if table < 0 || table >= len(d.tableElems) {
		return fmt.Errorf("table index %d out of range", table)
	}
	rows := d.tableElems[table].SelectElements("w:tr")
	if row < 0 || row >= len(rows) {
		return fmt.Errorf("row index %d out of range in table %d", row, table)
	}
	cells := rows[row].SelectElements("w:tc")
	if col < 0 || col >= len(cells) {
		return fmt.Errorf("column index %d out of range in table %d row %d", col, table, row)
	}

	cell := cells[col]
	texts := cell.FindElements(".//w:t")
	if len(texts) == 0 {
		p := cell.SelectElement("w:p")
		if p == nil {
			p = cell.CreateElement("w:p")
		}
		r := p.CreateElement("w:r")
		t := r.CreateElement("w:t")
		t.SetText(text)
	} else {
		texts[0].SetText(text)
		for _, extra := range texts[1:] {
			extra.SetText("")
		}
	}

	// Refresh the cached view of this table.
	d.tables[table] = parseTable(d.tableElems[table])
	return nil
}

// Save writes the package, including any cell rewrites, to path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return d.Write(f)
}

// Write serializes the package to w.
func (d *Document) Write(w io.Writer) error {
	mainXML, err := d.main.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", documentPart, err)
	}
	d.parts[documentPart] = mainXML

	zw := zip.NewWriter(w)
	for _, name := range d.partNames {
		entry, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create package part %s: %w", name, err)
		}
		if _, err := entry.Write(d.parts[name]); err != nil {
			return fmt.Errorf("failed to write package part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}
	return nil
}
