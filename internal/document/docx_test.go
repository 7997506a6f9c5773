package document

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docxNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func buildDocx(t *testing.T, parts map[string]string) *Document {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		entry, err := zw.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	doc, err := OpenReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), "test.docx")
	require.NoError(t, err)
	return doc
}

func para(text string, bold bool) string {
	if bold {
		return `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>` + text + `</w:t></w:r></w:p>`
	}
	return `<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func TestOpenReaderParsesBodyParagraphs(t *testing.T) {
	doc := buildDocx(t, map[string]string{
		"word/document.xml": `<?xml version="1.0"?><w:document ` + docxNS + `><w:body>` +
			para("김민준", false) +
			`<w:p><w:r><w:rPr><w:b w:val="0"/></w:rPr><w:t>not bold</w:t></w:r></w:p>` +
			para("경력사항", true) +
			`</w:body></w:document>`,
	})

	paras := doc.Paragraphs()
	require.Len(t, paras, 3)
	assert.Equal(t, Paragraph{Text: "김민준"}, paras[0])
	assert.Equal(t, Paragraph{Text: "not bold", Emphasized: false}, paras[1], "w:val=0 must not count as bold")
	assert.Equal(t, Paragraph{Text: "경력사항", Emphasized: true}, paras[2])
	assert.Equal(t, "test.docx", doc.Name())
}

func TestOpenReaderParagraphTextJoinsRuns(t *testing.T) {
	doc := buildDocx(t, map[string]string{
		"word/document.xml": `<?xml version="1.0"?><w:document ` + docxNS + `><w:body>` +
			`<w:p><w:r><w:t>Acme Corp</w:t></w:r><w:r><w:t> - Senior Engineer</w:t></w:r></w:p>` +
			`</w:body></w:document>`,
	})

	require.Len(t, doc.Paragraphs(), 1)
	assert.Equal(t, "Acme Corp - Senior Engineer", doc.Paragraphs()[0].Text)
}

func TestOpenReaderParsesTablesWithoutDuplicatingParagraphs(t *testing.T) {
	doc := buildDocx(t, map[string]string{
		"word/document.xml": `<?xml version="1.0"?><w:document ` + docxNS + `><w:body>` +
			`<w:tbl><w:tr><w:tc>` + para("이름", false) + `</w:tc><w:tc>` + para("김민준", false) + `</w:tc></w:tr>` +
			`<w:tr><w:tc>` + para("Email", false) + `</w:tc><w:tc>` + para("kim@example.com", false) + `</w:tc></w:tr></w:tbl>` +
			para("after table", false) +
			`</w:body></w:document>`,
	})

	require.Len(t, doc.Tables(), 1)
	assert.Equal(t, [][]string{
		{"이름", "김민준"},
		{"Email", "kim@example.com"},
	}, doc.Tables()[0].Rows)

	// Cell paragraphs do not leak into the body paragraph sequence.
	require.Len(t, doc.Paragraphs(), 1)
	assert.Equal(t, "after table", doc.Paragraphs()[0].Text)
}

func TestOpenReaderParsesHeadersAndFooters(t *testing.T) {
	doc := buildDocx(t, map[string]string{
		"word/document.xml": `<?xml version="1.0"?><w:document ` + docxNS + `><w:body></w:body></w:document>`,
		"word/header1.xml":  `<?xml version="1.0"?><w:hdr ` + docxNS + `>` + para("Kim Minjun", false) + `</w:hdr>`,
		"word/footer1.xml":  `<?xml version="1.0"?><w:ftr ` + docxNS + `>` + para("https://github.com/minjun", false) + `</w:ftr>`,
	})

	require.Len(t, doc.HeaderParagraphs(), 1)
	assert.Equal(t, "Kim Minjun", doc.HeaderParagraphs()[0].Text)
	require.Len(t, doc.FooterParagraphs(), 1)
	assert.Equal(t, "https://github.com/minjun", doc.FooterParagraphs()[0].Text)
}

func TestOpenReaderTextFrames(t *testing.T) {
	doc := buildDocx(t, map[string]string{
		"word/document.xml": `<?xml version="1.0"?><w:document ` + docxNS + `><w:body>` +
			`<w:p><w:r><w:pict><w:txbxContent>` + para("kim@example.com", false) + `</w:txbxContent></w:pict></w:r></w:p>` +
			`</w:body></w:document>`,
	})

	frames, err := doc.TextFrames()
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "kim@example.com", frames[0])
}

func TestOpenReaderMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = OpenReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), "broken.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestOpenReaderRejectsNonZipInput(t *testing.T) {
	data := []byte("plain text, not a docx")
	_, err := OpenReader(bytes.NewReader(data), int64(len(data)), "bad.docx")
	require.Error(t, err)
}

func TestSetCellTextAndRoundTrip(t *testing.T) {
	doc := buildDocx(t, map[string]string{
		"word/document.xml": `<?xml version="1.0"?><w:document ` + docxNS + `><w:body>` +
			`<w:tbl><w:tr><w:tc>` + para("성명", false) + `</w:tc><w:tc>` + para("OOO", false) + `</w:tc></w:tr></w:tbl>` +
			`</w:body></w:document>`,
	})

	require.NoError(t, doc.SetCellText(0, 0, 1, "김민준"))
	assert.Equal(t, "김민준", doc.Tables()[0].Rows[0][1])

	var out bytes.Buffer
	require.NoError(t, doc.Write(&out))

	reopened, err := OpenReader(bytes.NewReader(out.Bytes()), int64(out.Len()), "out.docx")
	require.NoError(t, err)
	require.Len(t, reopened.Tables(), 1)
	assert.Equal(t, "김민준", reopened.Tables()[0].Rows[0][1])
}

func TestSetCellTextOutOfRange(t *testing.T) {
	doc := buildDocx(t, map[string]string{
		"word/document.xml": `<?xml version="1.0"?><w:document ` + docxNS + `><w:body></w:body></w:document>`,
	})

	assert.Error(t, doc.SetCellText(0, 0, 0, "x"))
}
