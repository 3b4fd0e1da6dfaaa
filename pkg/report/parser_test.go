package report

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><w:document><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("labs.TXT", []byte("\xef\xbb\xbfHemoglobin:   13.5 g/dL\r\n\r\n\nWBC:\t7.2  "))
	require.NoError(t, err)
	assert.Equal(t, "Hemoglobin: 13.5 g/dL\nWBC: 7.2", text)
}

func TestExtractTextDocx(t *testing.T) {
	data := docx(t, `<w:p><w:r><w:t>Glucose</w:t></w:r><w:r><w:tab/><w:t>95 mg/dL</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>LDL &amp; HDL within range</w:t></w:r></w:p>`)

	text, err := ExtractText("report.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "Glucose 95 mg/dL\nLDL & HDL within range", text)
}

func TestExtractTextErrors(t *testing.T) {
	_, err := ExtractText("scan.png", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ExtractText("empty.txt", []byte(" \n\t "))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = ExtractText("broken.docx", []byte("not a zip"))
	assert.Error(t, err)

	_, err = ExtractText("broken.pdf", []byte("not a pdf"))
	assert.Error(t, err)

	_, err = ExtractText("latin1.txt", []byte{0xff, 0xfe, 0x41})
	assert.Error(t, err)
}

func TestExtractTextDocxSizeLimit(t *testing.T) {
	old := maxDocXML
	maxDocXML = 256
	t.Cleanup(func() { maxDocXML = old })

	body := `<w:p><w:r><w:t>` + strings.Repeat("Cholesterol 190 mg/dL ", 64) + `</w:t></w:r></w:p>`
	_, err := ExtractText("big.docx", docx(t, body))
	assert.ErrorIs(t, err, ErrDocumentTooLarge)

	text, err := ExtractText("small.docx", docx(t, `<w:p><w:r><w:t>TSH 2.1</w:t></w:r></w:p>`))
	require.NoError(t, err)
	assert.Equal(t, "TSH 2.1", text)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.PDF"))
	assert.True(t, Supported("a.docx"))
	assert.True(t, Supported("a.txt"))
	assert.False(t, Supported("a.doc"))
	assert.False(t, Supported("noext"))
}
