// Package report extracts the text of uploaded lab reports and discharge
// summaries so it can be interpreted like pasted text.
package report

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")
	ErrEmptyDocument     = errors.New("document contains no text")
	ErrDocumentTooLarge  = errors.New("document text exceeds the size limit")
)

// maxDocXML caps the uncompressed word/document.xml of a docx upload.
var maxDocXML int64 = 32 << 20

var (
	reTags        = regexp.MustCompile(`<[^>]+>`)
	reSpaces      = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines    = regexp.MustCompile(`\n+`)
	supportedExts = map[string]bool{".pdf": true, ".docx": true, ".txt": true}
)

// Supported reports whether the file name has an extension ExtractText reads.
func Supported(filename string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(filename))]
}

// ExtractText returns the plain text of a .pdf, .docx or .txt report.
func ExtractText(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = fromPDF(data)
	case ".docx":
		text, err = fromDocx(data)
	case ".txt":
		text, err = fromPlain(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("read docx: %w", err)
		}
		docXML, err = io.ReadAll(io.LimitReader(rc, maxDocXML+1))
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read docx: %w", err)
		}
		if int64(len(docXML)) > maxDocXML {
			return "", ErrDocumentTooLarge
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("read docx: no word/document.xml")
	}
	x := string(docXML)
	// paragraphs and table rows become lines
	x = strings.ReplaceAll(x, "</w:p>", "\n")
	x = strings.ReplaceAll(x, "</w:tr>", "\n")
	x = strings.ReplaceAll(x, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(x, "")
	txt = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'").Replace(txt)
	return normalizeWhitespace(txt), nil
}

func fromPlain(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", errors.New("read txt: not valid UTF-8")
	}
	return normalizeWhitespace(string(data)), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(reNewlines.ReplaceAllString(strings.Join(lines, "\n"), "\n"))
}
