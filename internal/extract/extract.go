package extract

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Text pulls plain text out of an uploaded resume. PDF and DOCX get
// real extraction; anything else is treated as raw text when it looks
// like valid UTF-8. Callers fall back to an empty resume on error.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDOCX(data)
	default:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return "", nil
	}
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// Malformed pages are skipped, not fatal.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func fromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		return stripDocumentXML(buf.String()), nil
	}
	return "", nil
}

// stripDocumentXML drops XML tags from word/document.xml, inserting a
// newline at each paragraph close so line structure survives.
func stripDocumentXML(xml string) string {
	var sb strings.Builder
	sb.Grow(len(xml) / 4)

	inTag := false
	for i := 0; i < len(xml); i++ {
		c := xml[i]
		switch {
		case c == '<':
			if strings.HasPrefix(xml[i:], "</w:p>") {
				sb.WriteByte('\n')
			}
			inTag = true
		case c == '>':
			inTag = false
		case !inTag:
			sb.WriteByte(c)
		}
	}
	return strings.TrimSpace(sb.String())
}
