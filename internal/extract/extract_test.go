package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextPlainFallback(t *testing.T) {
	got, err := Text("resume.txt", []byte("Senior Java developer with Spring and AWS"))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Senior Java developer with Spring and AWS" {
		t.Errorf("got %q", got)
	}
}

func TestTextBinaryFallbackEmpty(t *testing.T) {
	got, err := Text("resume.bin", []byte{0xff, 0xfe, 0x00, 0x80})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestTextDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>Python developer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>5 years experience with Django</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := Text("resume.docx", buildDOCX(t, doc))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "Python developer") {
		t.Errorf("missing first paragraph: %q", got)
	}
	if !strings.Contains(got, "5 years experience with Django") {
		t.Errorf("missing second paragraph: %q", got)
	}
	if !strings.Contains(got, "Python developer\n") {
		t.Errorf("paragraph break not preserved: %q", got)
	}
}

func TestTextCorruptDOCX(t *testing.T) {
	if _, err := Text("resume.docx", []byte("not a zip archive")); err == nil {
		t.Fatal("expected error for corrupt docx")
	}
}

func TestTextCorruptPDF(t *testing.T) {
	if _, err := Text("resume.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}
