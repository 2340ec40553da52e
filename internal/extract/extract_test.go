package extract

import (
	"context"
	"strings"
	"testing"
)

func TestTextRejectsUnsupportedMime(t *testing.T) {
	_, err := Text(context.Background(), []byte("hello"), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error")
	}
	if !strings.Contains(err.Error(), "unsupported mime type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextRejectsEmptyDocument(t *testing.T) {
	if _, err := Text(context.Background(), nil, "application/pdf", "cv.pdf"); err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestTextMalformedPDFIsError(t *testing.T) {
	_, err := Text(context.Background(), []byte("not a real pdf"), "application/pdf", "cv.pdf")
	if err == nil {
		t.Fatal("expected parse error for malformed pdf")
	}
}

func TestNormalizeMimeTypeFallsBackToExtension(t *testing.T) {
	cases := []struct {
		mime string
		name string
		want string
	}{
		{mime: "application/pdf", name: "x.bin", want: mimePDF},
		{mime: "application/pdf; charset=binary", name: "x.bin", want: mimePDF},
		{mime: "application/octet-stream", name: "cv.pdf", want: mimePDF},
		{mime: "", name: "cv.DOCX", want: mimeDOCX},
		{mime: "application/zip", name: "cv.docx", want: mimeDOCX},
		{mime: "text/plain", name: "notes.txt", want: "text/plain"},
	}
	for _, tc := range cases {
		if got := normalizeMimeType(tc.mime, tc.name); got != tc.want {
			t.Errorf("normalizeMimeType(%q, %q) = %q, want %q", tc.mime, tc.name, got, tc.want)
		}
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>First line</w:t></w:r></w:p><w:p><w:r><w:t>Second line</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	if !strings.Contains(got, "First line") || !strings.Contains(got, "Second line") {
		t.Fatalf("expected both paragraphs, got %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected paragraph break, got %q", got)
	}
}
