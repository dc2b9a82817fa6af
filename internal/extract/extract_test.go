package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Alex Morgan</w:t></w:r></w:p>
    <w:p><w:r><w:t>Backend engineer with ten years of experience.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func buildDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(docxBody)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesPlainText(t *testing.T) {
	out, err := TextFromBytes(context.Background(), []byte("hello resume"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if out != "hello resume" {
		t.Fatalf("expected passthrough, got %q", out)
	}
}

func TestTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t)

	out, err := TextFromBytes(context.Background(), data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(out, "Alex Morgan") {
		t.Fatalf("expected name in extracted text, got %q", out)
	}
	// Paragraphs come out on separate lines.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected paragraph breaks, got %q", out)
	}
}

func TestTextFromBytesDocxViaZipMime(t *testing.T) {
	data := buildDocx(t)

	out, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(out, "Alex Morgan") {
		t.Fatalf("expected docx handling for zip mime, got %q", out)
	}
}

func TestTextFromBytesOctetStreamFallsBackToExtension(t *testing.T) {
	out, err := TextFromBytes(context.Background(), []byte("plain content"), "application/octet-stream", "notes.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if out != "plain content" {
		t.Fatalf("expected passthrough via extension, got %q", out)
	}
}

func TestTextFromBytesUnsupported(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte{0x00, 0x01}, "image/png", "photo.png")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestTextFromBytesHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := TextFromBytes(ctx, []byte("x"), "text/plain", "a.txt"); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
