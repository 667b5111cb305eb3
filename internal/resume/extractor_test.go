package resume

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDocx(t *testing.T, dir, name, documentXML string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create docx file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("Failed to create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("Failed to write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}

	return path
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(path, []byte("Python and SQL"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("Expected no error for unsupported extension, got %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text for unsupported extension, got %q", text)
	}
}

func TestExtractText_Docx(t *testing.T) {
	dir := t.TempDir()
	doc := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>Experienced Python Developer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills: MySQL, Git</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	path := writeDocx(t, dir, "resume.docx", doc)

	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("Failed to extract docx text: %v", err)
	}

	// Output is lowercased and paragraphs are space-joined.
	if !strings.Contains(text, "experienced python developer") {
		t.Errorf("Expected lowercased paragraph text, got %q", text)
	}
	if !strings.Contains(text, "skills: mysql, git") {
		t.Errorf("Expected second paragraph text, got %q", text)
	}
	if strings.Contains(text, "<") {
		t.Errorf("Expected tags to be stripped, got %q", text)
	}
}

func TestExtractText_DocxFeedsScorer(t *testing.T) {
	dir := t.TempDir()
	doc := `<w:document><w:body><w:p><w:r><w:t>Python MySQL Git</w:t></w:r></w:p></w:body></w:document>`
	path := writeDocx(t, dir, "resume.docx", doc)

	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("Failed to extract docx text: %v", err)
	}

	_, matched := Score(text)
	for _, want := range []string{"python", "mysql", "git"} {
		found := false
		for _, m := range matched {
			if m == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected %q in matched skills, got %v", want, matched)
		}
	}
}

func TestExtractText_CorruptDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Error("Expected error for corrupt docx, got nil")
	}
}

func TestExtractText_DocxWithoutDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("Failed to create zip entry: %v", err)
	}
	w.Write([]byte("<styles/>"))
	zw.Close()
	f.Close()

	if _, err := ExtractText(path); err == nil {
		t.Error("Expected error for docx without document.xml, got nil")
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-garbage"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Error("Expected error for corrupt pdf, got nil")
	}
}
