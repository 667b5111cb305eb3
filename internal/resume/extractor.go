package resume

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText returns the lowercased plain text of a resume file. Unsupported
// extensions yield empty text and no error, which scores as zero downstream.
// A corrupt file of a supported extension returns an error the caller can
// surface as a warning instead of failing the request.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := extractPDF(path)
		if err != nil {
			return "", fmt.Errorf("pdf extraction failed: %w", err)
		}
		return strings.ToLower(text), nil
	case ".docx":
		text, err := extractDocx(path)
		if err != nil {
			return "", fmt.Errorf("docx extraction failed: %w", err)
		}
		return strings.ToLower(text), nil
	default:
		return "", nil
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

var docxTags = regexp.MustCompile(`<[^>]+>`)

func extractDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("no document.xml found in %s", filepath.Base(path))
	}

	// Paragraphs are joined with single spaces; tags are stripped.
	text := strings.ReplaceAll(string(docXML), "</w:p>", " ")
	text = docxTags.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " "), nil
}
