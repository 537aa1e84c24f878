package services

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/coursematch/coursematch-backend/internal/apperr"
)

// ExtractSyllabusText pulls plain text from an uploaded syllabus. Only
// .txt, .md and .pdf are accepted; anything else is rejected before any
// matching is attempted. PDF content is verified by magic bytes, not the
// declared extension.
func ExtractSyllabusText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".md", ".pdf":
	default:
		return "", fmt.Errorf("%w: %s (upload .txt, .md or .pdf)", apperr.ErrUnsupportedFile, ext)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("empty file %s: %w", filename, apperr.ErrValidation)
	}

	var (
		text string
		err  error
	)
	switch {
	case ext == ".pdf":
		if !isPDF(data) {
			return "", fmt.Errorf("file claims pdf but missing %%PDF header: %w", apperr.ErrValidation)
		}
		text, err = extractPDF(data)
		if err != nil {
			return "", err
		}
	default:
		if !isProbablyText(data) {
			return "", fmt.Errorf("file %s is not plain text: %w", filename, apperr.ErrValidation)
		}
		text = collapseWhitespace(string(data))
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text in %s: %w", filename, apperr.ErrValidation)
	}
	return text, nil
}

func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func isProbablyText(b []byte) bool {
	sample := b
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	good := 0
	for _, c := range sample {
		if c == 0x00 {
			return false
		}
		if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			good++
		}
	}
	return float64(good)/float64(len(sample)) > 0.9
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return collapseWhitespace(string(b)), nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
