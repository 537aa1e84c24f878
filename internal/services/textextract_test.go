package services

import (
	"errors"
	"testing"

	"github.com/coursematch/coursematch-backend/internal/apperr"
)

func TestExtractSyllabusText_RejectsUnsupportedExtensions(t *testing.T) {
	for _, name := range []string{"syllabus.docx", "syllabus.png", "syllabus", "archive.zip"} {
		_, err := ExtractSyllabusText(name, []byte("CS 3102 Database Systems"))
		if !errors.Is(err, apperr.ErrUnsupportedFile) {
			t.Fatalf("ExtractSyllabusText(%q) err = %v, want ErrUnsupportedFile", name, err)
		}
	}
}

func TestExtractSyllabusText_PlainText(t *testing.T) {
	got, err := ExtractSyllabusText("syllabus.txt", []byte("CS 3102\n\nDatabase   Systems\tsyllabus\n"))
	if err != nil {
		t.Fatalf("ExtractSyllabusText err = %v", err)
	}
	if got != "CS 3102 Database Systems syllabus" {
		t.Fatalf("text = %q, want whitespace collapsed", got)
	}
}

func TestExtractSyllabusText_EmptyFile(t *testing.T) {
	_, err := ExtractSyllabusText("syllabus.md", nil)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for an empty upload", err)
	}
}

func TestExtractSyllabusText_WhitespaceOnly(t *testing.T) {
	_, err := ExtractSyllabusText("syllabus.txt", []byte("   \n\t  "))
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation when nothing is extractable", err)
	}
}

func TestExtractSyllabusText_BinaryMasqueradingAsText(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 'P', 'K', 0x03, 0x04}
	_, err := ExtractSyllabusText("syllabus.txt", data)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for binary content", err)
	}
}

func TestExtractSyllabusText_FakePDFHeader(t *testing.T) {
	_, err := ExtractSyllabusText("syllabus.pdf", []byte("just text, no pdf structure"))
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation when the %%PDF header is missing", err)
	}
}
