// Package resume turns an uploaded resume document into a structured profile.
// Acquisition is a fallback chain: native text extraction, combined multimodal
// OCR+structuring, deterministic keyword extraction, and finally a minimal
// placeholder profile, so downstream question generation can always proceed.
package resume

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported resume document format.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = ".pdf"
	FormatDOCX Format = ".docx"
	FormatTXT  Format = ".txt"
)

// UnsupportedFormatError indicates a document extension outside the accepted
// set. This is fatal and immediate: no fallback tier applies.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// DetectFormat determines the document format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch Format(ext) {
	case FormatPDF, FormatDOCX, FormatTXT:
		return Format(ext), nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

// TextExtractor performs native, format-specific text extraction (PDF page
// text, DOCX paragraph text, raw text read). Implementations live outside this
// module; the chain only depends on the contract. A failed or empty extraction
// should return "" rather than an error when the document itself is readable
// but contains no text layer (e.g. a scanned image).
type TextExtractor interface {
	Extract(path string, format Format) (string, error)
}
