package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType identifies an uploaded document format.
type FileType string

// Supported document formats.
const (
	FileTypePDF FileType = "pdf"
	FileTypeXML FileType = "xml"
)

// IsValid returns true if the file type is supported.
func (f FileType) IsValid() bool {
	return f == FileTypePDF || f == FileTypeXML
}

// String returns the string representation.
func (f FileType) String() string {
	return string(f)
}

// ParseFileType resolves a type name ("pdf", "XML") or a MIME type.
func ParseFileType(name string) (FileType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pdf", "application/pdf":
		return FileTypePDF, nil
	case "xml", "application/xml", "text/xml":
		return FileTypeXML, nil
	default:
		return "", fmt.Errorf("%w: file type %q", ErrUnsupportedFormat, name)
	}
}

// FileTypeFromPath resolves the file type from a path's extension.
func FileTypeFromPath(path string) (FileType, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFileType(ext)
}
