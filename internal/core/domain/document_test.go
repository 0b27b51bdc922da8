package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		input    string
		expected FileType
	}{
		{"pdf", FileTypePDF},
		{"PDF", FileTypePDF},
		{"application/pdf", FileTypePDF},
		{"xml", FileTypeXML},
		{"text/xml", FileTypeXML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFileType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestParseFileType_Unsupported(t *testing.T) {
	_, err := ParseFileType("docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileTypeFromPath(t *testing.T) {
	got, err := FileTypeFromPath("/tmp/KDV Genel Uygulama Tebliği.PDF")
	require.NoError(t, err)
	assert.Equal(t, FileTypePDF, got)

	got, err = FileTypeFromPath("e-fatura.xml")
	require.NoError(t, err)
	assert.Equal(t, FileTypeXML, got)

	_, err = FileTypeFromPath("README")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FileTypeFromPath("notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
