package ingestion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("John Doe\r\nSenior   Engineer\n"))
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSenior Engineer", text)
}

func TestExtractText_UnknownExtensionTreatedAsText(t *testing.T) {
	text, err := ExtractText("resume.md", []byte("# John Doe\nEngineer"))
	require.NoError(t, err)
	assert.Contains(t, text, "# John Doe")
}

func TestExtractText_PDFRejectedWithGuidance(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("%PDF-1.4"))
	require.Error(t, err)

	var adapterErr *AdapterError
	require.True(t, errors.As(err, &adapterErr))
	assert.Equal(t, "resume.pdf", adapterErr.Filename)
	assert.Contains(t, adapterErr.Message, "PDF support coming soon")
	assert.Contains(t, adapterErr.Message, ".docx")
}

func TestExtractText_EmptyFile(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("   \n\t  "))
	require.Error(t, err)

	var adapterErr *AdapterError
	require.True(t, errors.As(err, &adapterErr))
	assert.Contains(t, adapterErr.Message, "no readable text")
}

func TestExtractText_CorruptWordDocument(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a zip archive"))
	require.Error(t, err)

	var adapterErr *AdapterError
	require.True(t, errors.As(err, &adapterErr))
	assert.Contains(t, adapterErr.Message, "Word document")
}
