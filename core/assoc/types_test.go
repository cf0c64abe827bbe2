package assoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Extension
	}{
		{"already normalized", ".txt", ".txt"},
		{"missing dot", "txt", ".txt"},
		{"upper case", ".TXT", ".txt"},
		{"mixed case no dot", "Pdf", ".pdf"},
		{"surrounding whitespace", "  .html \t", ".html"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"compound", ".tar.gz", ".tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExt(tt.in))
		})
	}
}

func TestExtension_Valid(t *testing.T) {
	valid := []string{".txt", ".c", ".tar.gz", ".7z", ".my-ext", ".a+b", ".x_y"}
	for _, s := range valid {
		assert.True(t, NormalizeExt(s).Valid(), "expected %q to be valid", s)
	}

	invalid := []string{"", ".", "..", ".-bad", "._hidden", ". txt", ".tx t", ".txt!"}
	for _, s := range invalid {
		assert.False(t, Extension(s).Valid(), "expected %q to be invalid", s)
	}
}

func TestNormalizeHandler(t *testing.T) {
	assert.Equal(t, HandlerID("Notepad.Assoc"), NormalizeHandler("  Notepad.Assoc\n"))
	assert.True(t, NormalizeHandler("   ").IsZero())
	assert.False(t, NormalizeHandler("AppX.foo").IsZero())
}

func TestReadError(t *testing.T) {
	underlying := errors.New("boom")
	err := NewReadError(".txt", ReadAccessDenied, underlying)

	assert.ErrorContains(t, err, ".txt")
	assert.ErrorContains(t, err, "access_denied")
	assert.ErrorIs(t, err, underlying)

	var re *ReadError
	require.ErrorIs(t, err, underlying)
	require.True(t, errors.As(error(err), &re))
	assert.Equal(t, ReadAccessDenied, re.Kind)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewReadError(".txt", ReadNotFound, nil)))
	assert.False(t, IsNotFound(NewReadError(".txt", ReadSystemError, nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestRestoreError(t *testing.T) {
	underlying := errors.New("registry write failed")
	err := NewRestoreError(".pdf", RestoreWriteFailed, underlying)

	assert.ErrorContains(t, err, ".pdf")
	assert.ErrorContains(t, err, "write_failed")
	assert.ErrorIs(t, err, underlying)
}
