package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadSource(t *testing.T) {
	path := writeTempFile(t, "main.cpp", "int main(){}")

	source, err := ReadSource(path)

	require.NoError(t, err)
	assert.Equal(t, "int main(){}", source)
}

func TestReadSourceMissing(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.cpp"))

	assert.Error(t, err)
}

func TestReadAttachments(t *testing.T) {
	header := writeTempFile(t, "util.h", "#pragma once")
	impl := writeTempFile(t, "util.cpp", "// impl")

	attachments, err := ReadAttachments([]string{header, impl})

	require.NoError(t, err)
	require.Len(t, attachments, 2)

	// attachment names are base names, the directory never travels
	assert.Equal(t, Attachment{Name: "util.h", Content: "#pragma once"}, attachments[0])
	assert.Equal(t, Attachment{Name: "util.cpp", Content: "// impl"}, attachments[1])
}

func TestReadAttachmentsFailsWhole(t *testing.T) {
	header := writeTempFile(t, "util.h", "#pragma once")
	missing := filepath.Join(t.TempDir(), "missing.h")

	attachments, err := ReadAttachments([]string{header, missing})

	assert.Error(t, err)
	assert.Nil(t, attachments)
}

func TestReadAttachmentsEmpty(t *testing.T) {
	attachments, err := ReadAttachments(nil)

	require.NoError(t, err)
	assert.Empty(t, attachments)
}
