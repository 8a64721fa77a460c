package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"invbill/internal/pkg/storage"
)

// TestWriteThenRead_RoundTrip verifica cabeçalho + linhas de dados.
func TestWriteThenRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	header := []string{"a", "b"}
	rows := [][]string{{"1", "um, dois"}, {"2", "y"}}

	assert.NoError(t, storage.WriteRows(path, header, rows))

	got, err := storage.ReadRows(path)
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

// TestReadRows_MissingFile verifica que arquivo inexistente não é erro.
func TestReadRows_MissingFile(t *testing.T) {
	got, err := storage.ReadRows(filepath.Join(t.TempDir(), "nope.csv"))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestWriteRows_ReplacesExistingFile verifica a regravação por inteiro: o
// conteúdo antigo desaparece e nenhum arquivo temporário fica para trás.
func TestWriteRows_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")

	assert.NoError(t, storage.WriteRows(path, []string{"a"}, [][]string{{"old"}}))
	assert.NoError(t, storage.WriteRows(path, []string{"a"}, [][]string{{"new"}}))

	got, err := storage.ReadRows(path)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"new"}}, got)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestWriteRows_FailureKeepsOriginal verifica a garantia atômica: quando a
// escrita falha (diretório inexistente), o destino antigo segue intacto.
func TestWriteRows_FailureKeepsOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "data.csv")

	err := storage.WriteRows(path, []string{"a"}, nil)
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
