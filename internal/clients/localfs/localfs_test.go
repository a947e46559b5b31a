package localfs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/internal/clients/localfs"
)

func TestSaver_Save(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "saida")
	s := localfs.New(dir)

	got, err := s.Save(context.Background(), "12345_Maria_Silva_Contrato.pdf", []byte("%PDF-1"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "12345_Maria_Silva_Contrato.pdf"), got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1"), content)

	// saving again overwrites the same file
	_, err = s.Save(context.Background(), "12345_Maria_Silva_Contrato.pdf", []byte("%PDF-2"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = s.Save(context.Background(), "../fora.pdf", []byte("x"))
	require.Error(t, err)
}
