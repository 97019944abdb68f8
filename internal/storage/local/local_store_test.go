package local_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/storage/local"
)

func TestSaveAndPresign(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifacts")
	s := local.NewStore(dir)

	loc, err := s.Save(context.Background(), "LIT-2526-008.pdf", "application/pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "LIT-2526-008.pdf"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), data)

	url, err := s.PresignedURL(context.Background(), "LIT-2526-008.pdf", 60)
	require.NoError(t, err)
	assert.Equal(t, loc, url)
}

func TestSave_RejectsPathTraversal(t *testing.T) {
	s := local.NewStore(t.TempDir())

	_, err := s.Save(context.Background(), "../escape.pdf", "application/pdf", []byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtifactStore)
}
