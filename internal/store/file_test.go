// Tests for behavior specific to the flat-file backend.
package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/portfolio-backend/internal/models"
)

func TestFileBackendLayout(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenFile(dir)
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	_, err = st.CreateProject(ctx, models.Project{Title: "p", Description: "d"})
	require.NoError(t, err)
	_, err = st.SaveAbout(ctx, models.About{Title: "a", Description: "d"})
	require.NoError(t, err)

	// One file per entity, no leftover temp files.
	assert.FileExists(t, filepath.Join(dir, "projects.json"))
	assert.FileExists(t, filepath.Join(dir, "about.json"))
	assert.NoFileExists(t, filepath.Join(dir, "projects.json.tmp"))

	// A second store over the same directory sees the same data.
	st2, err := OpenFile(dir)
	require.NoError(t, err)
	defer st2.Close()
	projects, err := st2.Projects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestFileBackendCorruptFile(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenFile(dir)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), []byte("{not json"), 0o644))

	// Corruption is an infrastructure failure, not silent data loss.
	_, err = st.Projects(context.Background())
	assert.Error(t, err)
}

func TestFileBackendPDFSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenFile(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = st.SaveResume(ctx, models.Resume{
		Summary:     "with pdf",
		PDFData:     []byte("%PDF-1.4 payload"),
		PDFFileName: "cv.pdf",
		ContentType: "application/pdf",
	})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st2, err := OpenFile(dir)
	require.NoError(t, err)
	defer st2.Close()
	resume, err := st2.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 payload"), resume.PDFData)
	assert.Equal(t, "cv.pdf", resume.PDFFileName)
}
