// Tests for behavior specific to the sqlite backend.
package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/portfolio-backend/internal/models"
)

func TestGormBackendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	st, err := OpenGorm(path)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := st.CreateProject(ctx, models.Project{
		Title:       "Persistent",
		Description: "Survives process restarts",
		TechStack:   []string{"Go", "sqlite"},
	})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st2, err := OpenGorm(path)
	require.NoError(t, err)
	defer st2.Close()
	projects, err := st2.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, created.ID, projects[0].ID)
	assert.Equal(t, []string{"Go", "sqlite"}, projects[0].TechStack,
		"JSON columns must decode to what was written")
}

func TestGormBackendIDsAreNumericStrings(t *testing.T) {
	st, err := OpenGorm(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	skill, err := st.CreateSkill(ctx, models.Skill{Name: "Go", Category: "Backend"})
	require.NoError(t, err)
	assert.Equal(t, "1", skill.ID)

	// Zero is never issued and must not delete anything.
	assert.ErrorIs(t, st.DeleteSkill(ctx, "0"), ErrInvalidID)
}

func TestGormBackendDeleteIsFinal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	st, err := OpenGorm(path)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := st.CreateCertificate(ctx, models.Certificate{
		Title: "t", Organization: "o", Date: "2024",
	})
	require.NoError(t, err)
	require.NoError(t, st.DeleteCertificate(ctx, created.ID))
	require.NoError(t, st.Close())

	// No soft-delete: the row is gone after reopening too.
	st2, err := OpenGorm(path)
	require.NoError(t, err)
	defer st2.Close()
	certificates, err := st2.Certificates(ctx)
	require.NoError(t, err)
	assert.Empty(t, certificates)
}
