// Conformance tests run against every backend that can be exercised
// hermetically (sqlite and flat files; mongo needs a running deployment).
// Whatever backend is configured, the API layer must see the same
// contract.
package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/portfolio-backend/internal/models"
)

type backendDriver struct {
	name string
	open func(t *testing.T) Store
	// unknownID is well-formed for the backend's key type but matches
	// nothing.
	unknownID string
}

func drivers() []backendDriver {
	return []backendDriver{
		{
			name: "sqlite",
			open: func(t *testing.T) Store {
				st, err := OpenGorm(filepath.Join(t.TempDir(), "portfolio.db"))
				require.NoError(t, err)
				t.Cleanup(func() { st.Close() })
				return st
			},
			unknownID: "424242",
		},
		{
			name: "file",
			open: func(t *testing.T) Store {
				st, err := OpenFile(t.TempDir())
				require.NoError(t, err)
				t.Cleanup(func() { st.Close() })
				return st
			},
			unknownID: uuid.NewString(),
		},
	}
}

func TestSingletonAbout(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			st := d.open(t)
			ctx := context.Background()

			// Empty store returns a default-shaped record, not an error.
			about, err := st.About(ctx)
			require.NoError(t, err)
			assert.Empty(t, about.ID)
			assert.NotNil(t, about.SocialLinks)

			first, err := st.SaveAbout(ctx, models.About{
				Title:       "About me",
				Description: "First version",
				SocialLinks: map[string]string{"github": "https://github.com/jdoe"},
			})
			require.NoError(t, err)
			assert.NotEmpty(t, first.ID)

			second, err := st.SaveAbout(ctx, models.About{
				Title:       "About me",
				Description: "Second version",
				SocialLinks: map[string]string{"github": "https://github.com/jdoe"},
			})
			require.NoError(t, err)
			assert.Equal(t, first.ID, second.ID, "upsert must not create a second record")

			got, err := st.About(ctx)
			require.NoError(t, err)
			assert.Equal(t, "Second version", got.Description)
			assert.Equal(t, first.CreatedAt.Unix(), got.CreatedAt.Unix())
		})
	}
}

func TestSingletonResumeRoundTrip(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			st := d.open(t)
			ctx := context.Background()

			resume := models.Resume{
				PersonalInfo: map[string]string{"name": "Jane", "email": "jane@example.com"},
				Summary:      "Engineer",
				Education: []models.Education{
					{Degree: "B.Sc.", University: "X", Year: "2020", Courses: []string{"CS101"}},
				},
				Experience: []models.ResumeExperience{
					{Role: "Engineer", Company: "Acme", Period: "2020 - 2023", Achievements: []string{"Built it"}},
				},
				PDFData:     []byte("%PDF-1.4 fake"),
				PDFFileName: "jane.pdf",
				ContentType: "application/pdf",
			}
			_, err := st.SaveResume(ctx, resume)
			require.NoError(t, err)

			got, err := st.Resume(ctx)
			require.NoError(t, err)
			assert.Equal(t, resume.PersonalInfo, got.PersonalInfo)
			assert.Equal(t, resume.Education, got.Education)
			assert.Equal(t, resume.Experience, got.Experience)
			assert.Equal(t, resume.PDFData, got.PDFData)

			// Saving without a PDF keeps the stored payload.
			update := got
			update.PDFData = nil
			update.Summary = "Senior engineer"
			_, err = st.SaveResume(ctx, update)
			require.NoError(t, err)

			got, err = st.Resume(ctx)
			require.NoError(t, err)
			assert.Equal(t, "Senior engineer", got.Summary)
			assert.Equal(t, resume.PDFData, got.PDFData)
			assert.Equal(t, "jane.pdf", got.PDFFileName)
		})
	}
}

func TestProjectLifecycle(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			st := d.open(t)
			ctx := context.Background()

			first, err := st.CreateProject(ctx, models.Project{
				Title:       "First",
				Description: "The first project",
				TechStack:   []string{"Go", "sqlite"},
			})
			require.NoError(t, err)
			assert.NotEmpty(t, first.ID)
			assert.False(t, first.CreatedAt.IsZero())

			second, err := st.CreateProject(ctx, models.Project{
				Title:       "Second",
				Description: "The second project",
			})
			require.NoError(t, err)
			assert.NotEqual(t, first.ID, second.ID)

			projects, err := st.Projects(ctx)
			require.NoError(t, err)
			require.Len(t, projects, 2)
			assert.Equal(t, "Second", projects[0].Title, "newest first")
			assert.Equal(t, []string{"Go", "sqlite"}, projects[1].TechStack)

			// Update replaces mutable fields and keeps identity.
			updated, err := st.UpdateProject(ctx, models.Project{
				ID:          first.ID,
				Title:       "First, renamed",
				Description: "Still the first project",
				TechStack:   []string{"Go"},
			})
			require.NoError(t, err)
			assert.Equal(t, first.ID, updated.ID)
			assert.Equal(t, first.CreatedAt.Unix(), updated.CreatedAt.Unix())

			_, err = st.UpdateProject(ctx, models.Project{ID: d.unknownID, Title: "x", Description: "y"})
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = st.UpdateProject(ctx, models.Project{ID: "not-an-id", Title: "x", Description: "y"})
			assert.ErrorIs(t, err, ErrInvalidID)

			require.NoError(t, st.DeleteProject(ctx, second.ID))
			assert.ErrorIs(t, st.DeleteProject(ctx, second.ID), ErrNotFound)
			assert.ErrorIs(t, st.DeleteProject(ctx, "not-an-id"), ErrInvalidID)

			projects, err = st.Projects(ctx)
			require.NoError(t, err)
			require.Len(t, projects, 1)
			assert.Equal(t, "First, renamed", projects[0].Title)
		})
	}
}

func TestExperienceLifecycle(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			st := d.open(t)
			ctx := context.Background()

			created, err := st.CreateExperience(ctx, models.Experience{
				Role:        "Backend Engineer",
				Company:     "Acme",
				StartDate:   "2022-01",
				Description: []string{"Owned the content API"},
			})
			require.NoError(t, err)
			assert.Empty(t, created.EndDate, "missing end date means current role")

			created.EndDate = "2024-06"
			updated, err := st.UpdateExperience(ctx, created)
			require.NoError(t, err)
			assert.Equal(t, "2024-06", updated.EndDate)
			assert.Equal(t, []string{"Owned the content API"}, updated.Description)

			require.NoError(t, st.DeleteExperience(ctx, created.ID))
			experiences, err := st.Experiences(ctx)
			require.NoError(t, err)
			assert.Empty(t, experiences)
		})
	}
}

func TestCertificateLifecycle(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			st := d.open(t)
			ctx := context.Background()

			created, err := st.CreateCertificate(ctx, models.Certificate{
				Title:        "Cloud Practitioner",
				Organization: "AWS",
				Date:         "2023-05",
				ImageURL:     "data:image/png;base64,aGk=",
			})
			require.NoError(t, err)

			created.Organization = "Amazon Web Services"
			updated, err := st.UpdateCertificate(ctx, created)
			require.NoError(t, err)
			assert.Equal(t, "Amazon Web Services", updated.Organization)
			assert.Equal(t, "data:image/png;base64,aGk=", updated.ImageURL)

			assert.ErrorIs(t, st.DeleteCertificate(ctx, d.unknownID), ErrNotFound)
			require.NoError(t, st.DeleteCertificate(ctx, created.ID))
		})
	}
}

func TestSkillsOrderedByCategory(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			st := d.open(t)
			ctx := context.Background()

			for _, skill := range []models.Skill{
				{Name: "PostgreSQL", Category: "Databases"},
				{Name: "Go", Category: "Backend"},
				{Name: "MongoDB", Category: "Databases"},
				{Name: "Docker", Category: "Backend"},
			} {
				_, err := st.CreateSkill(ctx, skill)
				require.NoError(t, err)
			}

			skills, err := st.Skills(ctx)
			require.NoError(t, err)
			require.Len(t, skills, 4)
			got := make([]string, 0, len(skills))
			for _, skill := range skills {
				got = append(got, skill.Category+"/"+skill.Name)
			}
			assert.Equal(t, []string{
				"Backend/Docker", "Backend/Go",
				"Databases/MongoDB", "Databases/PostgreSQL",
			}, got)
		})
	}
}

func TestMessagesNewestFirst(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			st := d.open(t)
			ctx := context.Background()

			var last models.ContactMessage
			for _, name := range []string{"first", "second", "third"} {
				m, err := st.CreateMessage(ctx, models.ContactMessage{
					Name:    name,
					Email:   name + "@example.com",
					Message: "hello",
				})
				require.NoError(t, err)
				assert.False(t, m.CreatedAt.IsZero())
				last = m
				time.Sleep(5 * time.Millisecond)
			}

			messages, err := st.Messages(ctx)
			require.NoError(t, err)
			require.Len(t, messages, 3)
			assert.Equal(t, "third", messages[0].Name)
			assert.Equal(t, "first", messages[2].Name)

			require.NoError(t, st.DeleteMessage(ctx, last.ID))
			messages, err = st.Messages(ctx)
			require.NoError(t, err)
			assert.Len(t, messages, 2)
		})
	}
}
