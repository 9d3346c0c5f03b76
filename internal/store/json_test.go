// Unit tests for the JSON column codecs: encode/decode symmetry and the
// empty-container fallback on corrupt input.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdoe/portfolio-backend/internal/models"
)

func TestStringsCodec(t *testing.T) {
	tests := []struct {
		name string
		in   []string
	}{
		{name: "values round-trip", in: []string{"Go", "TypeScript", "PostgreSQL"}},
		{name: "empty list round-trips", in: []string{}},
		{name: "nil encodes as empty list", in: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeStrings(encodeStrings(tt.in))
			if tt.in == nil {
				assert.Equal(t, []string{}, got)
				return
			}
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestStringsCodecCorruptColumn(t *testing.T) {
	assert.Equal(t, []string{}, decodeStrings("not json"))
	assert.Equal(t, []string{}, decodeStrings(`{"wrong":"shape"}`))
	assert.Equal(t, []string{}, decodeStrings(""))
}

func TestStringMapCodec(t *testing.T) {
	links := map[string]string{
		"github":   "https://github.com/jdoe",
		"linkedin": "https://linkedin.com/in/jdoe",
	}
	assert.Equal(t, links, decodeStringMap(encodeStringMap(links)))
	assert.Equal(t, map[string]string{}, decodeStringMap(encodeStringMap(nil)))
	assert.Equal(t, map[string]string{}, decodeStringMap("[1,2,3]"))
}

func TestEducationCodec(t *testing.T) {
	education := []models.Education{
		{Degree: "B.Sc.", University: "X", Year: "2020", Courses: []string{"CS101"}},
		{Degree: "M.Sc.", University: "Y", Year: "2023", Courses: []string{"CS501", "CS502"}},
	}
	assert.Equal(t, education, decodeEducation(encodeEducation(education)))
	assert.Equal(t, []models.Education{}, decodeEducation("garbage"))
}

func TestResumeExperienceCodec(t *testing.T) {
	experience := []models.ResumeExperience{
		{
			Role:         "Software Engineer",
			Company:      "Tech Solutions Inc.",
			Period:       "2023 - Present",
			Achievements: []string{"Shipped the thing", "Kept it running"},
		},
	}
	assert.Equal(t, experience, decodeResumeExperience(encodeResumeExperience(experience)))
	assert.Equal(t, []models.ResumeExperience{}, decodeResumeExperience("{"))
}
