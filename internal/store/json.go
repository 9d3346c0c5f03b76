// JSON codecs for nested fields stored as text columns.
//
// The sqlite backend keeps list- and map-valued fields as serialized JSON
// in text columns. Encoding and decoding happen only here, at the store
// boundary, so the contract stays symmetric: whatever a handler writes is
// what a later read returns. A decode failure yields an empty container,
// never an error, so one corrupt column cannot take a whole page down.
package store

import (
	"encoding/json"

	"github.com/jdoe/portfolio-backend/internal/models"
)

func encodeStrings(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(s string) []string {
	v := []string{}
	if s == "" {
		return v
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return []string{}
	}
	return v
}

func encodeStringMap(v map[string]string) string {
	if v == nil {
		v = map[string]string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func decodeStringMap(s string) map[string]string {
	v := map[string]string{}
	if s == "" {
		return v
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return map[string]string{}
	}
	return v
}

func encodeEducation(v []models.Education) string {
	if v == nil {
		v = []models.Education{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeEducation(s string) []models.Education {
	v := []models.Education{}
	if s == "" {
		return v
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return []models.Education{}
	}
	return v
}

func encodeResumeExperience(v []models.ResumeExperience) string {
	if v == nil {
		v = []models.ResumeExperience{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeResumeExperience(s string) []models.ResumeExperience {
	v := []models.ResumeExperience{}
	if s == "" {
		return v
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return []models.ResumeExperience{}
	}
	return v
}
