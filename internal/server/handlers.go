// handlers.go holds the CRUD handlers for every content entity. Each
// route dispatches on method: reads are public and cached, writes go
// through the admin guard, and every failure is converted to the
// {"error": ...} body before it leaves the process.
package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jdoe/portfolio-backend/internal/models"
	"github.com/jdoe/portfolio-backend/internal/notify"
)

const maxUploadBytes = 10 << 20

// --- About (singleton) ---

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data, err := s.getCached("about", func() (any, error) {
			return s.store.About(r.Context())
		})
		if err != nil {
			writeStoreError(w, err, "about")
			return
		}
		writeJSON(w, http.StatusOK, data)
	case http.MethodPost, http.MethodPut:
		if !s.guard(w, r) {
			return
		}
		about, err := parseAbout(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if about.Title == "" || about.Description == "" {
			writeError(w, http.StatusBadRequest, "Title and description are required")
			return
		}
		saved, err := s.store.SaveAbout(r.Context(), about)
		if err != nil {
			writeStoreError(w, err, "about")
			return
		}
		s.cache.Delete("about")
		writeJSON(w, createdOrOK(r), saved)
	default:
		methodNotAllowed(w)
	}
}

// --- Resume (singleton) ---

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Get("download") == "true" {
			s.downloadResume(w, r)
			return
		}
		data, err := s.getCached("resume", func() (any, error) {
			return s.store.Resume(r.Context())
		})
		if err != nil {
			writeStoreError(w, err, "resume")
			return
		}
		writeJSON(w, http.StatusOK, data)
	case http.MethodPost, http.MethodPut:
		if !s.guard(w, r) {
			return
		}
		resume, err := parseResume(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		saved, err := s.store.SaveResume(r.Context(), resume)
		if err != nil {
			writeStoreError(w, err, "resume")
			return
		}
		s.cache.Delete("resume")
		writeJSON(w, createdOrOK(r), saved)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) downloadResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.store.Resume(r.Context())
	if err != nil {
		writeStoreError(w, err, "resume")
		return
	}
	if len(resume.PDFData) == 0 {
		writeError(w, http.StatusNotFound, "No resume PDF uploaded")
		return
	}
	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	fileName := resume.PDFFileName
	if fileName == "" {
		fileName = "resume.pdf"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Write(resume.PDFData)
}

// --- Projects ---

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data, err := s.getCached("projects", func() (any, error) {
			return s.store.Projects(r.Context())
		})
		if err != nil {
			writeStoreError(w, err, "projects")
			return
		}
		writeJSON(w, http.StatusOK, data)
	case http.MethodPost:
		if !s.guard(w, r) {
			return
		}
		project, err := parseProject(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if project.Title == "" || project.Description == "" {
			writeError(w, http.StatusBadRequest, "Title and description are required")
			return
		}
		created, err := s.store.CreateProject(r.Context(), project)
		if err != nil {
			writeStoreError(w, err, "project")
			return
		}
		s.cache.Delete("projects")
		writeJSON(w, http.StatusCreated, created)
	case http.MethodPut:
		if !s.guard(w, r) {
			return
		}
		project, err := parseProject(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if project.ID == "" {
			writeError(w, http.StatusBadRequest, "ID is required for update")
			return
		}
		updated, err := s.store.UpdateProject(r.Context(), project)
		if err != nil {
			writeStoreError(w, err, "project")
			return
		}
		s.cache.Delete("projects")
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if !s.guard(w, r) {
			return
		}
		s.deleteByQueryID(w, r, "project", s.store.DeleteProject)
		s.cache.Delete("projects")
	default:
		methodNotAllowed(w)
	}
}

// --- Experience ---

func (s *Server) handleExperience(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data, err := s.getCached("experience", func() (any, error) {
			return s.store.Experiences(r.Context())
		})
		if err != nil {
			writeStoreError(w, err, "experience")
			return
		}
		writeJSON(w, http.StatusOK, data)
	case http.MethodPost:
		if !s.guard(w, r) {
			return
		}
		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if experience.Role == "" || experience.Company == "" || experience.StartDate == "" {
			writeError(w, http.StatusBadRequest, "Role, company and start date are required")
			return
		}
		created, err := s.store.CreateExperience(r.Context(), experience)
		if err != nil {
			writeStoreError(w, err, "experience")
			return
		}
		s.cache.Delete("experience")
		writeJSON(w, http.StatusCreated, created)
	case http.MethodPut:
		if !s.guard(w, r) {
			return
		}
		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if experience.ID == "" {
			writeError(w, http.StatusBadRequest, "ID is required for update")
			return
		}
		updated, err := s.store.UpdateExperience(r.Context(), experience)
		if err != nil {
			writeStoreError(w, err, "experience")
			return
		}
		s.cache.Delete("experience")
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if !s.guard(w, r) {
			return
		}
		s.deleteByQueryID(w, r, "experience", s.store.DeleteExperience)
		s.cache.Delete("experience")
	default:
		methodNotAllowed(w)
	}
}

// --- Certificates ---

func (s *Server) handleCertificates(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data, err := s.getCached("certificates", func() (any, error) {
			return s.store.Certificates(r.Context())
		})
		if err != nil {
			writeStoreError(w, err, "certificates")
			return
		}
		writeJSON(w, http.StatusOK, data)
	case http.MethodPost:
		if !s.guard(w, r) {
			return
		}
		certificate, err := parseCertificate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if certificate.Title == "" || certificate.Organization == "" || certificate.Date == "" {
			writeError(w, http.StatusBadRequest, "Title, organization and date are required")
			return
		}
		created, err := s.store.CreateCertificate(r.Context(), certificate)
		if err != nil {
			writeStoreError(w, err, "certificate")
			return
		}
		s.cache.Delete("certificates")
		writeJSON(w, http.StatusCreated, created)
	case http.MethodPut:
		if !s.guard(w, r) {
			return
		}
		certificate, err := parseCertificate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if certificate.ID == "" {
			writeError(w, http.StatusBadRequest, "ID is required for update")
			return
		}
		updated, err := s.store.UpdateCertificate(r.Context(), certificate)
		if err != nil {
			writeStoreError(w, err, "certificate")
			return
		}
		s.cache.Delete("certificates")
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if !s.guard(w, r) {
			return
		}
		s.deleteByQueryID(w, r, "certificate", s.store.DeleteCertificate)
		s.cache.Delete("certificates")
	default:
		methodNotAllowed(w)
	}
}

// --- Skills ---

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data, err := s.getCached("skills", func() (any, error) {
			return s.store.Skills(r.Context())
		})
		if err != nil {
			writeStoreError(w, err, "skills")
			return
		}
		writeJSON(w, http.StatusOK, data)
	case http.MethodPost:
		if !s.guard(w, r) {
			return
		}
		var skill models.Skill
		if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if skill.Name == "" || skill.Category == "" {
			writeError(w, http.StatusBadRequest, "Name and category are required")
			return
		}
		created, err := s.store.CreateSkill(r.Context(), skill)
		if err != nil {
			writeStoreError(w, err, "skill")
			return
		}
		s.cache.Delete("skills")
		writeJSON(w, http.StatusCreated, created)
	case http.MethodPut:
		if !s.guard(w, r) {
			return
		}
		var skill models.Skill
		if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if skill.ID == "" {
			writeError(w, http.StatusBadRequest, "ID is required for update")
			return
		}
		updated, err := s.store.UpdateSkill(r.Context(), skill)
		if err != nil {
			writeStoreError(w, err, "skill")
			return
		}
		s.cache.Delete("skills")
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if !s.guard(w, r) {
			return
		}
		s.deleteByQueryID(w, r, "skill", s.store.DeleteSkill)
		s.cache.Delete("skills")
	default:
		methodNotAllowed(w)
	}
}

// --- Contact messages ---

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// The inbox is for the admin only.
		if !s.guard(w, r) {
			return
		}
		messages, err := s.store.Messages(r.Context())
		if err != nil {
			writeStoreError(w, err, "messages")
			return
		}
		writeJSON(w, http.StatusOK, messages)
	case http.MethodPost:
		var message models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if message.Name == "" || message.Email == "" || message.Message == "" {
			writeError(w, http.StatusBadRequest, "Name, email and message are required")
			return
		}
		created, err := s.store.CreateMessage(r.Context(), message)
		if err != nil {
			writeStoreError(w, err, "message")
			return
		}
		// Fire and forget: a broken notifier must never fail the visitor.
		notify.Dispatch(s.notifier, created)
		writeJSON(w, http.StatusCreated, created)
	case http.MethodDelete:
		if !s.guard(w, r) {
			return
		}
		s.deleteByQueryID(w, r, "message", s.store.DeleteMessage)
	default:
		methodNotAllowed(w)
	}
}

// deleteByQueryID handles the shared DELETE /api/E?id=... shape.
func (s *Server) deleteByQueryID(w http.ResponseWriter, r *http.Request, kind string, del func(ctx context.Context, id string) error) {
	id := r.URL.Query().Get("id")
	if id == "" || id == "undefined" {
		writeError(w, http.StatusBadRequest, "Valid ID is required")
		return
	}
	if err := del(r.Context(), id); err != nil {
		writeStoreError(w, err, kind)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func createdOrOK(r *http.Request) int {
	if r.Method == http.MethodPost {
		return http.StatusCreated
	}
	return http.StatusOK
}

// --- Body parsing ---

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formFileDataURL reads an uploaded file and embeds it as a data URL, the
// storage convention for images: no object store, the record carries its
// own bytes. Returns "" when the field was not sent.
func formFileDataURL(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func parseStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	// Older admin forms sent comma-separated values.
	parts := strings.Split(raw, ",")
	list = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func formID(r *http.Request) string {
	if id := r.FormValue("id"); id != "" {
		return id
	}
	// The admin forms briefly used the document-store field name.
	return r.FormValue("_id")
}

func parseAbout(r *http.Request) (models.About, error) {
	var about models.About
	if !isMultipart(r) {
		err := json.NewDecoder(r.Body).Decode(&about)
		return about, err
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return about, err
	}
	about.ID = formID(r)
	about.Title = r.FormValue("title")
	about.Description = r.FormValue("description")
	about.ImageURL = r.FormValue("imageUrl")
	about.SocialLinks = map[string]string{}
	if raw := r.FormValue("socialLinks"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &about.SocialLinks); err != nil {
			return about, fmt.Errorf("parsing socialLinks: %w", err)
		}
	}
	if dataURL, err := formFileDataURL(r, "image"); err != nil {
		return about, err
	} else if dataURL != "" {
		about.ImageURL = dataURL
	}
	return about, nil
}

func parseProject(r *http.Request) (models.Project, error) {
	var project models.Project
	if !isMultipart(r) {
		err := json.NewDecoder(r.Body).Decode(&project)
		return project, err
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return project, err
	}
	project.ID = formID(r)
	project.Title = r.FormValue("title")
	project.Description = r.FormValue("description")
	project.TechStack = parseStringList(r.FormValue("techStack"))
	project.ImageURL = r.FormValue("imageUrl")
	project.DemoURL = r.FormValue("demoUrl")
	project.RepoURL = r.FormValue("repoUrl")
	if dataURL, err := formFileDataURL(r, "image"); err != nil {
		return project, err
	} else if dataURL != "" {
		project.ImageURL = dataURL
	}
	return project, nil
}

func parseCertificate(r *http.Request) (models.Certificate, error) {
	var certificate models.Certificate
	if !isMultipart(r) {
		err := json.NewDecoder(r.Body).Decode(&certificate)
		return certificate, err
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return certificate, err
	}
	certificate.ID = formID(r)
	certificate.Title = r.FormValue("title")
	certificate.Organization = r.FormValue("organization")
	certificate.Date = r.FormValue("date")
	certificate.CredentialURL = r.FormValue("credentialUrl")
	certificate.ImageURL = r.FormValue("imageUrl")
	if dataURL, err := formFileDataURL(r, "image"); err != nil {
		return certificate, err
	} else if dataURL != "" {
		certificate.ImageURL = dataURL
	}
	return certificate, nil
}

// resumePayload widens the JSON shape with the base64 PDF field the admin
// form submits.
type resumePayload struct {
	models.Resume
	PDFFileData string `json:"pdfFileData,omitempty"`
}

func parseResume(r *http.Request) (models.Resume, error) {
	if !isMultipart(r) {
		var payload resumePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return models.Resume{}, err
		}
		resume := payload.Resume
		if payload.PDFFileData != "" {
			data, err := decodeBase64Payload(payload.PDFFileData)
			if err != nil {
				return models.Resume{}, fmt.Errorf("parsing pdfFileData: %w", err)
			}
			resume.PDFData = data
		}
		return resume, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return models.Resume{}, err
	}
	var resume models.Resume
	resume.ID = formID(r)
	resume.Summary = r.FormValue("summary")
	resume.PersonalInfo = map[string]string{}
	if raw := r.FormValue("personalInfo"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &resume.PersonalInfo); err != nil {
			return models.Resume{}, fmt.Errorf("parsing personalInfo: %w", err)
		}
	}
	if raw := r.FormValue("education"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &resume.Education); err != nil {
			return models.Resume{}, fmt.Errorf("parsing education: %w", err)
		}
	}
	if raw := r.FormValue("experience"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &resume.Experience); err != nil {
			return models.Resume{}, fmt.Errorf("parsing experience: %w", err)
		}
	}

	file, header, err := r.FormFile("pdf")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return models.Resume{}, err
		}
		resume.PDFData = data
		resume.PDFFileName = header.Filename
		resume.ContentType = header.Header.Get("Content-Type")
		if resume.ContentType == "" {
			resume.ContentType = "application/pdf"
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		return models.Resume{}, err
	}
	return resume, nil
}

// decodeBase64Payload accepts both a bare base64 string and a full data
// URL, which is what FileReader.readAsDataURL produces in the admin form.
func decodeBase64Payload(raw string) ([]byte, error) {
	if idx := strings.Index(raw, ";base64,"); idx >= 0 {
		raw = raw[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(raw)
}
