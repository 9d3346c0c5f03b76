// file.go is the flat-file backend, the oldest storage layer: one JSON
// file per entity under a data directory. Records are stored in creation
// order and re-sorted on read so listing behaves the same as the other
// backends. Writes go through a temp file and rename so a crash cannot
// leave a half-written entity file behind.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jdoe/portfolio-backend/internal/models"
)

type fileStore struct {
	dir string

	// One process-wide lock: every operation is a whole-file
	// read-modify-write, so per-entity locking buys nothing here.
	mu sync.Mutex
}

// OpenFile opens the flat-file backend rooted at dir, creating the
// directory if needed.
func OpenFile(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &fileStore{dir: dir}, nil
}

func (f *fileStore) Close() error { return nil }

func (f *fileStore) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

// readInto loads an entity file into v. A missing file is not an error:
// v keeps its zero value, matching fetch-singleton-or-default semantics.
func (f *fileStore) readInto(name string, v any) error {
	data, err := os.ReadFile(f.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.path(name), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", f.path(name), err)
	}
	return nil
}

func (f *fileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	tmp := f.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path(name)); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path(name), err)
	}
	return nil
}

func newFileID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func checkFileID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

// --- About ---

func (f *fileStore) About(ctx context.Context) (models.About, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	about := defaultAbout()
	if err := f.readInto("about", &about); err != nil {
		return models.About{}, err
	}
	if about.SocialLinks == nil {
		about.SocialLinks = map[string]string{}
	}
	return about, nil
}

func (f *fileStore) SaveAbout(ctx context.Context, about models.About) (models.About, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing := defaultAbout()
	if err := f.readInto("about", &existing); err != nil {
		return models.About{}, err
	}
	now := time.Now().UTC()
	if existing.ID == "" {
		about.ID = newFileID()
		about.CreatedAt = now
	} else {
		about.ID = existing.ID
		about.CreatedAt = existing.CreatedAt
	}
	about.UpdatedAt = now
	if about.SocialLinks == nil {
		about.SocialLinks = map[string]string{}
	}
	if err := f.write("about", about); err != nil {
		return models.About{}, err
	}
	return about, nil
}

// --- Resume ---

func (f *fileStore) Resume(ctx context.Context) (models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := resumeFile{Resume: defaultResume()}
	if err := f.readInto("resume", &stored); err != nil {
		return models.Resume{}, err
	}
	resume := stored.Resume
	resume.PDFData = stored.PDFData
	normalizeResume(&resume)
	return resume, nil
}

func (f *fileStore) SaveResume(ctx context.Context, resume models.Resume) (models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := resumeFile{Resume: defaultResume()}
	if err := f.readInto("resume", &stored); err != nil {
		return models.Resume{}, err
	}
	existing := stored.Resume
	existing.PDFData = stored.PDFData
	now := time.Now().UTC()
	if existing.ID == "" {
		resume.ID = newFileID()
		resume.CreatedAt = now
	} else {
		resume.ID = existing.ID
		resume.CreatedAt = existing.CreatedAt
	}
	resume.UpdatedAt = now
	if resume.PDFData == nil {
		resume.PDFData = existing.PDFData
		resume.PDFFileName = existing.PDFFileName
		resume.ContentType = existing.ContentType
	}
	normalizeResume(&resume)
	if err := f.write("resume", resumeFile{Resume: resume, PDFData: resume.PDFData}); err != nil {
		return models.Resume{}, err
	}
	return resume, nil
}

func normalizeResume(resume *models.Resume) {
	if resume.PersonalInfo == nil {
		resume.PersonalInfo = map[string]string{}
	}
	if resume.Education == nil {
		resume.Education = []models.Education{}
	}
	if resume.Experience == nil {
		resume.Experience = []models.ResumeExperience{}
	}
}

// resumeFile re-exposes the PDF payload, which the API shape hides from
// JSON, so the file round-trips completely.
type resumeFile struct {
	models.Resume
	PDFData []byte `json:"pdfData,omitempty"`
}

// --- Projects ---

func (f *fileStore) Projects(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var projects []models.Project
	if err := f.readInto("projects", &projects); err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt) ||
			(projects[i].CreatedAt.Equal(projects[j].CreatedAt) && projects[i].ID > projects[j].ID)
	})
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (f *fileStore) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var projects []models.Project
	if err := f.readInto("projects", &projects); err != nil {
		return models.Project{}, err
	}
	p.ID = newFileID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	projects = append(projects, p)
	if err := f.write("projects", projects); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (f *fileStore) UpdateProject(ctx context.Context, p models.Project) (models.Project, error) {
	if err := checkFileID(p.ID); err != nil {
		return models.Project{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var projects []models.Project
	if err := f.readInto("projects", &projects); err != nil {
		return models.Project{}, err
	}
	for i := range projects {
		if projects[i].ID != p.ID {
			continue
		}
		p.CreatedAt = projects[i].CreatedAt
		p.UpdatedAt = time.Now().UTC()
		if p.TechStack == nil {
			p.TechStack = []string{}
		}
		projects[i] = p
		if err := f.write("projects", projects); err != nil {
			return models.Project{}, err
		}
		return p, nil
	}
	return models.Project{}, ErrNotFound
}

func (f *fileStore) DeleteProject(ctx context.Context, id string) error {
	return deleteFileRecord(f, "projects", id, func(p models.Project) string { return p.ID })
}

// --- Experience ---

func (f *fileStore) Experiences(ctx context.Context) ([]models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var experiences []models.Experience
	if err := f.readInto("experience", &experiences); err != nil {
		return nil, err
	}
	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].CreatedAt.After(experiences[j].CreatedAt) ||
			(experiences[i].CreatedAt.Equal(experiences[j].CreatedAt) && experiences[i].ID > experiences[j].ID)
	})
	if experiences == nil {
		experiences = []models.Experience{}
	}
	return experiences, nil
}

func (f *fileStore) CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var experiences []models.Experience
	if err := f.readInto("experience", &experiences); err != nil {
		return models.Experience{}, err
	}
	e.ID = newFileID()
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	if e.Description == nil {
		e.Description = []string{}
	}
	experiences = append(experiences, e)
	if err := f.write("experience", experiences); err != nil {
		return models.Experience{}, err
	}
	return e, nil
}

func (f *fileStore) UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	if err := checkFileID(e.ID); err != nil {
		return models.Experience{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var experiences []models.Experience
	if err := f.readInto("experience", &experiences); err != nil {
		return models.Experience{}, err
	}
	for i := range experiences {
		if experiences[i].ID != e.ID {
			continue
		}
		e.CreatedAt = experiences[i].CreatedAt
		e.UpdatedAt = time.Now().UTC()
		if e.Description == nil {
			e.Description = []string{}
		}
		experiences[i] = e
		if err := f.write("experience", experiences); err != nil {
			return models.Experience{}, err
		}
		return e, nil
	}
	return models.Experience{}, ErrNotFound
}

func (f *fileStore) DeleteExperience(ctx context.Context, id string) error {
	return deleteFileRecord(f, "experience", id, func(e models.Experience) string { return e.ID })
}

// --- Certificates ---

func (f *fileStore) Certificates(ctx context.Context) ([]models.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var certificates []models.Certificate
	if err := f.readInto("certificates", &certificates); err != nil {
		return nil, err
	}
	sort.SliceStable(certificates, func(i, j int) bool {
		return certificates[i].CreatedAt.After(certificates[j].CreatedAt) ||
			(certificates[i].CreatedAt.Equal(certificates[j].CreatedAt) && certificates[i].ID > certificates[j].ID)
	})
	if certificates == nil {
		certificates = []models.Certificate{}
	}
	return certificates, nil
}

func (f *fileStore) CreateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var certificates []models.Certificate
	if err := f.readInto("certificates", &certificates); err != nil {
		return models.Certificate{}, err
	}
	c.ID = newFileID()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	certificates = append(certificates, c)
	if err := f.write("certificates", certificates); err != nil {
		return models.Certificate{}, err
	}
	return c, nil
}

func (f *fileStore) UpdateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	if err := checkFileID(c.ID); err != nil {
		return models.Certificate{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var certificates []models.Certificate
	if err := f.readInto("certificates", &certificates); err != nil {
		return models.Certificate{}, err
	}
	for i := range certificates {
		if certificates[i].ID != c.ID {
			continue
		}
		c.CreatedAt = certificates[i].CreatedAt
		c.UpdatedAt = time.Now().UTC()
		certificates[i] = c
		if err := f.write("certificates", certificates); err != nil {
			return models.Certificate{}, err
		}
		return c, nil
	}
	return models.Certificate{}, ErrNotFound
}

func (f *fileStore) DeleteCertificate(ctx context.Context, id string) error {
	return deleteFileRecord(f, "certificates", id, func(c models.Certificate) string { return c.ID })
}

// --- Skills ---

func (f *fileStore) Skills(ctx context.Context) ([]models.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var skills []models.Skill
	if err := f.readInto("skills", &skills); err != nil {
		return nil, err
	}
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Category != skills[j].Category {
			return skills[i].Category < skills[j].Category
		}
		return skills[i].Name < skills[j].Name
	})
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

func (f *fileStore) CreateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var skills []models.Skill
	if err := f.readInto("skills", &skills); err != nil {
		return models.Skill{}, err
	}
	s.ID = newFileID()
	s.CreatedAt = time.Now().UTC()
	skills = append(skills, s)
	if err := f.write("skills", skills); err != nil {
		return models.Skill{}, err
	}
	return s, nil
}

func (f *fileStore) UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	if err := checkFileID(s.ID); err != nil {
		return models.Skill{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var skills []models.Skill
	if err := f.readInto("skills", &skills); err != nil {
		return models.Skill{}, err
	}
	for i := range skills {
		if skills[i].ID != s.ID {
			continue
		}
		s.CreatedAt = skills[i].CreatedAt
		skills[i] = s
		if err := f.write("skills", skills); err != nil {
			return models.Skill{}, err
		}
		return s, nil
	}
	return models.Skill{}, ErrNotFound
}

func (f *fileStore) DeleteSkill(ctx context.Context, id string) error {
	return deleteFileRecord(f, "skills", id, func(s models.Skill) string { return s.ID })
}

// --- Contact messages ---

func (f *fileStore) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var messages []models.ContactMessage
	if err := f.readInto("contact", &messages); err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt) ||
			(messages[i].CreatedAt.Equal(messages[j].CreatedAt) && messages[i].ID > messages[j].ID)
	})
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}

func (f *fileStore) CreateMessage(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var messages []models.ContactMessage
	if err := f.readInto("contact", &messages); err != nil {
		return models.ContactMessage{}, err
	}
	m.ID = newFileID()
	m.CreatedAt = time.Now().UTC()
	messages = append(messages, m)
	if err := f.write("contact", messages); err != nil {
		return models.ContactMessage{}, err
	}
	return m, nil
}

func (f *fileStore) DeleteMessage(ctx context.Context, id string) error {
	return deleteFileRecord(f, "contact", id, func(m models.ContactMessage) string { return m.ID })
}

// deleteFileRecord removes one record from an entity file by identifier.
func deleteFileRecord[T any](f *fileStore, name, id string, idOf func(T) string) error {
	if err := checkFileID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var records []T
	if err := f.readInto(name, &records); err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, r := range records {
		if idOf(r) == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}
	return f.write(name, kept)
}
