// gorm.go is the sqlite backend, the newest of the three storage layers.
//
// Row types are private to this file. Nested fields (tech stacks, social
// links, resume history) live in JSON text columns and cross the boundary
// through the codecs in json.go. Identifiers are autoincrement integers
// rendered as strings at the API edge.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jdoe/portfolio-backend/internal/models"
)

// Row types deliberately avoid gorm.Model: its DeletedAt column would give
// every entity soft-delete semantics, and deletes here are final.

type aboutRow struct {
	ID          uint `gorm:"primarykey"`
	Title       string
	Description string
	ImageURL    string
	SocialLinks string // JSON object
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type resumeRow struct {
	ID           uint `gorm:"primarykey"`
	PersonalInfo string // JSON object
	Summary      string
	Education    string // JSON array
	Experience   string // JSON array
	PDFData      []byte
	PDFFileName  string
	ContentType  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type projectRow struct {
	ID          uint `gorm:"primarykey"`
	Title       string
	Description string
	TechStack   string // JSON array
	ImageURL    string
	DemoURL     string
	RepoURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type experienceRow struct {
	ID          uint `gorm:"primarykey"`
	Role        string
	Company     string
	StartDate   string
	EndDate     string
	Description string // JSON array
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type certificateRow struct {
	ID            uint `gorm:"primarykey"`
	Title         string
	Organization  string
	Date          string
	CredentialURL string
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type skillRow struct {
	ID        uint `gorm:"primarykey"`
	Name      string
	Category  string
	CreatedAt time.Time
}

type messageRow struct {
	ID        uint `gorm:"primarykey"`
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

type gormStore struct {
	db *gorm.DB
}

// OpenGorm opens (creating if needed) the sqlite database at path and
// migrates the schema.
func OpenGorm(path string) (Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", path, err)
	}
	err = db.AutoMigrate(
		&aboutRow{}, &resumeRow{}, &projectRow{}, &experienceRow{},
		&certificateRow{}, &skillRow{}, &messageRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &gormStore{db: db}, nil
}

func (g *gormStore) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseRowID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil || n == 0 {
		return 0, ErrInvalidID
	}
	return uint(n), nil
}

func formatRowID(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

// --- About ---

func (g *gormStore) About(ctx context.Context) (models.About, error) {
	var row aboutRow
	err := g.db.WithContext(ctx).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultAbout(), nil
	}
	if err != nil {
		return models.About{}, fmt.Errorf("fetching about: %w", err)
	}
	return aboutFromRow(row), nil
}

func (g *gormStore) SaveAbout(ctx context.Context, about models.About) (models.About, error) {
	var row aboutRow
	err := g.db.WithContext(ctx).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.About{}, fmt.Errorf("fetching about for upsert: %w", err)
	}
	row.Title = about.Title
	row.Description = about.Description
	row.ImageURL = about.ImageURL
	row.SocialLinks = encodeStringMap(about.SocialLinks)
	if err := g.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.About{}, fmt.Errorf("saving about: %w", err)
	}
	return aboutFromRow(row), nil
}

func defaultAbout() models.About {
	return models.About{SocialLinks: map[string]string{}}
}

func aboutFromRow(row aboutRow) models.About {
	return models.About{
		ID:          formatRowID(row.ID),
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		SocialLinks: decodeStringMap(row.SocialLinks),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// --- Resume ---

func (g *gormStore) Resume(ctx context.Context) (models.Resume, error) {
	var row resumeRow
	err := g.db.WithContext(ctx).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultResume(), nil
	}
	if err != nil {
		return models.Resume{}, fmt.Errorf("fetching resume: %w", err)
	}
	return resumeFromRow(row), nil
}

func (g *gormStore) SaveResume(ctx context.Context, resume models.Resume) (models.Resume, error) {
	var row resumeRow
	err := g.db.WithContext(ctx).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Resume{}, fmt.Errorf("fetching resume for upsert: %w", err)
	}
	row.PersonalInfo = encodeStringMap(resume.PersonalInfo)
	row.Summary = resume.Summary
	row.Education = encodeEducation(resume.Education)
	row.Experience = encodeResumeExperience(resume.Experience)
	if resume.PDFData != nil {
		row.PDFData = resume.PDFData
		row.PDFFileName = resume.PDFFileName
		row.ContentType = resume.ContentType
	}
	if err := g.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.Resume{}, fmt.Errorf("saving resume: %w", err)
	}
	return resumeFromRow(row), nil
}

func defaultResume() models.Resume {
	return models.Resume{
		PersonalInfo: map[string]string{},
		Education:    []models.Education{},
		Experience:   []models.ResumeExperience{},
	}
}

func resumeFromRow(row resumeRow) models.Resume {
	return models.Resume{
		ID:           formatRowID(row.ID),
		PersonalInfo: decodeStringMap(row.PersonalInfo),
		Summary:      row.Summary,
		Education:    decodeEducation(row.Education),
		Experience:   decodeResumeExperience(row.Experience),
		PDFData:      row.PDFData,
		PDFFileName:  row.PDFFileName,
		ContentType:  row.ContentType,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// --- Projects ---

func (g *gormStore) Projects(ctx context.Context) ([]models.Project, error) {
	var rows []projectRow
	err := g.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}
	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, projectFromRow(row))
	}
	return projects, nil
}

func (g *gormStore) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	row := projectRow{
		Title:       p.Title,
		Description: p.Description,
		TechStack:   encodeStrings(p.TechStack),
		ImageURL:    p.ImageURL,
		DemoURL:     p.DemoURL,
		RepoURL:     p.RepoURL,
	}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Project{}, fmt.Errorf("creating project: %w", err)
	}
	return projectFromRow(row), nil
}

func (g *gormStore) UpdateProject(ctx context.Context, p models.Project) (models.Project, error) {
	id, err := parseRowID(p.ID)
	if err != nil {
		return models.Project{}, err
	}
	var row projectRow
	if err := g.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("fetching project %s: %w", p.ID, err)
	}
	row.Title = p.Title
	row.Description = p.Description
	row.TechStack = encodeStrings(p.TechStack)
	row.ImageURL = p.ImageURL
	row.DemoURL = p.DemoURL
	row.RepoURL = p.RepoURL
	if err := g.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.Project{}, fmt.Errorf("updating project %s: %w", p.ID, err)
	}
	return projectFromRow(row), nil
}

func (g *gormStore) DeleteProject(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &projectRow{}, id, "project")
}

func projectFromRow(row projectRow) models.Project {
	return models.Project{
		ID:          formatRowID(row.ID),
		Title:       row.Title,
		Description: row.Description,
		TechStack:   decodeStrings(row.TechStack),
		ImageURL:    row.ImageURL,
		DemoURL:     row.DemoURL,
		RepoURL:     row.RepoURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// --- Experience ---

func (g *gormStore) Experiences(ctx context.Context) ([]models.Experience, error) {
	var rows []experienceRow
	err := g.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching experiences: %w", err)
	}
	experiences := make([]models.Experience, 0, len(rows))
	for _, row := range rows {
		experiences = append(experiences, experienceFromRow(row))
	}
	return experiences, nil
}

func (g *gormStore) CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	row := experienceRow{
		Role:        e.Role,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: encodeStrings(e.Description),
	}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Experience{}, fmt.Errorf("creating experience: %w", err)
	}
	return experienceFromRow(row), nil
}

func (g *gormStore) UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	id, err := parseRowID(e.ID)
	if err != nil {
		return models.Experience{}, err
	}
	var row experienceRow
	if err := g.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Experience{}, ErrNotFound
		}
		return models.Experience{}, fmt.Errorf("fetching experience %s: %w", e.ID, err)
	}
	row.Role = e.Role
	row.Company = e.Company
	row.StartDate = e.StartDate
	row.EndDate = e.EndDate
	row.Description = encodeStrings(e.Description)
	if err := g.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.Experience{}, fmt.Errorf("updating experience %s: %w", e.ID, err)
	}
	return experienceFromRow(row), nil
}

func (g *gormStore) DeleteExperience(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &experienceRow{}, id, "experience")
}

func experienceFromRow(row experienceRow) models.Experience {
	return models.Experience{
		ID:          formatRowID(row.ID),
		Role:        row.Role,
		Company:     row.Company,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		Description: decodeStrings(row.Description),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// --- Certificates ---

func (g *gormStore) Certificates(ctx context.Context) ([]models.Certificate, error) {
	var rows []certificateRow
	err := g.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching certificates: %w", err)
	}
	certificates := make([]models.Certificate, 0, len(rows))
	for _, row := range rows {
		certificates = append(certificates, certificateFromRow(row))
	}
	return certificates, nil
}

func (g *gormStore) CreateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	row := certificateRow{
		Title:         c.Title,
		Organization:  c.Organization,
		Date:          c.Date,
		CredentialURL: c.CredentialURL,
		ImageURL:      c.ImageURL,
	}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Certificate{}, fmt.Errorf("creating certificate: %w", err)
	}
	return certificateFromRow(row), nil
}

func (g *gormStore) UpdateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	id, err := parseRowID(c.ID)
	if err != nil {
		return models.Certificate{}, err
	}
	var row certificateRow
	if err := g.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Certificate{}, ErrNotFound
		}
		return models.Certificate{}, fmt.Errorf("fetching certificate %s: %w", c.ID, err)
	}
	row.Title = c.Title
	row.Organization = c.Organization
	row.Date = c.Date
	row.CredentialURL = c.CredentialURL
	row.ImageURL = c.ImageURL
	if err := g.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.Certificate{}, fmt.Errorf("updating certificate %s: %w", c.ID, err)
	}
	return certificateFromRow(row), nil
}

func (g *gormStore) DeleteCertificate(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &certificateRow{}, id, "certificate")
}

func certificateFromRow(row certificateRow) models.Certificate {
	return models.Certificate{
		ID:            formatRowID(row.ID),
		Title:         row.Title,
		Organization:  row.Organization,
		Date:          row.Date,
		CredentialURL: row.CredentialURL,
		ImageURL:      row.ImageURL,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// --- Skills ---

func (g *gormStore) Skills(ctx context.Context) ([]models.Skill, error) {
	var rows []skillRow
	err := g.db.WithContext(ctx).Order("category ASC, name ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching skills: %w", err)
	}
	skills := make([]models.Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, skillFromRow(row))
	}
	return skills, nil
}

func (g *gormStore) CreateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	row := skillRow{Name: s.Name, Category: s.Category}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Skill{}, fmt.Errorf("creating skill: %w", err)
	}
	return skillFromRow(row), nil
}

func (g *gormStore) UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	id, err := parseRowID(s.ID)
	if err != nil {
		return models.Skill{}, err
	}
	var row skillRow
	if err := g.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Skill{}, ErrNotFound
		}
		return models.Skill{}, fmt.Errorf("fetching skill %s: %w", s.ID, err)
	}
	row.Name = s.Name
	row.Category = s.Category
	if err := g.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.Skill{}, fmt.Errorf("updating skill %s: %w", s.ID, err)
	}
	return skillFromRow(row), nil
}

func (g *gormStore) DeleteSkill(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &skillRow{}, id, "skill")
}

func skillFromRow(row skillRow) models.Skill {
	return models.Skill{
		ID:        formatRowID(row.ID),
		Name:      row.Name,
		Category:  row.Category,
		CreatedAt: row.CreatedAt,
	}
}

// --- Contact messages ---

func (g *gormStore) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	var rows []messageRow
	err := g.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	messages := make([]models.ContactMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, messageFromRow(row))
	}
	return messages, nil
}

func (g *gormStore) CreateMessage(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	row := messageRow{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Message: m.Message,
	}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.ContactMessage{}, fmt.Errorf("creating message: %w", err)
	}
	return messageFromRow(row), nil
}

func (g *gormStore) DeleteMessage(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &messageRow{}, id, "message")
}

func messageFromRow(row messageRow) models.ContactMessage {
	return models.ContactMessage{
		ID:        formatRowID(row.ID),
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Message:   row.Message,
		CreatedAt: row.CreatedAt,
	}
}

// deleteByID removes one row of the given model by string identifier.
func (g *gormStore) deleteByID(ctx context.Context, model any, id, kind string) error {
	rowID, err := parseRowID(id)
	if err != nil {
		return err
	}
	result := g.db.WithContext(ctx).Delete(model, rowID)
	if result.Error != nil {
		return fmt.Errorf("deleting %s %s: %w", kind, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
