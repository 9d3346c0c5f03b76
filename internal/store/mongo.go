// mongo.go is the document-store backend: one collection per entity,
// ObjectID keys, nested fields stored natively. Each operation runs under
// its own timeout on top of the caller's context.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jdoe/portfolio-backend/internal/models"
)

const mongoOpTimeout = 5 * time.Second

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to the MongoDB deployment at uri and pings it before
// returning.
func OpenMongo(ctx context.Context, uri, database string) (Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	if database == "" {
		database = "portfolio"
	}
	return &mongoStore{client: client, db: client.Database(database)}, nil
}

func (m *mongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, mongoOpTimeout)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

type aboutDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"image_url"`
	SocialLinks map[string]string  `bson:"social_links"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type resumeDoc struct {
	ID           primitive.ObjectID        `bson:"_id,omitempty"`
	PersonalInfo map[string]string         `bson:"personal_info"`
	Summary      string                    `bson:"summary"`
	Education    []models.Education        `bson:"education"`
	Experience   []models.ResumeExperience `bson:"experience"`
	PDFData      []byte                    `bson:"pdf_data,omitempty"`
	PDFFileName  string                    `bson:"pdf_file_name,omitempty"`
	ContentType  string                    `bson:"content_type,omitempty"`
	CreatedAt    time.Time                 `bson:"created_at"`
	UpdatedAt    time.Time                 `bson:"updated_at"`
}

type projectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	TechStack   []string           `bson:"tech_stack"`
	ImageURL    string             `bson:"image_url"`
	DemoURL     string             `bson:"demo_url,omitempty"`
	RepoURL     string             `bson:"repo_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type experienceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Role        string             `bson:"role"`
	Company     string             `bson:"company"`
	StartDate   string             `bson:"start_date"`
	EndDate     string             `bson:"end_date,omitempty"`
	Description []string           `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type certificateDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Organization  string             `bson:"organization"`
	Date          string             `bson:"date"`
	CredentialURL string             `bson:"credential_url,omitempty"`
	ImageURL      string             `bson:"image_url"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

type skillDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	CreatedAt time.Time          `bson:"created_at"`
}

type messageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"created_at"`
}

// --- About ---

func (m *mongoStore) About(ctx context.Context) (models.About, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var doc aboutDoc
	err := m.db.Collection("about").FindOne(ctx, bson.D{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return defaultAbout(), nil
	}
	if err != nil {
		return models.About{}, fmt.Errorf("fetching about: %w", err)
	}
	return aboutFromDoc(doc), nil
}

func (m *mongoStore) SaveAbout(ctx context.Context, about models.About) (models.About, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	coll := m.db.Collection("about")
	now := time.Now().UTC()

	var existing aboutDoc
	err := coll.FindOne(ctx, bson.D{}).Decode(&existing)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return models.About{}, fmt.Errorf("fetching about for upsert: %w", err)
	}

	doc := aboutDoc{
		Title:       about.Title,
		Description: about.Description,
		ImageURL:    about.ImageURL,
		SocialLinks: about.SocialLinks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if doc.SocialLinks == nil {
		doc.SocialLinks = map[string]string{}
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		result, err := coll.InsertOne(ctx, doc)
		if err != nil {
			return models.About{}, fmt.Errorf("creating about: %w", err)
		}
		doc.ID = result.InsertedID.(primitive.ObjectID)
	} else {
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
		if _, err := coll.ReplaceOne(ctx, bson.M{"_id": existing.ID}, doc); err != nil {
			return models.About{}, fmt.Errorf("updating about: %w", err)
		}
	}
	return aboutFromDoc(doc), nil
}

func aboutFromDoc(doc aboutDoc) models.About {
	links := doc.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	return models.About{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		ImageURL:    doc.ImageURL,
		SocialLinks: links,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// --- Resume ---

func (m *mongoStore) Resume(ctx context.Context) (models.Resume, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var doc resumeDoc
	err := m.db.Collection("resume").FindOne(ctx, bson.D{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return defaultResume(), nil
	}
	if err != nil {
		return models.Resume{}, fmt.Errorf("fetching resume: %w", err)
	}
	return resumeFromDoc(doc), nil
}

func (m *mongoStore) SaveResume(ctx context.Context, resume models.Resume) (models.Resume, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	coll := m.db.Collection("resume")
	now := time.Now().UTC()

	var existing resumeDoc
	err := coll.FindOne(ctx, bson.D{}).Decode(&existing)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Resume{}, fmt.Errorf("fetching resume for upsert: %w", err)
	}

	doc := resumeDoc{
		PersonalInfo: resume.PersonalInfo,
		Summary:      resume.Summary,
		Education:    resume.Education,
		Experience:   resume.Experience,
		PDFData:      resume.PDFData,
		PDFFileName:  resume.PDFFileName,
		ContentType:  resume.ContentType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if doc.PersonalInfo == nil {
		doc.PersonalInfo = map[string]string{}
	}
	if doc.Education == nil {
		doc.Education = []models.Education{}
	}
	if doc.Experience == nil {
		doc.Experience = []models.ResumeExperience{}
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		result, err := coll.InsertOne(ctx, doc)
		if err != nil {
			return models.Resume{}, fmt.Errorf("creating resume: %w", err)
		}
		doc.ID = result.InsertedID.(primitive.ObjectID)
	} else {
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
		if doc.PDFData == nil {
			doc.PDFData = existing.PDFData
			doc.PDFFileName = existing.PDFFileName
			doc.ContentType = existing.ContentType
		}
		if _, err := coll.ReplaceOne(ctx, bson.M{"_id": existing.ID}, doc); err != nil {
			return models.Resume{}, fmt.Errorf("updating resume: %w", err)
		}
	}
	return resumeFromDoc(doc), nil
}

func resumeFromDoc(doc resumeDoc) models.Resume {
	resume := models.Resume{
		ID:           doc.ID.Hex(),
		PersonalInfo: doc.PersonalInfo,
		Summary:      doc.Summary,
		Education:    doc.Education,
		Experience:   doc.Experience,
		PDFData:      doc.PDFData,
		PDFFileName:  doc.PDFFileName,
		ContentType:  doc.ContentType,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	normalizeResume(&resume)
	return resume
}

// --- Projects ---

func (m *mongoStore) Projects(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := m.db.Collection("projects").Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}
	var docs []projectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}
	projects := make([]models.Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, projectFromDoc(doc))
	}
	return projects, nil
}

func (m *mongoStore) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	now := time.Now().UTC()
	doc := projectDoc{
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		ImageURL:    p.ImageURL,
		DemoURL:     p.DemoURL,
		RepoURL:     p.RepoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if doc.TechStack == nil {
		doc.TechStack = []string{}
	}
	result, err := m.db.Collection("projects").InsertOne(ctx, doc)
	if err != nil {
		return models.Project{}, fmt.Errorf("creating project: %w", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return projectFromDoc(doc), nil
}

func (m *mongoStore) UpdateProject(ctx context.Context, p models.Project) (models.Project, error) {
	oid, err := parseObjectID(p.ID)
	if err != nil {
		return models.Project{}, err
	}
	ctx, cancel := opCtx(ctx)
	defer cancel()
	coll := m.db.Collection("projects")

	var existing projectDoc
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("fetching project %s: %w", p.ID, err)
	}
	doc := projectDoc{
		ID:          oid,
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		ImageURL:    p.ImageURL,
		DemoURL:     p.DemoURL,
		RepoURL:     p.RepoURL,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if doc.TechStack == nil {
		doc.TechStack = []string{}
	}
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return models.Project{}, fmt.Errorf("updating project %s: %w", p.ID, err)
	}
	return projectFromDoc(doc), nil
}

func (m *mongoStore) DeleteProject(ctx context.Context, id string) error {
	return m.deleteDoc(ctx, "projects", id)
}

func projectFromDoc(doc projectDoc) models.Project {
	tech := doc.TechStack
	if tech == nil {
		tech = []string{}
	}
	return models.Project{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		TechStack:   tech,
		ImageURL:    doc.ImageURL,
		DemoURL:     doc.DemoURL,
		RepoURL:     doc.RepoURL,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// --- Experience ---

func (m *mongoStore) Experiences(ctx context.Context) ([]models.Experience, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := m.db.Collection("experience").Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching experiences: %w", err)
	}
	var docs []experienceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding experiences: %w", err)
	}
	experiences := make([]models.Experience, 0, len(docs))
	for _, doc := range docs {
		experiences = append(experiences, experienceFromDoc(doc))
	}
	return experiences, nil
}

func (m *mongoStore) CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	now := time.Now().UTC()
	doc := experienceDoc{
		Role:        e.Role,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if doc.Description == nil {
		doc.Description = []string{}
	}
	result, err := m.db.Collection("experience").InsertOne(ctx, doc)
	if err != nil {
		return models.Experience{}, fmt.Errorf("creating experience: %w", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return experienceFromDoc(doc), nil
}

func (m *mongoStore) UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	oid, err := parseObjectID(e.ID)
	if err != nil {
		return models.Experience{}, err
	}
	ctx, cancel := opCtx(ctx)
	defer cancel()
	coll := m.db.Collection("experience")

	var existing experienceDoc
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Experience{}, ErrNotFound
		}
		return models.Experience{}, fmt.Errorf("fetching experience %s: %w", e.ID, err)
	}
	doc := experienceDoc{
		ID:          oid,
		Role:        e.Role,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if doc.Description == nil {
		doc.Description = []string{}
	}
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return models.Experience{}, fmt.Errorf("updating experience %s: %w", e.ID, err)
	}
	return experienceFromDoc(doc), nil
}

func (m *mongoStore) DeleteExperience(ctx context.Context, id string) error {
	return m.deleteDoc(ctx, "experience", id)
}

func experienceFromDoc(doc experienceDoc) models.Experience {
	description := doc.Description
	if description == nil {
		description = []string{}
	}
	return models.Experience{
		ID:          doc.ID.Hex(),
		Role:        doc.Role,
		Company:     doc.Company,
		StartDate:   doc.StartDate,
		EndDate:     doc.EndDate,
		Description: description,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// --- Certificates ---

func (m *mongoStore) Certificates(ctx context.Context) ([]models.Certificate, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := m.db.Collection("certificates").Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching certificates: %w", err)
	}
	var docs []certificateDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding certificates: %w", err)
	}
	certificates := make([]models.Certificate, 0, len(docs))
	for _, doc := range docs {
		certificates = append(certificates, certificateFromDoc(doc))
	}
	return certificates, nil
}

func (m *mongoStore) CreateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	now := time.Now().UTC()
	doc := certificateDoc{
		Title:         c.Title,
		Organization:  c.Organization,
		Date:          c.Date,
		CredentialURL: c.CredentialURL,
		ImageURL:      c.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	result, err := m.db.Collection("certificates").InsertOne(ctx, doc)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("creating certificate: %w", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return certificateFromDoc(doc), nil
}

func (m *mongoStore) UpdateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	oid, err := parseObjectID(c.ID)
	if err != nil {
		return models.Certificate{}, err
	}
	ctx, cancel := opCtx(ctx)
	defer cancel()
	coll := m.db.Collection("certificates")

	var existing certificateDoc
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Certificate{}, ErrNotFound
		}
		return models.Certificate{}, fmt.Errorf("fetching certificate %s: %w", c.ID, err)
	}
	doc := certificateDoc{
		ID:            oid,
		Title:         c.Title,
		Organization:  c.Organization,
		Date:          c.Date,
		CredentialURL: c.CredentialURL,
		ImageURL:      c.ImageURL,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return models.Certificate{}, fmt.Errorf("updating certificate %s: %w", c.ID, err)
	}
	return certificateFromDoc(doc), nil
}

func (m *mongoStore) DeleteCertificate(ctx context.Context, id string) error {
	return m.deleteDoc(ctx, "certificates", id)
}

func certificateFromDoc(doc certificateDoc) models.Certificate {
	return models.Certificate{
		ID:            doc.ID.Hex(),
		Title:         doc.Title,
		Organization:  doc.Organization,
		Date:          doc.Date,
		CredentialURL: doc.CredentialURL,
		ImageURL:      doc.ImageURL,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

// --- Skills ---

func (m *mongoStore) Skills(ctx context.Context) ([]models.Skill, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := m.db.Collection("skills").Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching skills: %w", err)
	}
	var docs []skillDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding skills: %w", err)
	}
	skills := make([]models.Skill, 0, len(docs))
	for _, doc := range docs {
		skills = append(skills, skillFromDoc(doc))
	}
	return skills, nil
}

func (m *mongoStore) CreateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	doc := skillDoc{Name: s.Name, Category: s.Category, CreatedAt: time.Now().UTC()}
	result, err := m.db.Collection("skills").InsertOne(ctx, doc)
	if err != nil {
		return models.Skill{}, fmt.Errorf("creating skill: %w", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return skillFromDoc(doc), nil
}

func (m *mongoStore) UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	oid, err := parseObjectID(s.ID)
	if err != nil {
		return models.Skill{}, err
	}
	ctx, cancel := opCtx(ctx)
	defer cancel()
	coll := m.db.Collection("skills")

	var existing skillDoc
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Skill{}, ErrNotFound
		}
		return models.Skill{}, fmt.Errorf("fetching skill %s: %w", s.ID, err)
	}
	doc := skillDoc{ID: oid, Name: s.Name, Category: s.Category, CreatedAt: existing.CreatedAt}
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return models.Skill{}, fmt.Errorf("updating skill %s: %w", s.ID, err)
	}
	return skillFromDoc(doc), nil
}

func (m *mongoStore) DeleteSkill(ctx context.Context, id string) error {
	return m.deleteDoc(ctx, "skills", id)
}

func skillFromDoc(doc skillDoc) models.Skill {
	return models.Skill{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Category:  doc.Category,
		CreatedAt: doc.CreatedAt,
	}
}

// --- Contact messages ---

func (m *mongoStore) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := m.db.Collection("contact").Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	var docs []messageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding messages: %w", err)
	}
	messages := make([]models.ContactMessage, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, messageFromDoc(doc))
	}
	return messages, nil
}

func (m *mongoStore) CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	doc := messageDoc{
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Message:   msg.Message,
		CreatedAt: time.Now().UTC(),
	}
	result, err := m.db.Collection("contact").InsertOne(ctx, doc)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("creating message: %w", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return messageFromDoc(doc), nil
}

func (m *mongoStore) DeleteMessage(ctx context.Context, id string) error {
	return m.deleteDoc(ctx, "contact", id)
}

func messageFromDoc(doc messageDoc) models.ContactMessage {
	return models.ContactMessage{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Message:   doc.Message,
		CreatedAt: doc.CreatedAt,
	}
}

// deleteDoc removes one document from the named collection by identifier.
func (m *mongoStore) deleteDoc(ctx context.Context, collection, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	ctx, cancel := opCtx(ctx)
	defer cancel()
	result, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", collection, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
