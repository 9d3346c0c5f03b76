// Package store provides durable keyed storage for every portfolio entity.
//
// Three backends implement the same Store interface, reflecting the
// project's storage history: JSON files on disk, MongoDB collections, and
// the current sqlite database behind gorm. Callers pick one at startup and
// never see the difference.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jdoe/portfolio-backend/internal/models"
)

var (
	// ErrNotFound is returned when an update or delete targets an
	// identifier that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID is returned when an identifier does not parse as the
	// backend's native key type.
	ErrInvalidID = errors.New("invalid record id")
)

// Store is the persistence contract shared by all backends.
//
// About and Resume are singletons: the getters return a default-shaped
// record (never an error) when nothing is stored, and the save operations
// upsert. Two concurrent singleton saves with no prior record race on
// creation; last writer wins and that is acceptable for this data.
//
// All other entities are independent records. Updates and deletes of an
// unknown identifier return ErrNotFound and leave the store unchanged.
type Store interface {
	About(ctx context.Context) (models.About, error)
	SaveAbout(ctx context.Context, about models.About) (models.About, error)

	Resume(ctx context.Context) (models.Resume, error)
	SaveResume(ctx context.Context, resume models.Resume) (models.Resume, error)

	Projects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, p models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	Experiences(ctx context.Context) ([]models.Experience, error)
	CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error)
	UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	Certificates(ctx context.Context) ([]models.Certificate, error)
	CreateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error)
	UpdateCertificate(ctx context.Context, c models.Certificate) (models.Certificate, error)
	DeleteCertificate(ctx context.Context, id string) error

	Skills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, s models.Skill) (models.Skill, error)
	UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	Messages(ctx context.Context) ([]models.ContactMessage, error)
	CreateMessage(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error

	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend       string // "sqlite", "file" or "mongo"
	SQLitePath    string
	DataDir       string
	MongoURI      string
	MongoDatabase string
}

// Open builds the backend named in opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "sqlite", "":
		return OpenGorm(opts.SQLitePath)
	case "file":
		return OpenFile(opts.DataDir)
	case "mongo":
		return OpenMongo(ctx, opts.MongoURI, opts.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
