// models.go holds the canonical record shapes served by the API.
package models

import "time"

// About is a singleton: at most one record ever exists.
type About struct {
	ID          string            `json:"id,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl"`
	SocialLinks map[string]string `json:"socialLinks"`
	CreatedAt   time.Time         `json:"createdAt,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt,omitempty"`
}

// Education is one entry in a resume's education history. Entries are
// value objects: they carry no identifier of their own and are always
// replaced wholesale with the resume that owns them.
type Education struct {
	Degree     string   `json:"degree"`
	University string   `json:"university"`
	Year       string   `json:"year"`
	Courses    []string `json:"courses"`
}

// ResumeExperience is one entry in a resume's work history. Distinct from
// Experience below, which is its own entity backing the experience page.
type ResumeExperience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

// Resume is a singleton. The PDF payload is stored inline with the record
// and never serialized into JSON responses; clients fetch it through the
// download endpoint instead.
type Resume struct {
	ID           string             `json:"id,omitempty"`
	PersonalInfo map[string]string  `json:"personalInfo"`
	Summary      string             `json:"summary"`
	Education    []Education        `json:"education"`
	Experience   []ResumeExperience `json:"experience"`
	PDFData      []byte             `json:"-"`
	PDFFileName  string             `json:"pdfFileName,omitempty"`
	ContentType  string             `json:"contentType,omitempty"`
	CreatedAt    time.Time          `json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty"`
}

type Project struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"techStack"`
	ImageURL    string    `json:"imageUrl"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	RepoURL     string    `json:"repoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Experience backs the public experience page. An empty EndDate means the
// role is current.
type Experience struct {
	ID          string    `json:"id,omitempty"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate,omitempty"`
	Description []string  `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Certificate struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Organization  string    `json:"organization"`
	Date          string    `json:"date"`
	CredentialURL string    `json:"credentialUrl,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// Skill is one name/category pair per record.
type Skill struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ContactMessage is append-only: created by visitors, read and deleted by
// the admin, never updated.
type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
