package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	_ "embed"

	"github.com/sandeeph2706/portfolio-backend/models"
)

//go:embed seeds.yaml
var defaultSeedData []byte

// Fixtures holds the reference data inserted into empty tables at
// startup. The content is configuration, not logic: it ships as an
// embedded YAML document and can be replaced wholesale with SEED_FILE.
type Fixtures struct {
	Projects       []ProjectFixture       `yaml:"projects"`
	Skills         []SkillFixture         `yaml:"skills"`
	Certifications []CertificationFixture `yaml:"certifications"`
	Courses        []CourseFixture        `yaml:"courses"`
}

type ProjectFixture struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Technologies string `yaml:"technologies"`
	GithubURL    string `yaml:"github_url"`
	LiveURL      string `yaml:"live_url"`
	ImageURL     string `yaml:"image_url"`
	Featured     bool   `yaml:"featured"`
}

type SkillFixture struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Proficiency int    `yaml:"proficiency"`
}

type CertificationFixture struct {
	Title          string `yaml:"title"`
	Issuer         string `yaml:"issuer"`
	DateEarned     string `yaml:"date_earned"`
	CredentialID   string `yaml:"credential_id"`
	Description    string `yaml:"description"`
	CertificateURL string `yaml:"certificate_url"`
}

type CourseFixture struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"`
	Institution string `yaml:"institution"`
	Description string `yaml:"description"`
}

// Load parses seed fixtures from path, or from the embedded default
// document when path is empty.
func Load(path string) (Fixtures, error) {
	data := defaultSeedData
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return Fixtures{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
		}
		data = fileData
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}
	return fixtures, nil
}

func (f Fixtures) projects() []models.Project {
	projects := make([]models.Project, 0, len(f.Projects))
	for _, p := range f.Projects {
		projects = append(projects, models.Project{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			GithubURL:    p.GithubURL,
			LiveURL:      p.LiveURL,
			ImageURL:     p.ImageURL,
			Featured:     p.Featured,
		})
	}
	return projects
}

func (f Fixtures) skills() []models.Skill {
	skills := make([]models.Skill, 0, len(f.Skills))
	for _, s := range f.Skills {
		skills = append(skills, models.Skill{
			Name:        s.Name,
			Category:    s.Category,
			Proficiency: s.Proficiency,
		})
	}
	return skills
}

func (f Fixtures) certifications() []models.Certification {
	certs := make([]models.Certification, 0, len(f.Certifications))
	for _, c := range f.Certifications {
		certs = append(certs, models.Certification{
			Title:          c.Title,
			Issuer:         c.Issuer,
			DateEarned:     c.DateEarned,
			CredentialID:   c.CredentialID,
			Description:    c.Description,
			CertificateURL: c.CertificateURL,
		})
	}
	return certs
}

func (f Fixtures) courses() []models.Course {
	courses := make([]models.Course, 0, len(f.Courses))
	for _, c := range f.Courses {
		course := models.Course{
			Title:       c.Title,
			Category:    c.Category,
			Status:      c.Status,
			Institution: c.Institution,
			Description: c.Description,
		}
		if course.Status == "" {
			course.Status = "Current Course"
		}
		if course.Institution == "" {
			course.Institution = "IIT Madras"
		}
		courses = append(courses, course)
	}
	return courses
}
