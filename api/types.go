package api

import (
	"bytes"
	"encoding/json"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pagesHandler     pagesHandler
	portfolioHandler portfolioHandler
	contactHandler   contactHandler
	statsHandler     statsHandler
}

// ProjectResponse is the public shape of one featured project, with the
// stored comma-joined technologies string split into tags.
type ProjectResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"github_url"`
	LiveURL      string   `json:"live_url"`
	ImageURL     string   `json:"image_url"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type CourseResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Institution string `json:"institution"`
	Description string `json:"description"`
}

type CertificationResponse struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Issuer         string `json:"issuer"`
	DateEarned     string `json:"date_earned"`
	CredentialID   string `json:"credential_id"`
	Description    string `json:"description"`
	CertificateURL string `json:"certificate_url"`
}

type SkillEntry struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

// SkillsByCategory maps category names to their skills, keeping the
// categories in the order their first skill was encountered.
// encoding/json sorts plain map keys, so it marshals itself.
type SkillsByCategory struct {
	order  []string
	groups map[string][]SkillEntry
}

func NewSkillsByCategory() *SkillsByCategory {
	return &SkillsByCategory{groups: make(map[string][]SkillEntry)}
}

// Add appends a skill to its category, registering the category on
// first sight.
func (s *SkillsByCategory) Add(category string, entry SkillEntry) {
	if _, seen := s.groups[category]; !seen {
		s.order = append(s.order, category)
	}
	s.groups[category] = append(s.groups[category], entry)
}

// Get returns the skills recorded for a category.
func (s *SkillsByCategory) Get(category string) []SkillEntry {
	return s.groups[category]
}

// Categories returns the category names in first-encounter order.
func (s *SkillsByCategory) Categories() []string {
	return s.order
}

func (s *SkillsByCategory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(s.groups[category])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type RecentVisitor struct {
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
	Page      string `json:"page"`
}

type StatsResponse struct {
	TotalVisitors  int64           `json:"total_visitors"`
	TotalMessages  int64           `json:"total_messages"`
	RecentVisitors []RecentVisitor `json:"recent_visitors"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
