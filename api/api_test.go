package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sandeeph2706/portfolio-backend/database"
	"github.com/sandeeph2706/portfolio-backend/models"
	"github.com/sandeeph2706/portfolio-backend/seed"
	"github.com/sandeeph2706/portfolio-backend/tracker"
)

// newTestServer builds a router over a freshly seeded sqlite database
func newTestServer(t *testing.T) (*gorm.DB, database.Database, *chi.Mux) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	fixtures, err := seed.Load("")
	if err != nil {
		t.Fatalf("Failed to load seed fixtures: %v", err)
	}
	if err := seed.Run(db, fixtures, zerolog.Nop()); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	d := database.New(db)
	return db, d, NewRouter(d, nil)
}

func doGet(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetProjectsOnlyFeatured(t *testing.T) {
	db, _, router := newTestServer(t)

	// Add a non-featured project alongside the seeded featured ones
	hidden := models.Project{Title: "Hidden", Description: "d", Technologies: "Go", Featured: false}
	if err := db.Create(&hidden).Error; err != nil {
		t.Fatalf("Failed to insert project: %v", err)
	}

	rec := doGet(t, router, "/api/projects")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var response ProjectListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(response.Projects) != 4 {
		t.Fatalf("Expected the 4 seeded featured projects, got %d", len(response.Projects))
	}
	for _, p := range response.Projects {
		if p.Title == "Hidden" {
			t.Error("Non-featured project leaked into /api/projects")
		}
	}

	want := []string{"Flask", "Python", "SQLAlchemy", "PostgreSQL", "Bootstrap", "Cloud Run"}
	first := response.Projects[0]
	if len(first.Technologies) != len(want) {
		t.Fatalf("Expected %d technology tags, got %d", len(want), len(first.Technologies))
	}
	for i := range want {
		if first.Technologies[i] != want[i] {
			t.Errorf("Tag %d: expected %q, got %q", i, want[i], first.Technologies[i])
		}
	}
}

func TestGetCourses(t *testing.T) {
	_, _, router := newTestServer(t)

	rec := doGet(t, router, "/api/courses")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var courses []CourseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &courses); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(courses) != 4 {
		t.Fatalf("Expected 4 courses, got %d", len(courses))
	}
	for _, c := range courses {
		if c.Institution == "" {
			t.Errorf("Course %q missing institution", c.Title)
		}
	}
}

func TestGetCertificationsSorted(t *testing.T) {
	db, _, router := newTestServer(t)

	older := models.Certification{Title: "Old Cert", Issuer: "X", DateEarned: "2023"}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("Failed to insert certification: %v", err)
	}

	rec := doGet(t, router, "/api/certifications")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var certs []CertificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &certs); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(certs) != 7 {
		t.Fatalf("Expected 7 certifications, got %d", len(certs))
	}
	for i := 1; i < len(certs); i++ {
		if certs[i].DateEarned > certs[i-1].DateEarned {
			t.Errorf("Certifications not sorted by date_earned descending at position %d", i)
		}
	}
	if certs[len(certs)-1].Title != "Old Cert" {
		t.Errorf("Expected the 2023 certification last, got %q", certs[len(certs)-1].Title)
	}
}

func TestGetSkillsGrouping(t *testing.T) {
	db, _, router := newTestServer(t)

	rec := doGet(t, router, "/api/skills")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var grouped map[string][]SkillEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &grouped); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	total := 0
	for category, skills := range grouped {
		total += len(skills)
		for i := 1; i < len(skills); i++ {
			if skills[i].Proficiency > skills[i-1].Proficiency {
				t.Errorf("Category %q not sorted by proficiency descending", category)
			}
		}
	}

	var skillCount int64
	if err := db.Model(&models.Skill{}).Count(&skillCount).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if int64(total) != skillCount {
		t.Errorf("Grouped lists hold %d skills, table holds %d", total, skillCount)
	}
}

func TestPostContactSuccess(t *testing.T) {
	db, _, router := newTestServer(t)

	payload := ContactRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hello",
		Message: "Great portfolio!",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response ContactResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Success {
		t.Errorf("Expected success true, got false: %s", response.Message)
	}

	var count int64
	if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 contact row, got %d", count)
	}
}

func TestPostContactMissingFields(t *testing.T) {
	db, _, router := newTestServer(t)

	cases := []ContactRequest{
		{Email: "a@b.c", Subject: "s", Message: "m"},
		{Name: "n", Subject: "s", Message: "m"},
		{Name: "n", Email: "a@b.c", Message: "m"},
		{Name: "n", Email: "a@b.c", Subject: "s"},
	}

	for _, payload := range cases {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for incomplete payload, got %d", rec.Code)
		}

		var response ContactResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Success {
			t.Error("Expected success false for incomplete payload")
		}
	}

	var count int64
	if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Incomplete payloads must not create rows, found %d", count)
	}
}

func TestPostContactMissingFieldsMessage(t *testing.T) {
	_, _, router := newTestServer(t)

	payload := ContactRequest{Name: "n", Message: "m"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var response ContactResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Message != "Missing required fields: email, subject" {
		t.Errorf("Unexpected rejection message: %q", response.Message)
	}
}

func TestPostContactMalformedBody(t *testing.T) {
	_, _, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestGetStats(t *testing.T) {
	db, _, router := newTestServer(t)

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		visitor := models.Visitor{
			IPAddress:   "10.0.0.1",
			PageVisited: "home",
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&visitor).Error; err != nil {
			t.Fatalf("Failed to insert visitor: %v", err)
		}
	}

	rec := doGet(t, router, "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var stats StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if stats.TotalVisitors != 12 {
		t.Errorf("Expected 12 total visitors, got %d", stats.TotalVisitors)
	}
	if stats.TotalMessages != 0 {
		t.Errorf("Expected 0 total messages, got %d", stats.TotalMessages)
	}
	if len(stats.RecentVisitors) != 10 {
		t.Fatalf("Expected 10 recent visitors, got %d", len(stats.RecentVisitors))
	}
	for i := 1; i < len(stats.RecentVisitors); i++ {
		if stats.RecentVisitors[i].Timestamp > stats.RecentVisitors[i-1].Timestamp {
			t.Errorf("Recent visitors not newest first at position %d", i)
		}
	}
}

func TestHomeTracksVisit(t *testing.T) {
	db, d, _ := newTestServer(t)

	visitTracker := tracker.New(d.VisitorRepo(), 16)
	router := NewRouter(d, visitTracker)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:51234"
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from home page, got %d", rec.Code)
	}

	// Drain the queue before asserting on the visit log
	visitTracker.Close()

	var visitors []models.Visitor
	if err := db.Find(&visitors).Error; err != nil {
		t.Fatalf("Failed to fetch visitors: %v", err)
	}
	if len(visitors) != 1 {
		t.Fatalf("Expected 1 tracked visit, got %d", len(visitors))
	}
	if visitors[0].IPAddress != "192.0.2.7" {
		t.Errorf("Expected tracked IP 192.0.2.7, got %s", visitors[0].IPAddress)
	}
	if visitors[0].UserAgent != "test-agent" {
		t.Errorf("Expected tracked user agent, got %q", visitors[0].UserAgent)
	}
	if visitors[0].PageVisited != "home" {
		t.Errorf("Expected page_visited home, got %q", visitors[0].PageVisited)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	_, _, router := newTestServer(t)

	rec := doGet(t, router, "/static/style.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for embedded asset, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("Expected non-empty stylesheet body")
	}
}

func TestStaticPageUnknownName(t *testing.T) {
	_, d, _ := newTestServer(t)

	h := newPagesHandler(d.ContactRepo(), d.VisitorRepo(), nil)
	req := httptest.NewRequest(http.MethodGet, "/missing.html", nil)
	rec := httptest.NewRecorder()
	h.staticPage("missing.html")(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown page, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	_, _, router := newTestServer(t)

	rec := doGet(t, router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("Unexpected health body: %s", rec.Body.String())
	}
}
