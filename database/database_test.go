package database

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/sandeeph2706/portfolio-backend/models"
)

// newTestDB initializes a migrated sqlite database in a temporary location
func newTestDB(t *testing.T) (*gorm.DB, Database) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db, New(db)
}

func TestProjectRepoFindFeatured(t *testing.T) {
	db, d := newTestDB(t)

	projects := []models.Project{
		{Title: "Featured One", Description: "d", Technologies: "Go,Postgres", Featured: true},
		{Title: "Hidden", Description: "d", Technologies: "C", Featured: false},
		{Title: "Featured Two", Description: "d", Technologies: "Python", Featured: true},
	}
	if err := db.Create(&projects).Error; err != nil {
		t.Fatalf("Failed to insert projects: %v", err)
	}

	featured, err := d.ProjectRepo().FindFeatured()
	if err != nil {
		t.Fatalf("FindFeatured failed: %v", err)
	}

	if len(featured) != 2 {
		t.Fatalf("Expected 2 featured projects, got %d", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("Project %q returned despite featured == false", p.Title)
		}
	}
	if featured[0].Title != "Featured One" || featured[1].Title != "Featured Two" {
		t.Errorf("Expected insertion order, got %q then %q", featured[0].Title, featured[1].Title)
	}
}

func TestCertificationRepoStringSort(t *testing.T) {
	db, d := newTestDB(t)

	certs := []models.Certification{
		{Title: "Older", Issuer: "A", DateEarned: "2023"},
		{Title: "Newest", Issuer: "B", DateEarned: "2024"},
		{Title: "Oldest", Issuer: "C", DateEarned: "2022"},
	}
	if err := db.Create(&certs).Error; err != nil {
		t.Fatalf("Failed to insert certifications: %v", err)
	}

	sorted, err := d.CertificationRepo().FindAllByDateEarnedDesc()
	if err != nil {
		t.Fatalf("FindAllByDateEarnedDesc failed: %v", err)
	}

	want := []string{"2024", "2023", "2022"}
	if len(sorted) != len(want) {
		t.Fatalf("Expected %d certifications, got %d", len(want), len(sorted))
	}
	for i, c := range sorted {
		if c.DateEarned != want[i] {
			t.Errorf("Position %d: expected date_earned %s, got %s", i, want[i], c.DateEarned)
		}
	}
}

func TestSkillRepoOrdering(t *testing.T) {
	db, d := newTestDB(t)

	skills := []models.Skill{
		{Name: "Python", Category: "Languages", Proficiency: 90},
		{Name: "Docker", Category: "Tools", Proficiency: 65},
		{Name: "C", Category: "Languages", Proficiency: 75},
		{Name: "Git", Category: "Tools", Proficiency: 85},
	}
	if err := db.Create(&skills).Error; err != nil {
		t.Fatalf("Failed to insert skills: %v", err)
	}

	ordered, err := d.SkillRepo().FindAllOrdered()
	if err != nil {
		t.Fatalf("FindAllOrdered failed: %v", err)
	}

	if len(ordered) != 4 {
		t.Fatalf("Expected 4 skills, got %d", len(ordered))
	}

	// Categories ascending, proficiency descending within each
	wantNames := []string{"Python", "C", "Git", "Docker"}
	for i, s := range ordered {
		if s.Name != wantNames[i] {
			t.Errorf("Position %d: expected %s, got %s", i, wantNames[i], s.Name)
		}
	}
}

func TestVisitorRepoRecent(t *testing.T) {
	db, d := newTestDB(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		visitor := models.Visitor{
			IPAddress:   "10.0.0.1",
			PageVisited: "home",
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&visitor).Error; err != nil {
			t.Fatalf("Failed to insert visitor %d: %v", i, err)
		}
	}

	recent, err := d.VisitorRepo().FindRecent(10)
	if err != nil {
		t.Fatalf("FindRecent failed: %v", err)
	}

	if len(recent) != 10 {
		t.Fatalf("Expected 10 recent visitors, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Timestamp.After(recent[i-1].Timestamp) {
			t.Errorf("Recent visitors not ordered newest first at position %d", i)
		}
	}

	count, err := d.VisitorRepo().Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 12 {
		t.Errorf("Expected 12 visitors total, got %d", count)
	}
}

func TestContactRepoAddAndList(t *testing.T) {
	_, d := newTestDB(t)

	first := models.Contact{
		Name: "Alice", Email: "alice@example.com", Subject: "Hi", Message: "First",
		Timestamp: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	second := models.Contact{
		Name: "Bob", Email: "bob@example.com", Subject: "Hello", Message: "Second",
		Timestamp: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	if err := d.ContactRepo().Add(&first); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := d.ContactRepo().Add(&second); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	contacts, err := d.ContactRepo().FindAllNewestFirst()
	if err != nil {
		t.Fatalf("FindAllNewestFirst failed: %v", err)
	}

	if len(contacts) != 2 {
		t.Fatalf("Expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Name != "Bob" {
		t.Errorf("Expected newest contact first, got %s", contacts[0].Name)
	}

	count, err := d.ContactRepo().Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}
