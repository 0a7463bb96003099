package catalog

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/devshelf/devshelf/internal/models"
	"github.com/devshelf/devshelf/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	handle, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := handle.AutoMigrate(&models.User{}, &models.Project{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewService(repository.NewProjectRepository(handle)), handle
}

func seedUser(t *testing.T, handle *gorm.DB, email string) uint {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "x"}
	if err := handle.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestCreateTrimsAndDefaults(t *testing.T) {
	svc, handle := newTestService(t)
	owner := seedUser(t, handle, "alice@example.com")

	project, err := svc.Create(owner, ProjectFields{
		Title:       "  Blog  ",
		Description: " my blog ",
		TechStack:   " Go,React ",
		Status:      "something weird",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if project.Title != "Blog" {
		t.Fatalf("expected trimmed title, got %q", project.Title)
	}
	if project.Description != "my blog" || project.TechStack != "Go,React" {
		t.Fatalf("expected trimmed fields, got %q / %q", project.Description, project.TechStack)
	}
	if project.Status != models.StatusActive {
		t.Fatalf("expected default status, got %q", project.Status)
	}
	if project.OwnerID != owner {
		t.Fatalf("expected owner %d, got %d", owner, project.OwnerID)
	}
	if project.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
	if project.UpdatedAt.Before(project.CreatedAt) || project.UpdatedAt.Sub(project.CreatedAt) > time.Second {
		t.Fatalf("expected created_at == updated_at, got %v / %v", project.CreatedAt, project.UpdatedAt)
	}
}

func TestCreateEmptyTitle(t *testing.T) {
	svc, handle := newTestService(t)
	owner := seedUser(t, handle, "alice@example.com")

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(owner, ProjectFields{Title: title}); !errors.Is(err, ErrTitleRequired) {
			t.Fatalf("Create(%q): expected ErrTitleRequired, got %v", title, err)
		}
	}

	var count int64
	if err := handle.Model(&models.Project{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no persisted rows, got %d", count)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, handle := newTestService(t)
	owner := seedUser(t, handle, "alice@example.com")

	created, err := svc.Create(owner, ProjectFields{
		Title:            "Blog",
		Description:      "posts",
		TechStack:        "Go,React",
		FeatureChecklist: "rss\ncomments",
		DeploymentURL:    "https://blog.example.com",
		Status:           "On Hold",
		IsPublic:         true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Title != "Blog" || got.Description != "posts" || got.TechStack != "Go,React" ||
		got.FeatureChecklist != "rss\ncomments" || got.DeploymentURL != "https://blog.example.com" ||
		got.Status != models.StatusOnHold || !got.IsPublic {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestListScopedToOwnerAndOrdered(t *testing.T) {
	svc, handle := newTestService(t)
	alice := seedUser(t, handle, "alice@example.com")
	bob := seedUser(t, handle, "bob@example.com")

	titles := []string{"first", "second", "third"}
	for i, title := range titles {
		project, err := svc.Create(alice, ProjectFields{Title: title})
		if err != nil {
			t.Fatalf("Create(%q): %v", title, err)
		}
		// Spread creation times so the DESC ordering is unambiguous.
		createdAt := time.Now().Add(time.Duration(i-len(titles)) * time.Minute)
		if err := handle.Model(project).Update("created_at", createdAt).Error; err != nil {
			t.Fatalf("set created_at: %v", err)
		}
	}
	if _, err := svc.Create(bob, ProjectFields{Title: "bobs"}); err != nil {
		t.Fatalf("Create bob: %v", err)
	}

	projects, err := svc.List(alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	for _, p := range projects {
		if p.OwnerID != alice {
			t.Fatalf("List leaked project owned by %d", p.OwnerID)
		}
	}
	for i := 1; i < len(projects); i++ {
		if projects[i].CreatedAt.After(projects[i-1].CreatedAt) {
			t.Fatalf("expected created_at DESC order, got %v before %v",
				projects[i-1].CreatedAt, projects[i].CreatedAt)
		}
	}

	recent, err := svc.Recent(alice, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent projects, got %d", len(recent))
	}
	if recent[0].Title != "third" {
		t.Fatalf("expected newest first, got %q", recent[0].Title)
	}
}

func strPtr(s string) *string { return &s }

func TestEditPartialUpdate(t *testing.T) {
	svc, handle := newTestService(t)
	owner := seedUser(t, handle, "alice@example.com")

	created, err := svc.Create(owner, ProjectFields{
		Title:       "Blog",
		Description: "posts",
		TechStack:   "Go,React",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	time.Sleep(25 * time.Millisecond)

	edited, err := svc.Edit(owner, created.ID, ProjectUpdate{
		Status:      strPtr("Completed"),
		Description: strPtr(" shipped "),
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if edited.Status != models.StatusCompleted {
		t.Fatalf("expected status Completed, got %q", edited.Status)
	}
	if edited.Description != "shipped" {
		t.Fatalf("expected trimmed description, got %q", edited.Description)
	}
	if edited.Title != "Blog" || edited.TechStack != "Go,React" {
		t.Fatalf("omitted fields changed: %+v", edited)
	}
	if !edited.UpdatedAt.After(created.CreatedAt) {
		t.Fatalf("expected updated_at to advance: %v vs %v", edited.UpdatedAt, created.CreatedAt)
	}
}

func TestEditEmptyTitleRejected(t *testing.T) {
	svc, handle := newTestService(t)
	owner := seedUser(t, handle, "alice@example.com")

	created, err := svc.Create(owner, ProjectFields{Title: "Blog"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Edit(owner, created.ID, ProjectUpdate{Title: strPtr("   ")}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Blog" {
		t.Fatalf("title mutated by rejected edit: %q", got.Title)
	}
}

func TestEditAndDeleteByNonOwner(t *testing.T) {
	svc, handle := newTestService(t)
	alice := seedUser(t, handle, "alice@example.com")
	mallory := seedUser(t, handle, "mallory@example.com")

	created, err := svc.Create(alice, ProjectFields{Title: "Blog", Description: "posts"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Edit(mallory, created.ID, ProjectUpdate{Title: strPtr("stolen")}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Edit: expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(mallory, created.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Delete: expected ErrNotOwner, got %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Blog" || got.Description != "posts" {
		t.Fatalf("row mutated by non-owner: %+v", got)
	}
}

func TestDeleteByOwner(t *testing.T) {
	svc, handle := newTestService(t)
	owner := seedUser(t, handle, "alice@example.com")

	created, err := svc.Create(owner, ProjectFields{Title: "Blog"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(owner, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.Delete(owner, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}
