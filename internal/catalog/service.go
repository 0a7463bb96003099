package catalog

import (
	"errors"
	"strings"

	"github.com/devshelf/devshelf/internal/models"
	"github.com/devshelf/devshelf/internal/repository"
)

var (
	// ErrTitleRequired is returned when a project title is empty after trimming.
	ErrTitleRequired = errors.New("project title is required")
	// ErrNotOwner is returned when the acting user does not own the target project.
	// The HTTP boundary renders it identically to repository.ErrNotFound so a
	// non-owner cannot probe whether an id exists.
	ErrNotOwner = errors.New("not the project owner")
)

// ProjectFields carries the submitted attributes for a create.
type ProjectFields struct {
	Title            string
	Description      string
	TechStack        string
	FeatureChecklist string
	DeploymentURL    string
	Status           string
	IsPublic         bool
}

// ProjectUpdate carries a partial update for an edit. Nil fields retain the
// project's previous value.
type ProjectUpdate struct {
	Title            *string
	Description      *string
	TechStack        *string
	FeatureChecklist *string
	DeploymentURL    *string
	Status           *string
	IsPublic         *bool
}

// Service owns project records scoped to an owning user.
type Service struct {
	projects repository.ProjectRepository
}

func NewService(projects repository.ProjectRepository) *Service {
	return &Service{projects: projects}
}

// List returns the owner's projects, most recently created first.
func (s *Service) List(ownerID uint) ([]models.Project, error) {
	return s.projects.ListByOwner(ownerID)
}

// Recent returns at most limit of the owner's newest projects, for the dashboard.
func (s *Service) Recent(ownerID uint, limit int) ([]models.Project, error) {
	return s.projects.ListRecentByOwner(ownerID, limit)
}

// Create persists a new project bound to ownerID. Textual fields are trimmed and
// an unknown or omitted status falls back to the default.
func (s *Service) Create(ownerID uint, fields ProjectFields) (*models.Project, error) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	project := &models.Project{
		OwnerID:          ownerID,
		Title:            title,
		Description:      strings.TrimSpace(fields.Description),
		TechStack:        strings.TrimSpace(fields.TechStack),
		FeatureChecklist: strings.TrimSpace(fields.FeatureChecklist),
		DeploymentURL:    strings.TrimSpace(fields.DeploymentURL),
		Status:           models.NormalizeStatus(fields.Status),
		IsPublic:         fields.IsPublic,
	}

	if err := s.projects.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Get returns a project by id regardless of owner. Callers enforcing ownership
// go through GetOwned.
func (s *Service) Get(id uint) (*models.Project, error) {
	return s.projects.GetByID(id)
}

// GetOwned returns the project only when it belongs to ownerID.
func (s *Service) GetOwned(ownerID, id uint) (*models.Project, error) {
	project, err := s.projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return project, nil
}

// Edit applies a partial update to one of the owner's projects and refreshes
// its updated_at timestamp.
func (s *Service) Edit(ownerID, id uint, update ProjectUpdate) (*models.Project, error) {
	project, err := s.GetOwned(ownerID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		project.Title = title
	}
	if update.Description != nil {
		project.Description = strings.TrimSpace(*update.Description)
	}
	if update.TechStack != nil {
		project.TechStack = strings.TrimSpace(*update.TechStack)
	}
	if update.FeatureChecklist != nil {
		project.FeatureChecklist = strings.TrimSpace(*update.FeatureChecklist)
	}
	if update.DeploymentURL != nil {
		project.DeploymentURL = strings.TrimSpace(*update.DeploymentURL)
	}
	if update.Status != nil {
		project.Status = models.NormalizeStatus(*update.Status)
	}
	if update.IsPublic != nil {
		project.IsPublic = *update.IsPublic
	}

	if err := s.projects.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete permanently removes one of the owner's projects.
func (s *Service) Delete(ownerID, id uint) error {
	if _, err := s.GetOwned(ownerID, id); err != nil {
		return err
	}
	return s.projects.Delete(id)
}
