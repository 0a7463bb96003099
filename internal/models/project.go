package models

import "time"

// ProjectStatus is an open string enum; unknown values collapse to StatusActive.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "Active"
	StatusOnHold    ProjectStatus = "On Hold"
	StatusCompleted ProjectStatus = "Completed"
)

// NormalizeStatus maps arbitrary input to a known status, defaulting to Active.
func NormalizeStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case StatusActive, StatusOnHold, StatusCompleted:
		return ProjectStatus(s)
	default:
		return StatusActive
	}
}

type Project struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	OwnerID uint   `gorm:"not null;index"`
	Title   string `gorm:"not null"`

	Description      string
	TechStack        string // comma-separated tags
	FeatureChecklist string // newline-separated items
	DeploymentURL    string
	Status           ProjectStatus `gorm:"not null"`
	IsPublic         bool

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
