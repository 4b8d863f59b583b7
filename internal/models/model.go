// Package models implements the persisted resources of the expense tracker.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
//
// DeletedAt doubles as the soft delete flag: gorm excludes soft deleted
// rows from all queries unless Unscoped is used, which is exactly the
// "active transactions only" default the aggregations rely on.
type DefaultModel struct {
	ID        uuid.UUID      `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	CreatedAt time.Time      `json:"createdAt" example:"2026-02-02T19:28:44.491514Z"`   // Time the resource was created
	UpdatedAt time.Time      `json:"updatedAt" example:"2026-02-17T20:14:01.048145Z"`   // Last time the resource was updated
	DeletedAt gorm.DeletedAt `json:"deletedAt" gorm:"index" swaggertype:"primitive,string"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt.Valid {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate generates a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
