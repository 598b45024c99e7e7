package models

import (
	"time"

	"gorm.io/gorm"
)

// Lifecycle is the shared envelope carried by every catalog entity.
// Soft deletion flips IsActive and stamps DeletedAt in a single-record
// update; rows are never physically removed through the public API.
type Lifecycle struct {
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:true;index"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// BeforeCreate ensures new records always start active. The hook is
// promoted to every model embedding Lifecycle.
func (l *Lifecycle) BeforeCreate(tx *gorm.DB) error {
	if l.DeletedAt == nil {
		l.IsActive = true
	}
	return nil
}

// SoftDelete flips the envelope in memory; repositories persist the
// two fields atomically.
func (l *Lifecycle) SoftDelete() {
	now := time.Now()
	l.IsActive = false
	l.DeletedAt = &now
}
