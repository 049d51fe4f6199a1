package model

import (
	"time"
)

// UserPoints is a one-way achievement ledger: rows are only ever incremented.
type UserPoints struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	Points    int       `json:"points" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PointGrant records each individual award, keyed by the row that earned it,
// so a duplicate delivery of the same event cannot grant twice.
type PointGrant struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	SourceType string    `json:"source_type" gorm:"not null;uniqueIndex:idx_point_grants_source"`
	SourceID   uint      `json:"source_id" gorm:"not null;uniqueIndex:idx_point_grants_source"`
	Points     int       `json:"points" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
