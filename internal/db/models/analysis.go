package models

import "time"

// Analysis is one stored analysis result. UserID is nullable: anonymous
// requests are recorded without an owner. Results holds the raw JSON payload
// that was returned to the caller.
type Analysis struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         *uint     `gorm:"index" json:"user_id"`
	RepositoryName string    `gorm:"not null" json:"repository_name"` // "owner/name"
	RepositoryURL  string    `json:"repository_url"`
	Results        string    `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}
