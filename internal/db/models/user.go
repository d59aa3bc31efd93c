package models

import "time"

// User stores the local account for a GitHub identity.
// GitHubID is the provider's user ID and is unique: one row per identity.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GitHubID    int64     `gorm:"column:github_id;uniqueIndex;not null" json:"github_id"`
	Username    string    `gorm:"not null" json:"username"`
	Email       string    `json:"email,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	AccessToken string    `gorm:"type:text" json:"-"` // last-seen bearer token, never serialized
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
