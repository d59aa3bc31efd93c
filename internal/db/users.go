package db

import (
	"time"

	"github.com/insight-labs/repo-insight/internal/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertUser inserts a user keyed on github_id, or refreshes the mutable
// fields if the identity is already known. The conflict clause makes the
// insert-or-update a single statement, so two concurrent first-sight
// resolutions for the same identity cannot create two rows.
func UpsertUser(db *gorm.DB, user *models.User) (*models.User, error) {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "github_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "email", "avatar_url", "access_token", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the stored row (local ID and original
	// created_at) in the update case as well.
	var stored models.User
	if err := db.Where("github_id = ?", user.GitHubID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// UserByGitHubID looks up the local account for a provider identity.
// Returns gorm.ErrRecordNotFound if the identity has never been seen.
func UserByGitHubID(db *gorm.DB, githubID int64) (*models.User, error) {
	var user models.User
	if err := db.Where("github_id = ?", githubID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserStats holds analysis counts for one account.
type UserStats struct {
	TotalAnalyses     int64 `json:"total_analyses"`
	AnalysesThisWeek  int64 `json:"analyses_this_week"`
	AnalysesThisMonth int64 `json:"analyses_this_month"`
}

// StatsForUser counts the user's analyses overall and within the trailing
// 7- and 30-day windows.
func StatsForUser(db *gorm.DB, userID uint) (*UserStats, error) {
	var stats UserStats
	now := time.Now()

	base := db.Model(&models.Analysis{}).Where("user_id = ?", userID)
	if err := base.Count(&stats.TotalAnalyses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Analysis{}).
		Where("user_id = ? AND created_at >= ?", userID, now.AddDate(0, 0, -7)).
		Count(&stats.AnalysesThisWeek).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Analysis{}).
		Where("user_id = ? AND created_at >= ?", userID, now.AddDate(0, 0, -30)).
		Count(&stats.AnalysesThisMonth).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
