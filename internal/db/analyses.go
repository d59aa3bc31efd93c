package db

import (
	"github.com/insight-labs/repo-insight/internal/db/models"
	"gorm.io/gorm"
)

// HistoryLimit caps how many records a history query returns.
const HistoryLimit = 20

// InsertAnalysis records one analysis result. Rows are append-only.
func InsertAnalysis(db *gorm.DB, analysis *models.Analysis) error {
	return db.Create(analysis).Error
}

// History returns the most recent analyses, newest first, capped at limit.
// With a non-nil userID only that user's records and anonymous records are
// visible; with nil, the most recent records regardless of owner.
func History(db *gorm.DB, userID *uint, limit int) ([]models.Analysis, error) {
	query := db.Order("created_at DESC, id DESC").Limit(limit)
	if userID != nil {
		query = query.Where("user_id = ? OR user_id IS NULL", *userID)
	}

	var analyses []models.Analysis
	if err := query.Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}
