package repository

import (
	"github.com/S-Borna/Intelliplan/internal/model"
	"gorm.io/gorm"
)

type TimelineRepository struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db}
}

func (r *TimelineRepository) WithTx(tx *gorm.DB) *TimelineRepository {
	return &TimelineRepository{tx}
}

// Append inserts an event. The log is append-only; there is deliberately
// no update or delete here.
func (r *TimelineRepository) Append(event *model.TimelineEvent) error {
	return r.db.Create(event).Error
}

func (r *TimelineRepository) ListByRequest(requestID string) ([]model.TimelineEvent, error) {
	var events []model.TimelineEvent
	err := r.db.Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}
