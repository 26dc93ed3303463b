package repository

import (
	"errors"

	"github.com/S-Borna/Intelliplan/internal/model"
	"gorm.io/gorm"
)

type ActionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) *ActionRepository {
	return &ActionRepository{db}
}

func (r *ActionRepository) WithTx(tx *gorm.DB) *ActionRepository {
	return &ActionRepository{tx}
}

func (r *ActionRepository) Create(action *model.CoordinationAction) error {
	return r.db.Create(action).Error
}

func (r *ActionRepository) Save(action *model.CoordinationAction) error {
	return r.db.Save(action).Error
}

// NextPending returns the pending action with the lowest execution order,
// or nil when the plan has nothing left to run.
func (r *ActionRepository) NextPending(requestID string) (*model.CoordinationAction, error) {
	var action model.CoordinationAction
	err := r.db.Where("request_id = ? AND status = ?", requestID, model.ActionPending).
		Order("exec_order ASC").
		First(&action).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *ActionRepository) CountPending(requestID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.CoordinationAction{}).
		Where("request_id = ? AND status = ?", requestID, model.ActionPending).
		Count(&count).Error
	return count, err
}

func (r *ActionRepository) ListByRequest(requestID string) ([]model.CoordinationAction, error) {
	var actions []model.CoordinationAction
	err := r.db.Where("request_id = ?", requestID).
		Order("exec_order ASC").
		Find(&actions).Error
	return actions, err
}
