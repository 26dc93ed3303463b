package repository

import (
	"errors"

	"github.com/S-Borna/Intelliplan/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db}
}

func (r *AssignmentRepository) WithTx(tx *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{tx}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *AssignmentRepository) Save(assignment *model.Assignment) error {
	return r.db.Save(assignment).Error
}

func (r *AssignmentRepository) FindByID(id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	return &assignment, err
}

func (r *AssignmentRepository) FindForRequest(id, requestID string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.First(&assignment, "id = ? AND request_id = ?", id, requestID).Error
	return &assignment, err
}

// FindActive reports an existing assignment for the pair that has not been
// rejected or ended; used as the duplicate-assignment guard.
func (r *AssignmentRepository) FindActive(requestID, consultantID string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.Where("request_id = ? AND consultant_id = ? AND status NOT IN ?",
		requestID, consultantID,
		[]model.AssignmentStatus{model.AssignmentRejected, model.AssignmentEnded}).
		First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ListByRequest(requestID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) CountConfirmed(requestID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Assignment{}).
		Where("request_id = ? AND status = ?", requestID, model.AssignmentConfirmed).
		Count(&count).Error
	return count, err
}
