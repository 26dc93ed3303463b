package repository

import (
	"github.com/S-Borna/Intelliplan/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

func (r *AssessmentRepository) WithTx(tx *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{tx}
}

func (r *AssessmentRepository) Create(assessment *model.FeasibilityAssessment) error {
	return r.db.Create(assessment).Error
}

func (r *AssessmentRepository) FindByRequestID(requestID string) (*model.FeasibilityAssessment, error) {
	var assessment model.FeasibilityAssessment
	err := r.db.First(&assessment, "request_id = ?", requestID).Error
	return &assessment, err
}

// DeleteByRequestID removes a prior assessment; re-assessing replaces, it
// never accumulates history.
func (r *AssessmentRepository) DeleteByRequestID(requestID string) error {
	return r.db.Where("request_id = ?", requestID).Delete(&model.FeasibilityAssessment{}).Error
}
