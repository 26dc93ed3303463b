package repository

import (
	"github.com/S-Borna/Intelliplan/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db}
}

// WithTx binds the repository to an open transaction handle.
func (r *RequestRepository) WithTx(tx *gorm.DB) *RequestRepository {
	return &RequestRepository{tx}
}

func (r *RequestRepository) Create(request *model.StaffingRequest) error {
	return r.db.Create(request).Error
}

// Save persists scalar fields only; preloaded associations are never
// written back.
func (r *RequestRepository) Save(request *model.StaffingRequest) error {
	return r.db.Omit(clause.Associations).Save(request).Error
}

func (r *RequestRepository) FindByID(id string) (*model.StaffingRequest, error) {
	var request model.StaffingRequest
	err := r.db.Preload("Customer").Preload("Assessment").First(&request, "id = ?", id).Error
	return &request, err
}

// List returns requests newest-first, optionally filtered by status and
// customer.
func (r *RequestRepository) List(status, customerID string) ([]model.StaffingRequest, error) {
	query := r.db.Preload("Customer").Preload("Assessment").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var requests []model.StaffingRequest
	err := query.Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) ListAll() ([]model.StaffingRequest, error) {
	var requests []model.StaffingRequest
	err := r.db.Preload("Assessment").Find(&requests).Error
	return requests, err
}
