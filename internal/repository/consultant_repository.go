package repository

import (
	"github.com/S-Borna/Intelliplan/internal/model"
	"gorm.io/gorm"
)

type ConsultantRepository struct {
	db *gorm.DB
}

func NewConsultantRepository(db *gorm.DB) *ConsultantRepository {
	return &ConsultantRepository{db}
}

func (r *ConsultantRepository) WithTx(tx *gorm.DB) *ConsultantRepository {
	return &ConsultantRepository{tx}
}

func (r *ConsultantRepository) Create(consultant *model.Consultant) error {
	return r.db.Create(consultant).Error
}

func (r *ConsultantRepository) Save(consultant *model.Consultant) error {
	return r.db.Save(consultant).Error
}

func (r *ConsultantRepository) FindByID(id string) (*model.Consultant, error) {
	var consultant model.Consultant
	err := r.db.First(&consultant, "id = ?", id).Error
	return &consultant, err
}

// ListAll returns the whole pool in insertion order. The feasibility
// engine depends on this ordering for its unranked matching list.
func (r *ConsultantRepository) ListAll() ([]model.Consultant, error) {
	var consultants []model.Consultant
	err := r.db.Order("created_at ASC, id ASC").Find(&consultants).Error
	return consultants, err
}

func (r *ConsultantRepository) List(status string) ([]model.Consultant, error) {
	query := r.db.Order("name ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var consultants []model.Consultant
	err := query.Find(&consultants).Error
	return consultants, err
}
