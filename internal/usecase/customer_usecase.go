package usecase

import (
	"errors"
	"fmt"

	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"gorm.io/gorm"
)

type CustomerUsecase struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerUsecase(customerRepo *repository.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo}
}

func (uc *CustomerUsecase) Create(input dto.CreateCustomerInput) (*model.Customer, error) {
	if existing, err := uc.customerRepo.FindByEmail(input.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("customer email %s: %w", input.Email, ErrConflict)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	contractType := input.ContractType
	if contractType == "" {
		contractType = "standard"
	}
	customer := &model.Customer{
		Name:         input.Name,
		Company:      input.Company,
		Email:        input.Email,
		Phone:        input.Phone,
		Industry:     input.Industry,
		ContractType: contractType,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *CustomerUsecase) List() ([]model.Customer, error) {
	return uc.customerRepo.List()
}

func (uc *CustomerUsecase) Get(id string) (*model.Customer, error) {
	customer, err := uc.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return customer, nil
}
