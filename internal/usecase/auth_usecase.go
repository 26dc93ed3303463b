package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	db           *gorm.DB
	userRepo     *repository.UserRepository
	customerRepo *repository.CustomerRepository
	tokens       auth.TokenStore
}

func NewAuthUsecase(db *gorm.DB, userRepo *repository.UserRepository, customerRepo *repository.CustomerRepository, tokens auth.TokenStore) *AuthUsecase {
	return &AuthUsecase{db: db, userRepo: userRepo, customerRepo: customerRepo, tokens: tokens}
}

// Register creates a user account. Customer accounts also get a customer
// record auto-created from the user's name so they can file requests right
// away.
func (uc *AuthUsecase) Register(input dto.RegisterInput) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := uc.userRepo.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, ErrEmailTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := model.UserRole(input.Role)
	switch role {
	case model.RoleCustomer, model.RoleHandler, model.RoleAdmin:
	default:
		role = model.RoleCustomer
	}

	user := &model.User{
		Email:        email,
		PasswordHash: model.HashPassword(input.Password),
		FullName:     input.FullName,
		Role:         role,
		IsActive:     true,
	}

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		if role == model.RoleCustomer {
			firstName := input.FullName
			if i := strings.IndexByte(firstName, ' '); i > 0 {
				firstName = firstName[:i]
			}
			customer := &model.Customer{
				Name:         input.FullName,
				Company:      firstName + " AB",
				Email:        email,
				ContractType: "standard",
			}
			if err := uc.customerRepo.WithTx(tx).Create(customer); err != nil {
				return err
			}
			user.CustomerID = &customer.ID
		}
		return uc.userRepo.WithTx(tx).Create(user)
	})
	if err != nil {
		return nil, err
	}

	return uc.issueSession(user), nil
}

func (uc *AuthUsecase) Login(input dto.LoginInput) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !model.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := uc.userRepo.Save(user); err != nil {
		return nil, err
	}

	return uc.issueSession(user), nil
}

func (uc *AuthUsecase) Logout(token string) {
	uc.tokens.Delete(token)
}

// Me resolves a bearer token to its user.
func (uc *AuthUsecase) Me(token string) (*dto.UserDTO, error) {
	userID, ok := uc.tokens.Get(token)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	profile := toUserDTO(user)
	return &profile, nil
}

func (uc *AuthUsecase) issueSession(user *model.User) *dto.AuthResponse {
	token := auth.NewToken()
	uc.tokens.Put(token, user.ID)
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserDTO(user),
	}
}

func toUserDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       user.Role,
		CustomerID: user.CustomerID,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
		LastLogin:  user.LastLogin,
	}
}
