package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
)

func newAuthForTest(db *gorm.DB) *AuthUsecase {
	return NewAuthUsecase(
		db,
		repository.NewUserRepository(db),
		repository.NewCustomerRepository(db),
		auth.NewMemoryTokenStore(),
	)
}

func TestRegisterCustomerProvisionsCustomerRecord(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthForTest(db)

	resp, err := uc.Register(dto.RegisterInput{
		Email:    "  Lisa.Nilsson@Spotify.SE ",
		Password: "hemligt123",
		FullName: "Lisa Nilsson",
		Role:     "customer",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "lisa.nilsson@spotify.se", resp.User.Email)
	require.NotNil(t, resp.User.CustomerID)

	var customer model.Customer
	require.NoError(t, db.First(&customer, "id = ?", *resp.User.CustomerID).Error)
	assert.Equal(t, "Lisa Nilsson", customer.Name)
	assert.Equal(t, "Lisa AB", customer.Company)

	me, err := uc.Me(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, me.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthForTest(db)

	_, err := uc.Register(dto.RegisterInput{Email: "lisa@spotify.se", Password: "x", FullName: "Lisa"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterInput{Email: "LISA@spotify.se", Password: "y", FullName: "Other Lisa"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUnknownRoleDefaultsToCustomer(t *testing.T) {
	db := newTestDB(t)

	resp, err := newAuthForTest(db).Register(dto.RegisterInput{
		Email: "x@y.se", Password: "x", FullName: "X", Role: "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthForTest(db)

	_, err := uc.Register(dto.RegisterInput{Email: "lisa@spotify.se", Password: "rätt", FullName: "Lisa"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginInput{Email: "lisa@spotify.se", Password: "fel"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := uc.Login(dto.LoginInput{Email: "lisa@spotify.se", Password: "rätt"})
	require.NoError(t, err)
	assert.NotNil(t, resp.User.LastLogin)
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthForTest(db)

	_, err := uc.Register(dto.RegisterInput{Email: "lisa@spotify.se", Password: "hemligt", FullName: "Lisa"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "lisa@spotify.se").
		Update("is_active", false).Error)

	_, err = uc.Login(dto.LoginInput{Email: "lisa@spotify.se", Password: "hemligt"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthForTest(db)

	resp, err := uc.Register(dto.RegisterInput{Email: "lisa@spotify.se", Password: "x", FullName: "Lisa"})
	require.NoError(t, err)

	uc.Logout(resp.AccessToken)

	_, err = uc.Me(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
