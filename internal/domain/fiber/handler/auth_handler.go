package handler

import (
	"strings"

	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/middleware"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/usecase"
	"github.com/S-Borna/Intelliplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc       *usecase.AuthUsecase
	tokens   auth.TokenStore
	userRepo *repository.UserRepository
}

func NewAuthHandler(uc *usecase.AuthUsecase, tokens auth.TokenStore, userRepo *repository.UserRepository) *AuthHandler {
	return &AuthHandler{uc: uc, tokens: tokens, userRepo: userRepo}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Post("/logout", middleware.RequireAuth(h.tokens, h.userRepo), h.Logout)
	group.Get("/me", middleware.RequireAuth(h.tokens, h.userRepo), h.Me)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.FullName) == "" {
		return badRequest(c, "email, password and full_name are required", nil)
	}

	session, err := h.uc.Register(input)
	if err != nil {
		return fail(c, "failed to register", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created",
		Data:    session,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	session, err := h.uc.Login(input)
	if err != nil {
		return fail(c, "invalid email or password", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logged in",
		Data:    session,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(middleware.CurrentToken(c))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logged out",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile, err := h.uc.Me(middleware.CurrentToken(c))
	if err != nil {
		return fail(c, "failed to load profile", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    profile,
	})
}
