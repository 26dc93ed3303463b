package handler

import (
	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/middleware"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/usecase"
	"github.com/S-Borna/Intelliplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc       *usecase.DashboardUsecase
	tokens   auth.TokenStore
	userRepo *repository.UserRepository
}

func NewDashboardHandler(uc *usecase.DashboardUsecase, tokens auth.TokenStore, userRepo *repository.UserRepository) *DashboardHandler {
	return &DashboardHandler{uc: uc, tokens: tokens, userRepo: userRepo}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	authed := middleware.RequireAuth(h.tokens, h.userRepo)
	staff := middleware.RequireRole(model.RoleHandler, model.RoleAdmin)

	app.Get("/dashboard/stats", authed, staff, h.Stats)
	app.Get("/consultants", authed, staff, h.Consultants)
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return fail(c, "failed to load dashboard stats", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    stats,
	})
}

func (h *DashboardHandler) Consultants(c *fiber.Ctx) error {
	consultants, err := h.uc.Consultants()
	if err != nil {
		return fail(c, "failed to list consultants", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    consultants,
	})
}
