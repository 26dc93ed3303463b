package handler

import (
	"strings"

	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/middleware"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/usecase"
	"github.com/S-Borna/Intelliplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	uc       *usecase.CustomerUsecase
	tokens   auth.TokenStore
	userRepo *repository.UserRepository
}

func NewCustomerHandler(uc *usecase.CustomerUsecase, tokens auth.TokenStore, userRepo *repository.UserRepository) *CustomerHandler {
	return &CustomerHandler{uc: uc, tokens: tokens, userRepo: userRepo}
}

func (h *CustomerHandler) RegisterRoutes(app *fiber.App) {
	authed := middleware.RequireAuth(h.tokens, h.userRepo)
	staff := middleware.RequireRole(model.RoleHandler, model.RoleAdmin)

	group := app.Group("/customers", authed)
	group.Post("/", staff, h.Create)
	group.Get("/", staff, h.List)
	group.Get("/:id", h.Get)
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return badRequest(c, "name and email are required", nil)
	}

	customer, err := h.uc.Create(input)
	if err != nil {
		return fail(c, "failed to create customer", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Customer created",
		Data:    customer,
	})
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List()
	if err != nil {
		return fail(c, "failed to list customers", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    customers,
	})
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	user := middleware.CurrentUser(c)
	if user.Role == model.RoleCustomer && (user.CustomerID == nil || *user.CustomerID != id) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: "Insufficient permissions",
		})
	}

	customer, err := h.uc.Get(id)
	if err != nil {
		return fail(c, "failed to load customer", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    customer,
	})
}
