package handler

import (
	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/middleware"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/usecase"
	"github.com/S-Borna/Intelliplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	uc       *usecase.NotificationUsecase
	tokens   auth.TokenStore
	userRepo *repository.UserRepository
}

func NewNotificationHandler(uc *usecase.NotificationUsecase, tokens auth.TokenStore, userRepo *repository.UserRepository) *NotificationHandler {
	return &NotificationHandler{uc: uc, tokens: tokens, userRepo: userRepo}
}

func (h *NotificationHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/notifications", middleware.RequireAuth(h.tokens, h.userRepo))
	group.Get("/", h.List)
	group.Get("/unread-count", h.UnreadCount)
	group.Post("/read-all", h.MarkAllRead)
	group.Post("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.uc.ListForUser(middleware.CurrentUser(c).ID)
	if err != nil {
		return fail(c, "failed to list notifications", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    notifications,
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.uc.UnreadCount(middleware.CurrentUser(c).ID)
	if err != nil {
		return fail(c, "failed to count notifications", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    fiber.Map{"unread": count},
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Params("id"), middleware.CurrentUser(c).ID); err != nil {
		return fail(c, "failed to mark notification read", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Notification marked read",
	})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(middleware.CurrentUser(c).ID); err != nil {
		return fail(c, "failed to mark notifications read", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "All notifications marked read",
	})
}
