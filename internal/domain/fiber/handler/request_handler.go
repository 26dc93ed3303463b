package handler

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/middleware"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/usecase"
	"github.com/S-Borna/Intelliplan/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requests     *usecase.RequestUsecase
	feasibility  *usecase.FeasibilityUsecase
	coordination *usecase.CoordinationUsecase
	assignments  *usecase.AssignmentUsecase
	tokens       auth.TokenStore
	userRepo     *repository.UserRepository
	uploadDir    string
}

func NewRequestHandler(
	requests *usecase.RequestUsecase,
	feasibility *usecase.FeasibilityUsecase,
	coordination *usecase.CoordinationUsecase,
	assignments *usecase.AssignmentUsecase,
	tokens auth.TokenStore,
	userRepo *repository.UserRepository,
	uploadDir string,
) *RequestHandler {
	return &RequestHandler{
		requests:     requests,
		feasibility:  feasibility,
		coordination: coordination,
		assignments:  assignments,
		tokens:       tokens,
		userRepo:     userRepo,
		uploadDir:    uploadDir,
	}
}

func (h *RequestHandler) RegisterRoutes(app *fiber.App) {
	authed := middleware.RequireAuth(h.tokens, h.userRepo)
	staff := middleware.RequireRole(model.RoleHandler, model.RoleAdmin)

	group := app.Group("/requests", authed)
	group.Post("/", h.Create)
	group.Post("/upload", middleware.RateLimiter(5, time.Minute), h.CreateFromPDF)
	group.Get("/", h.List)
	group.Get("/:id", h.Detail)
	group.Post("/:id/assess", staff, h.Assess)
	group.Post("/:id/coordinate", staff, h.Coordinate)
	group.Post("/:id/assign/:consultant_id", staff, h.Assign)
	group.Post("/:id/assignments/:assignment_id/approve", h.Approve)
	group.Post("/:id/assignments/:assignment_id/reject", h.Reject)
	group.Patch("/:id/status", staff, h.UpdateStatus)
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body", err)
	}
	if err := h.fillCustomer(c, &input); err != nil {
		return err
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return badRequest(c, "title and description are required", nil)
	}

	request, err := h.requests.Create(input)
	if err != nil {
		return fail(c, "failed to create request", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Request created",
		Data:    request,
	})
}

// CreateFromPDF accepts a multipart form with a "brief" PDF plus the usual
// request fields and builds the description from the extracted text.
func (h *RequestHandler) CreateFromPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("brief")
	if err != nil {
		return badRequest(c, "brief file is required", err)
	}
	if file.Size > 10*1024*1024 {
		return badRequest(c, "brief file is too large (max 10MB)", nil)
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return badRequest(c, "brief must be a PDF", nil)
	}

	savePath := filepath.Join(h.uploadDir, uuid.NewString()+".pdf")
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save brief file",
		}, err)
	}

	input := dto.CreateRequestInput{
		CustomerID: c.FormValue("customer_id"),
		Title:      c.FormValue("title"),
		Priority:   c.FormValue("priority"),
		Location:   c.FormValue("location"),
	}
	if err := h.fillCustomer(c, &input); err != nil {
		return err
	}
	if strings.TrimSpace(input.Title) == "" {
		input.Title = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}

	request, err := h.requests.CreateFromPDF(input, savePath)
	if err != nil {
		return fail(c, "failed to create request from brief", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Request created from brief",
		Data:    request,
	})
}

func (h *RequestHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	customerID := c.Query("customer_id")

	user := middleware.CurrentUser(c)
	if user.Role == model.RoleCustomer {
		if user.CustomerID == nil {
			return util.SuccessResponse(c, util.SuccessResponseFormat{
				Message: "OK",
				Data:    []dto.RequestListItem{},
			})
		}
		customerID = *user.CustomerID
	}

	items, err := h.requests.List(status, customerID)
	if err != nil {
		return fail(c, "failed to list requests", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    items,
	})
}

func (h *RequestHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.requests.Detail(c.Params("id"))
	if err != nil {
		return fail(c, "failed to load request", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "OK",
		Data:    detail,
	})
}

func (h *RequestHandler) Assess(c *fiber.Ctx) error {
	assessment, err := h.feasibility.Assess(c.Params("id"))
	if err != nil {
		return fail(c, "failed to assess request", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Assessment completed",
		Data:    assessment,
	})
}

// Coordinate creates the action plan and runs it to completion.
func (h *RequestHandler) Coordinate(c *fiber.Ctx) error {
	id := c.Params("id")
	planType := c.Query("plan_type")

	if _, err := h.coordination.CreatePlan(id, planType); err != nil {
		return fail(c, "failed to create action plan", err)
	}
	actions, err := h.coordination.ExecuteAll(id)
	if err != nil {
		return fail(c, "failed to execute action plan", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: fmt.Sprintf("%d actions executed", len(actions)),
		Data:    actions,
	})
}

func (h *RequestHandler) Assign(c *fiber.Ctx) error {
	assignment, err := h.assignments.Assign(c.Params("id"), c.Params("consultant_id"))
	if err != nil {
		return fail(c, "failed to assign consultant", err)
	}
	if err := h.assignments.MarkSent(assignment); err != nil {
		return fail(c, "failed to send assignment", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Assignment sent to consultant",
		Data:    assignment,
	})
}

func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	assignment, err := h.assignments.Approve(c.Params("id"), c.Params("assignment_id"))
	if err != nil {
		return fail(c, "failed to approve assignment", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Assignment confirmed",
		Data:    assignment,
	})
}

func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	assignment, err := h.assignments.Reject(c.Params("id"), c.Params("assignment_id"))
	if err != nil {
		return fail(c, "failed to reject assignment", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Assignment rejected",
		Data:    assignment,
	})
}

func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	var input dto.UpdateRequestStatusInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	status := model.RequestStatus(input.Status)
	switch status {
	case model.RequestStatusDraft, model.RequestStatusSubmitted, model.RequestStatusAnalyzing,
		model.RequestStatusAssessed, model.RequestStatusInProgress, model.RequestStatusCompleted,
		model.RequestStatusRejected, model.RequestStatusCancelled:
	default:
		return badRequest(c, "unknown status", nil)
	}

	request, err := h.requests.UpdateStatus(c.Params("id"), status, middleware.CurrentUser(c).FullName)
	if err != nil {
		return fail(c, "failed to update status", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Status updated",
		Data:    request,
	})
}

// fillCustomer resolves which customer a new request belongs to: customer
// users always file for their own customer record, staff must name one.
func (h *RequestHandler) fillCustomer(c *fiber.Ctx, input *dto.CreateRequestInput) error {
	user := middleware.CurrentUser(c)
	if user.Role == model.RoleCustomer {
		if user.CustomerID == nil {
			return badRequest(c, "account has no customer record", nil)
		}
		input.CustomerID = *user.CustomerID
		return nil
	}
	if input.CustomerID == "" {
		return badRequest(c, "customer_id is required", nil)
	}
	return nil
}
