package handlers

import (
	"errors"
	"net/http"

	request "pj_billing/internal/adapter/http/dto/request"
	response "pj_billing/internal/adapter/http/dto/response"
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase"
	"pj_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApplicationPayload = pkg.NewDomainErrorSimple("INVALID_APPLICATION_INPUT", "Invalid application payload", http.StatusBadRequest)
)

// BillingApplicationHandler handles HTTP requests against the billing request
// registry: listing, detail and resubmission.

type BillingApplicationHandler struct {
	usecase usecase.IBillingApplicationUseCase
}

func NewBillingApplicationHandler(uc usecase.IBillingApplicationUseCase) *BillingApplicationHandler {
	return &BillingApplicationHandler{usecase: uc}
}

// List returns all applications, optionally filtered by ?status=.
func (h *BillingApplicationHandler) List(c *gin.Context) {
	status := c.Query("status")

	var (
		apps []entities.BillingApplication
		err  error
	)
	if status == "" {
		apps, err = h.usecase.List(c.Request.Context())
	} else {
		apps, err = h.usecase.ListByStatus(c.Request.Context(), entities.ApplicationStatus(status))
	}
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingApplications(apps))
}

// Queue returns the approval queue: pending plus resubmitted applications.
func (h *BillingApplicationHandler) Queue(c *gin.Context) {
	apps, err := h.usecase.ListApprovable(c.Request.Context())
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingApplications(apps))
}

func (h *BillingApplicationHandler) GetByID(c *gin.Context) {
	app, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingApplication(app))
}

// Resubmit re-enters a rejected application into the approval queue with
// corrected content.
func (h *BillingApplicationHandler) Resubmit(c *gin.Context) {
	var payload request.ResubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Resubmit(c.Request.Context(), c.Param("id"), payload.Content.ToContent(), payload.Comment)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingApplication(app))
}

func mapApplicationError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest).WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidApplicationID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Billing application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyProcessed):
		return pkg.NewDomainErrorSimple("ALREADY_PROCESSED", "Application already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCommentRequired):
		return pkg.NewDomainErrorSimple("REASON_REQUIRED", "A rejection reason is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
