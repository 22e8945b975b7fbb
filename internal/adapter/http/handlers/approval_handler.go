package handlers

import (
	"log"
	"net/http"

	request "pj_billing/internal/adapter/http/dto/request"
	response "pj_billing/internal/adapter/http/dto/response"
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/infrastructure/identity"
	"pj_billing/internal/usecase"
	"pj_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errApprovalForbidden = pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Not allowed to perform this action", http.StatusForbidden)
)

// ApprovalHandler handles the approve/reject side of the lifecycle.
//
// The capability predicate is evaluated here before the use case runs and
// again inside the use case itself, so a direct call can never slip past the
// transport gate alone.

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// Approve moves a pending or resubmitted application to approved.
func (h *ApprovalHandler) Approve(c *gin.Context) {
	approver, ok := h.gate(c)
	if !ok {
		return
	}

	app, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), approver)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingApplication(app))
}

// Reject moves a pending or resubmitted application to rejected with a
// mandatory reason.
func (h *ApprovalHandler) Reject(c *gin.Context) {
	approver, ok := h.gate(c)
	if !ok {
		return
	}

	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), approver, payload.Reason)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingApplication(app))
}

// BulkApprove approves each id independently and reports a per-item result
// list; one conflict never aborts the rest.
func (h *ApprovalHandler) BulkApprove(c *gin.Context) {
	approver, ok := h.gate(c)
	if !ok {
		return
	}

	var payload request.BulkApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	results := h.usecase.BulkApprove(c.Request.Context(), payload.IDs, approver)
	c.JSON(http.StatusOK, response.FromBulkApprovalResults(results))
}

// gate resolves the principal from the request context and rejects callers
// outside finance management before any use case runs.
func (h *ApprovalHandler) gate(c *gin.Context) (entities.Principal, bool) {
	principal, ok := identity.FromContext(c.Request.Context())
	if !ok || !principal.CanApprove() {
		log.Printf("[approval][handler] gate denied principal=%s department=%s role=%s", principal.ID, principal.Department, principal.Role)
		c.JSON(errApprovalForbidden.HTTPStatus, errApprovalForbidden.ToHTTPError())
		return entities.Principal{}, false
	}
	return principal, true
}
