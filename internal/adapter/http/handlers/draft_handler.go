package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pj_billing/internal/adapter/http/dto/request"
	response "pj_billing/internal/adapter/http/dto/response"
	"pj_billing/internal/adapter/http/session"
	"pj_billing/internal/domain/draft"
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase"
	"pj_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler drives the billing composition wizard over session-scoped
// drafts. Every step transition goes through the session store so one draft
// has a single writer at a time.

type DraftHandler struct {
	store    *session.Store
	drafts   usecase.IDraftFlowUseCase
	registry usecase.IBillingApplicationUseCase
}

func NewDraftHandler(store *session.Store, drafts usecase.IDraftFlowUseCase, registry usecase.IBillingApplicationUseCase) *DraftHandler {
	return &DraftHandler{store: store, drafts: drafts, registry: registry}
}

// Open starts a new draft session at the project selection step.
func (h *DraftHandler) Open(c *gin.Context) {
	id := h.store.Open()
	log.Printf("[draft][handler] session opened id=%s", id)
	c.JSON(http.StatusCreated, response.DraftResponse{SessionID: id, Step: string(draft.StepSelectingProject)})
}

// Get returns the current step and draft snapshot.
func (h *DraftHandler) Get(c *gin.Context) {
	h.respondAfter(c, func(*draft.Flow) error { return nil })
}

// SelectProject attaches a project and jumps the wizard to the preview.
func (h *DraftHandler) SelectProject(c *gin.Context) {
	var payload request.SelectProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	h.respondAfter(c, func(f *draft.Flow) error {
		return h.drafts.SelectProject(c.Request.Context(), f, payload.ProjectID, payload.ToMembers(), payload.ToPayments())
	})
}

func (h *DraftHandler) Next(c *gin.Context) {
	h.respondAfter(c, func(f *draft.Flow) error { return f.Next() })
}

func (h *DraftHandler) Back(c *gin.Context) {
	h.respondAfter(c, func(f *draft.Flow) error { return f.Back() })
}

func (h *DraftHandler) EditContent(c *gin.Context) {
	h.respondAfter(c, func(f *draft.Flow) error { return f.EditContent() })
}

func (h *DraftHandler) EditEmail(c *gin.Context) {
	h.respondAfter(c, func(f *draft.Flow) error { return f.EditEmail() })
}

func (h *DraftHandler) CancelEdit(c *gin.Context) {
	h.respondAfter(c, func(f *draft.Flow) error { return f.CancelEdit() })
}

// SaveContent merges edited billing content and returns to the preview.
func (h *DraftHandler) SaveContent(c *gin.Context) {
	var payload request.BillingContentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	h.respondAfter(c, func(f *draft.Flow) error { return f.SaveContent(payload.ToContent()) })
}

// SaveEmail merges edited email content and returns to the preview.
func (h *DraftHandler) SaveEmail(c *gin.Context) {
	var payload request.EmailContentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	h.respondAfter(c, func(f *draft.Flow) error { return f.SaveEmail(payload.ToEmail()) })
}

// SaveAddendum re-renders the draft email from the category template with the
// changed free-text addendum.
func (h *DraftHandler) SaveAddendum(c *gin.Context) {
	var payload request.AddendumRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	h.respondAfter(c, func(f *draft.Flow) error { return f.SaveAddendum(payload.Addendum) })
}

func (h *DraftHandler) Finalize(c *gin.Context) {
	h.respondAfter(c, func(f *draft.Flow) error { return f.Finalize() })
}

// Submit turns the finalized draft into a pending application and drops the
// session.
func (h *DraftHandler) Submit(c *gin.Context) {
	id := c.Param("id")

	var created entities.BillingApplication
	err := h.store.Do(id, func(f *draft.Flow) error {
		app, err := h.registry.Submit(c.Request.Context(), f)
		if err != nil {
			return err
		}
		created = app
		return nil
	})
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.store.Drop(id)
	log.Printf("[draft][handler] submit success session=%s application=%s", id, created.ID)
	c.JSON(http.StatusCreated, response.FromBillingApplication(created))
}

// Cancel discards the in-progress draft and its session.
func (h *DraftHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	err := h.store.Do(id, func(f *draft.Flow) error {
		f.Reset()
		return nil
	})
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.store.Drop(id)
	log.Printf("[draft][handler] session cancelled id=%s", id)
	c.Status(http.StatusNoContent)
}

// respondAfter runs one transition under the session lock and returns the
// resulting draft snapshot.
func (h *DraftHandler) respondAfter(c *gin.Context, fn func(*draft.Flow) error) {
	id := c.Param("id")

	var snapshot response.DraftResponse
	err := h.store.Do(id, func(f *draft.Flow) error {
		if err := fn(f); err != nil {
			return err
		}
		snapshot = response.FromDraftFlow(id, f)
		return nil
	})
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func mapDraftError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest).WithDetails(verr.Fields)
	case errors.Is(err, session.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft session not found", http.StatusNotFound)
	case errors.Is(err, draft.ErrInvalidTransition), errors.Is(err, usecase.ErrDraftNotSubmittable):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from the current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
