package handlers

import (
	"net/http"

	response "pj_billing/internal/adapter/http/dto/response"
	"pj_billing/internal/usecase"
	"pj_billing/pkg"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the read-only project catalog.

type ProjectHandler struct {
	usecase usecase.IDraftFlowUseCase
}

func NewProjectHandler(uc usecase.IDraftFlowUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}
