package routes

import (
	"pj_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects     = "/projects"
	PathBudget       = "/budget"
	PathDrafts       = "/drafts"
	PathApplications = "/applications"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	budgetHandler *handlers.BudgetHandler,
	draftHandler *handlers.DraftHandler,
	applicationHandler *handlers.BillingApplicationHandler,
	approvalHandler *handlers.ApprovalHandler,
) {
	rg.GET(PathProjects, projectHandler.List)

	budget := rg.Group(PathBudget)
	{
		budget.POST("/financials", budgetHandler.ComputeFinancials)
		budget.POST("/sync", budgetHandler.SyncRatioSet)
		budget.POST("/recalculate", budgetHandler.RecalculateRatioSet)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.Open)
		drafts.GET("/:id", draftHandler.Get)
		drafts.POST("/:id/select-project", draftHandler.SelectProject)
		drafts.POST("/:id/next", draftHandler.Next)
		drafts.POST("/:id/back", draftHandler.Back)
		drafts.POST("/:id/edit-content", draftHandler.EditContent)
		drafts.PUT("/:id/content", draftHandler.SaveContent)
		drafts.POST("/:id/edit-email", draftHandler.EditEmail)
		drafts.PUT("/:id/email", draftHandler.SaveEmail)
		drafts.PUT("/:id/email/addendum", draftHandler.SaveAddendum)
		drafts.POST("/:id/cancel-edit", draftHandler.CancelEdit)
		drafts.POST("/:id/finalize", draftHandler.Finalize)
		drafts.POST("/:id/submit", draftHandler.Submit)
		drafts.DELETE("/:id", draftHandler.Cancel)
	}

	applications := rg.Group(PathApplications)
	{
		applications.GET("", applicationHandler.List)
		applications.GET("/queue", applicationHandler.Queue)
		applications.GET("/:id", applicationHandler.GetByID)
		applications.PATCH("/:id/resubmit", applicationHandler.Resubmit)
		applications.PATCH("/:id/approve", approvalHandler.Approve)
		applications.PATCH("/:id/reject", approvalHandler.Reject)
		applications.POST("/bulk-approve", approvalHandler.BulkApprove)
	}
}
