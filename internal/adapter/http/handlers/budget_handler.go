package handlers

import (
	"net/http"

	request "pj_billing/internal/adapter/http/dto/request"
	response "pj_billing/internal/adapter/http/dto/response"
	"pj_billing/internal/domain/budget"
	"pj_billing/internal/domain/entities"
	"pj_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler exposes the budget engine to the composition wizard.
//
// Both endpoints are pure recomputations over the submitted snapshot; nothing
// is persisted here.

type BudgetHandler struct{}

func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// ComputeFinancials recomputes the full financial snapshot from the current
// members and payment lines.
func (h *BudgetHandler) ComputeFinancials(c *gin.Context) {
	var payload request.FinancialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	category := entities.ProjectCategory(payload.Category)
	if !category.Valid() {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	snapshot := budget.ComputeFinancials(payload.ToMembers(), payload.ToPayments(), category)
	c.JSON(http.StatusOK, response.FromFinancialSnapshot(snapshot))
}

// SyncRatioSet reconciles one budget pair. The request names the authoritative
// side for this edit; only the opposite side is recomputed.
func (h *BudgetHandler) SyncRatioSet(c *gin.Context) {
	var payload request.BudgetSyncRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	key := budget.BudgetKey(payload.Key)
	switch key {
	case budget.BudgetOperating, budget.BudgetMisc, budget.BudgetIncentive:
	default:
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	set := payload.Set.ToRatioSet()
	switch payload.Side {
	case "ratio":
		set.SyncFromRatio(key, payload.Ratio, payload.GrossProfit)
	case "amount":
		set.SyncFromAmount(key, budget.ParseAmount(payload.Amount), payload.GrossProfit)
	default:
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRatioSet(set))
}

// RecalculateRatioSet recomputes all three amounts from their ratios against a
// changed gross profit, e.g. after a team or payment edit moved the snapshot.
func (h *BudgetHandler) RecalculateRatioSet(c *gin.Context) {
	var payload request.BudgetRecalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	set := payload.Set.ToRatioSet()
	set.Recalculate(payload.GrossProfit)
	c.JSON(http.StatusOK, response.FromRatioSet(set))
}
