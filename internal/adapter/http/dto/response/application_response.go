package response

import (
	"time"

	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase"
)

type ApplicationResponse struct {
	ID            string     `json:"id"`
	BillingNumber string     `json:"billing_number"`
	ProjectName   string     `json:"project_name"`
	ClientName    string     `json:"client_name"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"`
	AppliedAt     time.Time  `json:"applied_at"`
	AppliedBy     string     `json:"applied_by"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	Comment       string     `json:"comment,omitempty"`
}

func FromBillingApplication(app entities.BillingApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:            app.ID,
		BillingNumber: app.BillingNumber,
		ProjectName:   app.ProjectName,
		ClientName:    app.ClientName,
		Amount:        app.Amount,
		Status:        string(app.Status),
		AppliedAt:     app.AppliedAt,
		AppliedBy:     app.AppliedBy,
		ApprovedBy:    app.ApprovedBy,
		ApprovedAt:    app.ApprovedAt,
		Comment:       app.Comment,
	}
}

func FromBillingApplications(apps []entities.BillingApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, FromBillingApplication(app))
	}
	return out
}

// BulkApprovalItemResponse is one per-item outcome of a bulk approval. Items
// succeed or fail independently.
type BulkApprovalItemResponse struct {
	ID          string               `json:"id"`
	Approved    bool                 `json:"approved"`
	Error       string               `json:"error,omitempty"`
	Application *ApplicationResponse `json:"application,omitempty"`
}

func FromBulkApprovalResults(results []usecase.BulkApprovalResult) []BulkApprovalItemResponse {
	out := make([]BulkApprovalItemResponse, 0, len(results))
	for _, r := range results {
		item := BulkApprovalItemResponse{ID: r.ID, Approved: r.Err == nil}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			app := FromBillingApplication(r.Application)
			item.Application = &app
		}
		out = append(out, item)
	}
	return out
}
