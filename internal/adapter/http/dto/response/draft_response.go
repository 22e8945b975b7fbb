package response

import (
	"pj_billing/internal/domain/draft"
	"pj_billing/internal/domain/entities"
)

type ProjectResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Client         string `json:"client"`
	BaselineAmount int64  `json:"baseline_amount"`
	Status         string `json:"status"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       string(p.Category),
		Client:         p.Client,
		BaselineAmount: p.BaselineAmount,
		Status:         p.Status,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

// DraftResponse is the current state of a draft session: the step plus
// whatever the wizard has composed so far.
type DraftResponse struct {
	SessionID string                   `json:"session_id"`
	Step      string                   `json:"step"`
	Project   *ProjectResponse         `json:"project,omitempty"`
	Content   *entities.BillingContent `json:"content,omitempty"`
	Email     *entities.EmailContent   `json:"email,omitempty"`
}

func FromDraftFlow(sessionID string, f *draft.Flow) DraftResponse {
	resp := DraftResponse{
		SessionID: sessionID,
		Step:      string(f.Step()),
		Content:   f.Content(),
		Email:     f.Email(),
	}
	if p := f.Project(); p != nil {
		pr := FromProject(*p)
		resp.Project = &pr
	}
	return resp
}
