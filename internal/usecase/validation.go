package usecase

import (
	"sort"
	"strings"

	"pj_billing/internal/domain/entities"
)

// ValidationError carries field-level messages for a submit/resubmit payload
// that was rejected locally. No transition occurs when it is returned.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateBillingContent enforces the submit preconditions: non-empty title and
// description, at least one work item, amount strictly positive.
func validateBillingContent(c entities.BillingContent) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(c.Description) == "" {
		fields["description"] = "description is required"
	}
	items := 0
	for _, it := range c.WorkItems {
		if strings.TrimSpace(it) != "" {
			items++
		}
	}
	if items == 0 {
		fields["work_items"] = "at least one work item is required"
	}
	if c.Amount <= 0 {
		fields["amount"] = "amount must be greater than zero"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
