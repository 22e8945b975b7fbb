package request

// RejectRequest carries the mandatory rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ResubmitRequest carries the corrected content and the applicant's note.
// The note replaces the rejection reason on the record.
type ResubmitRequest struct {
	Content BillingContentRequest `json:"content" binding:"required"`
	Comment string                `json:"comment" binding:"required"`
}

// BulkApproveRequest lists the application ids to approve independently.
type BulkApproveRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
