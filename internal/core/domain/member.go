package domain

// Member represents a church member on the roster.
type Member struct {
	MemberID string  `json:"memberID"` // Primary Key (UUID)
	ChurchID string  `json:"churchID"` // FK -> churches.church_id
	BranchID *string `json:"branchID"` // FK -> branches.branch_id, nullable
	Name     string  `json:"name"`     // Required, non-empty
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	AuditFields
}
