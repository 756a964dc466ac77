package domain

// Church represents a tenant: an organization whose members, categories,
// transactions and tithe records are isolated from every other church.
type Church struct {
	ChurchID   string `json:"churchID"`   // Primary Key (UUID), immutable after creation
	Name       string `json:"name"`       //
	ChurchCode string `json:"churchCode"` // Unique human-shareable code, generated at registration
	Plan       string `json:"plan"`       // Subscription plan, "free" by default
	AuditFields
}

// Branch represents a sub-location of a church. Records may optionally be
// scoped to a branch; the church id is immutable.
type Branch struct {
	BranchID string  `json:"branchID"` // Primary Key (UUID)
	ChurchID string  `json:"churchID"` // FK -> churches.church_id
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Address  *string `json:"address,omitempty"`
	AuditFields
}

// MainBranchName and MainBranchCode identify the branch auto-created for a
// church that has none. Creation is guarded by an empty branch list check.
const (
	MainBranchName = "Main Branch"
	MainBranchCode = "MAIN"
)
