package domain

// CategoryKind indicates whether a category (and the transactions recorded
// under it) represents income or an expense.
type CategoryKind string

const (
	KindIncome  CategoryKind = "income"
	KindExpense CategoryKind = "expense"
)

// Valid reports whether k is one of the two supported kinds.
func (k CategoryKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Category represents a transaction category. Kind is fixed at creation;
// categories are only ever created and deleted, never updated.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	ChurchID   string       `json:"churchID"`   // FK -> churches.church_id
	Name       string       `json:"name"`
	Kind       CategoryKind `json:"kind"`
	IsDefault  bool         `json:"isDefault"` // True for seeded categories
	AuditFields
}

// CategorySeed is one entry of the default category set.
type CategorySeed struct {
	Name string
	Kind CategoryKind
}

// DefaultCategorySeeds is the fixed set inserted exactly once for a church
// whose category list is empty on first load.
var DefaultCategorySeeds = []CategorySeed{
	{Name: "Tithe", Kind: KindIncome},
	{Name: "Offering", Kind: KindIncome},
	{Name: "Donation", Kind: KindIncome},
	{Name: "Rent", Kind: KindExpense},
	{Name: "Utilities", Kind: KindExpense},
	{Name: "Salaries", Kind: KindExpense},
	{Name: "Maintenance", Kind: KindExpense},
}
