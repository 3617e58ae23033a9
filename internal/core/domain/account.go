package domain

// AccountNature is the SYSCOHADA nature of a general-ledger account.
type AccountNature string

const (
	Actif   AccountNature = "ACTIF"
	Passif  AccountNature = "PASSIF"
	Charge  AccountNature = "CHARGE"
	Produit AccountNature = "PRODUIT"
)

// Account is one entry of the chart of accounts. The code is the stable
// business key journal lines reference; only active accounts may receive lines.
type Account struct {
	AccountCode string        `json:"accountCode"` // Business key (e.g. "512000")
	Name        string        `json:"name"`
	Nature      AccountNature `json:"nature"`
	IsActive    bool          `json:"isActive"`
	AuditFields
}
