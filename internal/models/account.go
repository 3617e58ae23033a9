package models

// AccountNature is the SYSCOHADA nature of an account.
type AccountNature string

const (
	Actif   AccountNature = "ACTIF"
	Passif  AccountNature = "PASSIF"
	Charge  AccountNature = "CHARGE"
	Produit AccountNature = "PRODUIT"
)

// Account is the persistence shape of a chart-of-accounts entry.
type Account struct {
	AccountCode string        `db:"account_code"` // Business key, primary key
	Name        string        `db:"name"`
	Nature      AccountNature `db:"nature"`
	IsActive    bool          `db:"is_active"`
	AuditFields
}
