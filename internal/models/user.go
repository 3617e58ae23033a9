package models

// User is the persistence shape of an administrative user.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"` // Unique
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
