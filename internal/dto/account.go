package dto

import (
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountCode string               `json:"accountCode" binding:"required"`
	Name        string               `json:"name" binding:"required"`
	Nature      domain.AccountNature `json:"nature" binding:"required,oneof=ACTIF PASSIF CHARGE PRODUIT"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name   *string               `json:"name"`
	Nature *domain.AccountNature `json:"nature"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountCode string               `json:"accountCode"`
	Name        string               `json:"name"`
	Nature      domain.AccountNature `json:"nature"`
	IsActive    bool                 `json:"isActive"`
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   string               `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountCode: acc.AccountCode,
		Name:        acc.Name,
		Nature:      acc.Nature,
		IsActive:    acc.IsActive,
		CreatedAt:   acc.CreatedAt,
		CreatedBy:   acc.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
