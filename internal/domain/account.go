// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrUnknownAccount indicates that the account is not found.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrUnauthorized indicates that the actor is not allowed to perform the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotAMerchant indicates that the payee account is not a merchant.
	ErrNotAMerchant = errors.New("account is not a merchant")
	// ErrWrongPassword indicates the wrong password for the given account.
	ErrWrongPassword = errors.New("wrong password")
)

// Role classifies an account. Exactly one account may hold RoleFounder,
// fixed when the first founder account is created.
type Role string

// Roles recognized by the ledger.
const (
	RoleFounder  Role = "founder"
	RoleMerchant Role = "merchant"
	RoleRegular  Role = "regular"
)

// Account holds one user's cash balance, holdings and transaction history.
type Account struct {
	Username          string             `json:"username"`
	HashedPassword    string             `json:"hashed_password"`
	Role              Role               `json:"role"`
	Balance           int64              `json:"balance"`
	Holdings          map[string]int64   `json:"holdings"`
	RecurringPayments []RecurringPayment `json:"recurring_payments"`
	History           []Transaction      `json:"history"`
	CreatedAt         time.Time          `json:"created_at"`
}

// Clone returns a deep copy of the account so callers can hand out
// snapshots without exposing internal state.
func (a Account) Clone() Account {
	c := a

	c.Holdings = make(map[string]int64, len(a.Holdings))
	for symbol, quantity := range a.Holdings {
		c.Holdings[symbol] = quantity
	}

	c.RecurringPayments = make([]RecurringPayment, len(a.RecurringPayments))
	copy(c.RecurringPayments, a.RecurringPayments)

	c.History = make([]Transaction, len(a.History))
	copy(c.History, a.History)

	return c
}

// AccountWithoutPassword is Account data excluding credential data.
type AccountWithoutPassword struct {
	Username          string             `json:"username"`
	Role              Role               `json:"role"`
	Balance           int64              `json:"balance"`
	Holdings          map[string]int64   `json:"holdings"`
	RecurringPayments []RecurringPayment `json:"recurring_payments"`
	History           []Transaction      `json:"history"`
	CreatedAt         time.Time          `json:"created_at"`
}

// WithoutPassword strips credential data from the account.
func (a Account) WithoutPassword() AccountWithoutPassword {
	c := a.Clone()

	return AccountWithoutPassword{
		Username:          c.Username,
		Role:              c.Role,
		Balance:           c.Balance,
		Holdings:          c.Holdings,
		RecurringPayments: c.RecurringPayments,
		History:           c.History,
		CreatedAt:         c.CreatedAt,
	}
}
