package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates a zero or negative amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds indicates that the account balance does not cover the operation.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientHoldings indicates that the account does not hold enough of the instrument.
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	// ErrUnknownInstrument indicates that the instrument symbol is not tracked.
	ErrUnknownInstrument = errors.New("unknown instrument")
	// ErrPersistenceFailure indicates that a committed mutation could not be snapshotted.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// TransactionKind classifies a ledger transaction.
type TransactionKind string

// Transaction kinds recognized by the ledger.
const (
	KindMint                TransactionKind = "mint"
	KindTransferOut         TransactionKind = "transfer_out"
	KindTransferIn          TransactionKind = "transfer_in"
	KindMerchantPayment     TransactionKind = "merchant_payment"
	KindMerchantReceipt     TransactionKind = "merchant_receipt"
	KindAutomaticPaymentOut TransactionKind = "automatic_payment_out"
	KindAutomaticPaymentIn  TransactionKind = "automatic_payment_in"
	KindInvest              TransactionKind = "invest"
	KindDivest              TransactionKind = "divest"
)

// Transaction holds one balance change for an account. It is immutable
// once appended; ResultingBalance is the account balance right after the
// operation was applied, not a live reference.
type Transaction struct {
	Kind             TransactionKind `json:"kind"`
	Counterparty     string          `json:"counterparty,omitempty"`
	Amount           int64           `json:"amount"`
	Instrument       string          `json:"instrument,omitempty"`
	ResultingBalance int64           `json:"resulting_balance"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TransferResult is the result of a transfer between two accounts.
type TransferResult struct {
	From Account `json:"from"`
	To   Account `json:"to"`
}

// TradeResult is the result of an invest or divest operation.
type TradeResult struct {
	Account  Account `json:"account"`
	Symbol   string  `json:"symbol"`
	Quantity int64   `json:"quantity"`
	Price    int64   `json:"price"`
	Total    int64   `json:"total"`
}
