package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentLine is one instruction to pay a party.
type PaymentLine struct {
	ID          string
	Party       *Party // nil when the source row names no party
	BankAccount string // empty when unknown
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	DueDate     *time.Time
	Origin      string // invoice reference, optional
	CreatedAt   time.Time
}

// PartyCode returns the code of the line's party, or "" if it has none.
func (l PaymentLine) PartyCode() string {
	if l.Party == nil {
		return ""
	}
	return l.Party.Code
}

// Ref identifies the line to a user: its id, followed by the originating
// invoice when known ("L1 (INV-0001)").
func (l PaymentLine) Ref() string {
	if l.Origin == "" {
		return l.ID
	}
	return l.ID + " (" + l.Origin + ")"
}

// Receipt is the aggregated unit written as one individual record.
type Receipt struct {
	Party         Party
	BankAccount   string
	Amount        decimal.Decimal // signed
	Communication string
	Date          time.Time
	MaturityDate  time.Time
	CreateDate    time.Time
	Address       *Address // nil when the party has no invoice address
}

// Reference is the receipt reference written on detail records.
func (r Receipt) Reference() string {
	return r.Party.Code
}

// Name is the payee name written on the required individual record.
func (r Receipt) Name() string {
	return r.Party.Name
}
