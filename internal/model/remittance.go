package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company identifies the presenter/ordering company.
type Company struct {
	Name      string
	VATNumber string
	Country   string
	City      string
	Province  string
}

// Journal holds the per-journal CSB 58 options.
type Journal struct {
	Name               string
	BankAccount        string
	Suffix             string
	INECode            string
	RequireBankAccount bool
	IncludeDomicile    bool
	// ExtendedConcept emits a 56/71 record when the communication does
	// not fit in the 40-character concept field.
	ExtendedConcept bool
}

// RemittanceContext is everything needed to encode one CSB 58 file.
// Only the counters change while encoding.
type RemittanceContext struct {
	CompanyName     string
	VATNumber       string
	Suffix          string
	INECode         string
	BankAccount     string // 20-digit domestic account
	CreationDate    time.Time
	City            string
	Province        string
	IncludeDomicile bool
	ExtendedConcept bool
	Receipts        []Receipt
	Amount          decimal.Decimal // sum of absolute receipt amounts

	RecordCount         int
	OrderingRecords     int
	OrderingRecordCount int
}
