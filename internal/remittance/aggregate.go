package remittance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/csb58/internal/bankaccount"
	"github.com/cleared-dev/csb58/internal/model"
)

// AddressLookup resolves a party's invoice address. It returns nil when
// the party has none.
type AddressLookup interface {
	InvoiceAddressOf(party model.Party) *model.Address
}

// Aggregate turns payment lines into receipts, one per line or, with
// join, one per (party, bank account) in first-seen order. It resolves
// each receipt's address and returns the sum of absolute receipt amounts.
// Missing addresses are left for ValidateReceipts.
func Aggregate(lines []model.PaymentLine, journal model.Journal, join bool, today time.Time, addresses AddressLookup) ([]model.Receipt, decimal.Decimal, error) {
	var (
		receipts []model.Receipt
		err      error
	)
	if join {
		receipts, err = joinLines(lines, today)
	} else {
		receipts, err = splitLines(lines, journal, today)
	}
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for i := range receipts {
		receipts[i].Address = addresses.InvoiceAddressOf(receipts[i].Party)
		total = total.Add(receipts[i].Amount.Abs())
	}
	return receipts, total, nil
}

func splitLines(lines []model.PaymentLine, journal model.Journal, today time.Time) ([]model.Receipt, error) {
	receipts := make([]model.Receipt, 0, len(lines))
	for _, l := range lines {
		if l.Party == nil {
			return nil, &ConfigurationError{Kind: KindPartyWithoutBankAccount, Line: l.Ref()}
		}
		if journal.RequireBankAccount && l.BankAccount == "" {
			return nil, partyError(KindPartyWithoutBankAccount, l.Party.Name)
		}
		maturity := today
		if l.DueDate != nil {
			maturity = *l.DueDate
		}
		receipts = append(receipts, model.Receipt{
			Party:         *l.Party,
			BankAccount:   l.BankAccount,
			Amount:        l.Amount,
			Communication: l.Description,
			Date:          l.Date,
			MaturityDate:  maturity,
			CreateDate:    l.CreatedAt,
		})
	}
	return receipts, nil
}

type joinKey struct {
	party   string
	account string
}

func joinLines(lines []model.PaymentLine, today time.Time) ([]model.Receipt, error) {
	groups := make(map[joinKey]int)
	var receipts []model.Receipt

	for _, l := range lines {
		if l.Party == nil {
			return nil, &ConfigurationError{Kind: KindPartyWithoutBankAccount, Line: l.Ref()}
		}
		if l.BankAccount == "" {
			return nil, partyError(KindPartyWithoutBankAccount, l.Party.Name)
		}

		key := joinKey{party: l.Party.Code, account: bankaccount.Normalize(l.BankAccount)}
		i, seen := groups[key]
		if !seen {
			receipts = append(receipts, model.Receipt{
				Party:        *l.Party,
				BankAccount:  l.BankAccount,
				Amount:       decimal.Zero,
				MaturityDate: today,
			})
			i = len(receipts) - 1
			groups[key] = i
		}

		r := &receipts[i]
		r.Amount = r.Amount.Add(l.Amount)
		text := l.ID + " " + l.Description
		if r.Communication == "" {
			r.Communication = text
		} else {
			r.Communication += " " + text
		}
		if l.Date.After(r.Date) {
			r.Date = l.Date
		}
		if l.DueDate != nil && l.DueDate.After(r.MaturityDate) {
			r.MaturityDate = *l.DueDate
		}
		if l.CreatedAt.After(r.CreateDate) {
			r.CreateDate = l.CreatedAt
		}
	}
	return receipts, nil
}
