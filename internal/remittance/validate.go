package remittance

import (
	"github.com/cleared-dev/csb58/internal/model"
)

// BankAccountValidator checks an account number's checksum for a country.
type BankAccountValidator interface {
	IsValid(countryCode, accountNumber string) bool
}

const defaultCountry = "ES"

// ValidateCompany runs the company-level checks, in order: journal bank
// account present and valid, VAT number present, at least one line.
func ValidateCompany(journal model.Journal, company model.Company, lineCount int, accounts BankAccountValidator) error {
	if journal.BankAccount == "" {
		return ErrMissingCompanyBankAccount
	}
	if !accounts.IsValid(countryOr(company.Country), journal.BankAccount) {
		return ErrInvalidCompanyBankAccount
	}
	if company.VATNumber == "" {
		return ErrMissingVatNumber
	}
	if lineCount == 0 {
		return ErrNoPaymentLines
	}
	return nil
}

// ValidateReceipts checks every receipt's address and, when the journal
// requires it, its bank account. The first violation is returned.
func ValidateReceipts(receipts []model.Receipt, journal model.Journal, accounts BankAccountValidator) error {
	for _, r := range receipts {
		if r.Address == nil {
			return partyError(KindPartyWithoutAddress, r.Name())
		}
		if !r.Address.Complete() {
			return partyError(KindPartyWithCompleteAddressMissing, r.Name())
		}
		if !journal.RequireBankAccount {
			continue
		}
		if r.BankAccount == "" {
			return partyError(KindPartyWithoutBankAccount, r.Name())
		}
		if !accounts.IsValid(countryOr(r.Address.Country), r.BankAccount) {
			return partyError(KindPartyBankAccountInvalid, r.Name())
		}
	}
	return nil
}

func countryOr(country string) string {
	if country == "" {
		return defaultCountry
	}
	return country
}
