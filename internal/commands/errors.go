package commands

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/csb58/internal/remittance"
)

// Describe renders err for the user. Remittance configuration errors get
// a sentence naming what to fix; other errors keep their own text.
func Describe(err error) string {
	var cerr *remittance.ConfigurationError
	if !errors.As(err, &cerr) {
		return err.Error()
	}

	switch cerr.Kind {
	case remittance.KindMissingCompanyBankAccount:
		return "company bank account is not configured on the payment journal"
	case remittance.KindInvalidCompanyBankAccount:
		return "company bank account is not a valid account number"
	case remittance.KindMissingVatNumber:
		return "company VAT number is not configured"
	case remittance.KindNoPaymentLines:
		return "payment group has no payment lines"
	case remittance.KindPartyWithoutBankAccount:
		if cerr.Party == "" {
			return fmt.Sprintf("payment line %s has no party or bank account", cerr.Line)
		}
		return fmt.Sprintf("party %q has no bank account", cerr.Party)
	case remittance.KindPartyWithoutAddress:
		return fmt.Sprintf("party %q has no invoice address", cerr.Party)
	case remittance.KindPartyWithCompleteAddressMissing:
		return fmt.Sprintf("party %q address is missing zip, city or country", cerr.Party)
	case remittance.KindPartyBankAccountInvalid:
		return fmt.Sprintf("party %q bank account is not a valid account number", cerr.Party)
	}
	return cerr.Error()
}
