package remittance

import "fmt"

// ErrorKind enumerates the configuration and data problems that stop a
// remittance from being generated.
type ErrorKind int

const (
	KindMissingCompanyBankAccount ErrorKind = iota + 1
	KindInvalidCompanyBankAccount
	KindMissingVatNumber
	KindNoPaymentLines
	KindPartyWithoutBankAccount
	KindPartyWithoutAddress
	KindPartyWithCompleteAddressMissing
	KindPartyBankAccountInvalid
)

var kindNames = map[ErrorKind]string{
	KindMissingCompanyBankAccount:       "missing_company_bank_account",
	KindInvalidCompanyBankAccount:       "invalid_company_bank_account",
	KindMissingVatNumber:                "missing_vat_number",
	KindNoPaymentLines:                  "no_payment_lines",
	KindPartyWithoutBankAccount:         "party_without_bank_account",
	KindPartyWithoutAddress:             "party_without_address",
	KindPartyWithCompleteAddressMissing: "party_without_complete_address",
	KindPartyBankAccountInvalid:         "party_bank_account_invalid",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// ConfigurationError is returned when source data or setup prevents
// generation. Party names the offending party for per-party kinds; Line
// identifies the payment line when it has no party.
type ConfigurationError struct {
	Kind  ErrorKind
	Party string
	Line  string
}

// Error is a developer-facing rendering: the kind and its subject. User
// messages are written by the presentation layer from Kind, Party and Line.
func (e *ConfigurationError) Error() string {
	switch {
	case e.Party != "":
		return fmt.Sprintf("%s: party %q", e.Kind, e.Party)
	case e.Line != "":
		return fmt.Sprintf("%s: payment line %s", e.Kind, e.Line)
	}
	return e.Kind.String()
}

// Is matches any ConfigurationError of the same kind, so callers can use
// errors.Is(err, ErrNoPaymentLines).
func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingCompanyBankAccount       = &ConfigurationError{Kind: KindMissingCompanyBankAccount}
	ErrInvalidCompanyBankAccount       = &ConfigurationError{Kind: KindInvalidCompanyBankAccount}
	ErrMissingVatNumber                = &ConfigurationError{Kind: KindMissingVatNumber}
	ErrNoPaymentLines                  = &ConfigurationError{Kind: KindNoPaymentLines}
	ErrPartyWithoutBankAccount         = &ConfigurationError{Kind: KindPartyWithoutBankAccount}
	ErrPartyWithoutAddress             = &ConfigurationError{Kind: KindPartyWithoutAddress}
	ErrPartyWithCompleteAddressMissing = &ConfigurationError{Kind: KindPartyWithCompleteAddressMissing}
	ErrPartyBankAccountInvalid         = &ConfigurationError{Kind: KindPartyBankAccountInvalid}
)

func partyError(kind ErrorKind, party string) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Party: party}
}
