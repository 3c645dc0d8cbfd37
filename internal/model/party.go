package model

// Party is a payee known to the parties store.
type Party struct {
	Code               string
	Name               string
	VATNumber          string
	DefaultBankAccount string
}

// Address is a party's invoice/mailing address.
type Address struct {
	Street      string
	Zip         string
	City        string
	Country     string // ISO 3166-1 alpha-2
	Subdivision string // province code, e.g. "08"
}

// Complete reports whether zip, city and country are all present.
func (a Address) Complete() bool {
	return a.Zip != "" && a.City != "" && a.Country != ""
}
