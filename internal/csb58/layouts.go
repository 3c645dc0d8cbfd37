// Package csb58 writes and reads CSB 58 remittance files.
package csb58

import fw "github.com/cleared-dev/csb58/internal/fixedwidth"

// RecordLen is the width of every CSB 58 record.
const RecordLen = 162

func prefix() []fw.Field {
	return []fw.Field{
		fw.Alpha("record_code", 2),
		fw.Alpha("data_code", 2),
		fw.Alpha("nif", 9),
		fw.Numeric("suffix", 3),
	}
}

func layout(name string, fields ...fw.Field) fw.Layout {
	return fw.NewLayout(name, append(prefix(), fields...)...)
}

var (
	// PresenterHeader is record 51/70.
	PresenterHeader = layout("presenter_header",
		fw.Alpha("creation_date", 6),
		fw.Alpha("free_1", 6),
		fw.Alpha("name", 40),
		fw.Alpha("free_2", 20),
		fw.Numeric("bank_code", 4),
		fw.Numeric("bank_office", 4),
		fw.Alpha("free_3", 12),
		fw.Alpha("free_4", 40),
		fw.Alpha("free_5", 14),
	)

	// OrderingHeader is record 53/70.
	OrderingHeader = layout("ordering_header",
		fw.Alpha("creation_date", 6),
		fw.Alpha("free_1", 6),
		fw.Alpha("name", 40),
		fw.Alpha("account", 20),
		fw.Alpha("free_2", 8),
		fw.Alpha("procedure", 2),
		fw.Alpha("free_3", 10),
		fw.Alpha("free_4", 40),
		fw.Numeric("ine", 9),
		fw.Alpha("free_5", 5),
	)

	// RequiredIndividual is record 56/70, one per receipt.
	RequiredIndividual = layout("required_individual",
		fw.Alpha("reference", 12),
		fw.Alpha("name", 40),
		fw.Alpha("account", 20),
		fw.Numeric("amount", 10),
		fw.Alpha("return_code", 6),
		fw.Alpha("internal_code", 10),
		fw.Alpha("concept", 40),
		fw.Alpha("due_date", 6),
		fw.Alpha("free_1", 2),
	)

	// OptionalIndividual is record 56/71, continuing the concept text.
	OptionalIndividual = layout("optional_individual",
		fw.Alpha("reference", 12),
		fw.Alpha("concept_2", 40),
		fw.Alpha("concept_3", 40),
		fw.Alpha("concept_4", 40),
		fw.Alpha("free_1", 14),
	)

	// AddressIndividual is record 56/76, the payer's domicile.
	AddressIndividual = layout("address_individual",
		fw.Alpha("reference", 12),
		fw.Alpha("payer_address", 40),
		fw.Alpha("payer_city", 35),
		fw.Numeric("payer_zip", 5),
		fw.Alpha("ordering_city", 38),
		fw.Numeric("province_code", 2),
		fw.Alpha("origin_date", 6),
		fw.Alpha("free_1", 8),
	)

	// OrderingFooter is record 58/70.
	OrderingFooter = layout("ordering_footer",
		fw.Alpha("free_1", 12),
		fw.Alpha("free_2", 40),
		fw.Alpha("free_3", 20),
		fw.Numeric("amount", 10),
		fw.Alpha("free_4", 6),
		fw.Numeric("payment_line_count", 10),
		fw.Numeric("record_count", 10),
		fw.Alpha("free_5", 20),
		fw.Alpha("free_6", 18),
	)

	// PresenterFooter is record 59/70.
	PresenterFooter = layout("presenter_footer",
		fw.Alpha("free_1", 12),
		fw.Alpha("free_2", 40),
		fw.Numeric("ordering_count", 4),
		fw.Alpha("free_3", 16),
		fw.Numeric("amount", 10),
		fw.Alpha("free_4", 6),
		fw.Numeric("payment_line_count", 10),
		fw.Numeric("record_count", 10),
		fw.Alpha("free_5", 20),
		fw.Alpha("free_6", 18),
	)
)

// Kind is the record/data code pair identifying a record.
type Kind struct {
	RecordCode string
	DataCode   string
}

func (k Kind) String() string { return k.RecordCode + k.DataCode }

var (
	KindPresenterHeader    = Kind{"51", "70"}
	KindOrderingHeader     = Kind{"53", "70"}
	KindRequiredIndividual = Kind{"56", "70"}
	KindOptionalIndividual = Kind{"56", "71"}
	KindAddressIndividual  = Kind{"56", "76"}
	KindOrderingFooter     = Kind{"58", "70"}
	KindPresenterFooter    = Kind{"59", "70"}
)

var layoutsByKind = map[Kind]fw.Layout{
	KindPresenterHeader:    PresenterHeader,
	KindOrderingHeader:     OrderingHeader,
	KindRequiredIndividual: RequiredIndividual,
	KindOptionalIndividual: OptionalIndividual,
	KindAddressIndividual:  AddressIndividual,
	KindOrderingFooter:     OrderingFooter,
	KindPresenterFooter:    PresenterFooter,
}

// LayoutFor returns the layout for a record/data code pair.
func LayoutFor(k Kind) (fw.Layout, bool) {
	l, ok := layoutsByKind[k]
	return l, ok
}
