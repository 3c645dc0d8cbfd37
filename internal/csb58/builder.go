package csb58

import (
	"bytes"
	"strconv"
	"time"

	fw "github.com/cleared-dev/csb58/internal/fixedwidth"
	"github.com/cleared-dev/csb58/internal/model"
)

const (
	dateFormat    = "020106" // DDMMYY
	procedureCode = "06"
	orderingCount = "0001"
	conceptWidth  = 40
)

// Builder encodes a RemittanceContext into a CSB 58 document.
type Builder struct {
	// LineEnding is written after every record. Empty yields the bare
	// concatenation of fixed-width records.
	LineEnding string
	// OnTruncate receives every field value that did not fit.
	OnTruncate fw.TruncationFunc
}

// Build emits presenter header, ordering header, the detail records of
// every receipt, ordering footer and presenter footer, in that order.
// The context's counters are reset first and hold their final values
// afterwards.
func (b *Builder) Build(ctx *model.RemittanceContext) []byte {
	ctx.RecordCount = 0
	ctx.OrderingRecords = 0
	ctx.OrderingRecordCount = 0

	var buf bytes.Buffer
	emit := func(rec *fw.Record) {
		buf.WriteString(rec.Encode(b.OnTruncate))
		buf.WriteString(b.LineEnding)
	}

	emit(presenterHeader(ctx))
	ctx.RecordCount++
	emit(orderingHeader(ctx))
	ctx.RecordCount++

	for _, r := range ctx.Receipts {
		emit(requiredIndividual(ctx, r))
		ctx.RecordCount++
		ctx.OrderingRecords++
		if extended(ctx, r) {
			emit(optionalIndividual(ctx, r))
			ctx.RecordCount++
			ctx.OrderingRecords++
		}
		if ctx.IncludeDomicile {
			emit(addressIndividual(ctx, r))
			ctx.RecordCount++
			ctx.OrderingRecords++
		}
	}

	ctx.OrderingRecordCount = ctx.OrderingRecords + 2
	emit(orderingFooter(ctx))
	ctx.RecordCount += 2
	emit(presenterFooter(ctx))

	return buf.Bytes()
}

func newRecord(l fw.Layout, k Kind, ctx *model.RemittanceContext) *fw.Record {
	return fw.NewRecord(l).
		Set("record_code", k.RecordCode).
		Set("data_code", k.DataCode).
		Set("nif", ctx.VATNumber).
		Set("suffix", ctx.Suffix)
}

func presenterHeader(ctx *model.RemittanceContext) *fw.Record {
	return newRecord(PresenterHeader, KindPresenterHeader, ctx).
		Set("creation_date", formatDate(ctx.CreationDate)).
		Set("name", ctx.CompanyName).
		Set("bank_code", slice(ctx.BankAccount, 0, 4)).
		Set("bank_office", slice(ctx.BankAccount, 4, 8))
}

func orderingHeader(ctx *model.RemittanceContext) *fw.Record {
	return newRecord(OrderingHeader, KindOrderingHeader, ctx).
		Set("creation_date", formatDate(ctx.CreationDate)).
		Set("name", ctx.CompanyName).
		Set("account", ctx.BankAccount).
		Set("procedure", procedureCode).
		Set("ine", ctx.INECode)
}

func requiredIndividual(ctx *model.RemittanceContext, r model.Receipt) *fw.Record {
	return newRecord(RequiredIndividual, KindRequiredIndividual, ctx).
		Set("reference", r.Reference()).
		Set("name", r.Name()).
		Set("account", r.BankAccount).
		SetAmount("amount", r.Amount).
		Set("return_code", "").
		Set("internal_code", "").
		Set("concept", concept(ctx, r)).
		Set("due_date", formatDate(r.MaturityDate))
}

// extended reports whether r's communication continues in a 56/71 record.
func extended(ctx *model.RemittanceContext, r model.Receipt) bool {
	return ctx.ExtendedConcept && len(fw.ASCII(r.Communication)) > conceptWidth
}

// concept is the 56/70 concept text. When a 56/71 record carries the
// rest, only the first 40 characters belong here.
func concept(ctx *model.RemittanceContext, r model.Receipt) string {
	if extended(ctx, r) {
		return fw.ASCII(r.Communication)[:conceptWidth]
	}
	return r.Communication
}

func optionalIndividual(ctx *model.RemittanceContext, r model.Receipt) *fw.Record {
	rest := fw.ASCII(r.Communication)[conceptWidth:]
	return newRecord(OptionalIndividual, KindOptionalIndividual, ctx).
		Set("reference", r.Reference()).
		Set("concept_2", slice(rest, 0, conceptWidth)).
		Set("concept_3", slice(rest, conceptWidth, 2*conceptWidth)).
		Set("concept_4", slice(rest, 2*conceptWidth, len(rest)))
}

func addressIndividual(ctx *model.RemittanceContext, r model.Receipt) *fw.Record {
	var addr model.Address
	if r.Address != nil {
		addr = *r.Address
	}
	return newRecord(AddressIndividual, KindAddressIndividual, ctx).
		Set("reference", r.Reference()).
		Set("payer_address", addr.Street).
		Set("payer_city", addr.City).
		Set("payer_zip", addr.Zip).
		Set("ordering_city", ctx.City).
		Set("province_code", ctx.Province).
		Set("origin_date", formatDate(r.CreateDate))
}

func orderingFooter(ctx *model.RemittanceContext) *fw.Record {
	return newRecord(OrderingFooter, KindOrderingFooter, ctx).
		SetAmount("amount", ctx.Amount).
		Set("payment_line_count", itoa(ctx.OrderingRecords)).
		Set("record_count", itoa(ctx.OrderingRecordCount))
}

func presenterFooter(ctx *model.RemittanceContext) *fw.Record {
	return newRecord(PresenterFooter, KindPresenterFooter, ctx).
		Set("ordering_count", orderingCount).
		SetAmount("amount", ctx.Amount).
		Set("payment_line_count", itoa(ctx.OrderingRecords)).
		Set("record_count", itoa(ctx.RecordCount))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// slice returns s[from:to] clamped to s's bounds.
func slice(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
