// Package remittance validates payment batches, aggregates them into
// receipts and produces CSB 58 documents.
package remittance

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cleared-dev/csb58/internal/bankaccount"
	"github.com/cleared-dev/csb58/internal/csb58"
	fw "github.com/cleared-dev/csb58/internal/fixedwidth"
	"github.com/cleared-dev/csb58/internal/model"
)

// AttachmentSink receives the finished document.
type AttachmentSink interface {
	Store(document []byte, name, resourceRef string) error
}

// Batch is one payment group to be remitted.
type Batch struct {
	Reference string // payment group id, e.g. "2025-03-001"
	Journal   model.Journal
	Company   model.Company
	Lines     []model.PaymentLine
	Join      bool
}

// Result is a generated remittance.
type Result struct {
	Document   []byte
	Context    *model.RemittanceContext
	FileName   string
	DocumentID uuid.UUID // content hash of Document
}

// Service runs the remittance pipeline. It holds no per-batch state, so
// independent batches may be generated concurrently.
type Service struct {
	addresses  AddressLookup
	accounts   BankAccountValidator
	logger     *slog.Logger
	now        func() time.Time
	lineEnding string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for truncation warnings and summaries.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides time.Now, which supplies the creation date and the
// default maturity date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLineEnding writes le after every record.
func WithLineEnding(le string) Option {
	return func(s *Service) { s.lineEnding = le }
}

// NewService creates a remittance Service.
func NewService(addresses AddressLookup, accounts BankAccountValidator, opts ...Option) *Service {
	s := &Service{
		addresses: addresses,
		accounts:  accounts,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare validates the batch and builds its RemittanceContext. Company
// checks run before aggregation; receipt checks run over the aggregated
// receipts.
func (s *Service) Prepare(b Batch) (*model.RemittanceContext, error) {
	if err := ValidateCompany(b.Journal, b.Company, len(b.Lines), s.accounts); err != nil {
		return nil, err
	}

	today := s.today()
	receipts, total, err := Aggregate(b.Lines, b.Journal, b.Join, today, s.addresses)
	if err != nil {
		return nil, err
	}
	if err := ValidateReceipts(receipts, b.Journal, s.accounts); err != nil {
		return nil, err
	}

	for i := range receipts {
		receipts[i].BankAccount = bankaccount.Domestic(receipts[i].BankAccount)
	}

	return &model.RemittanceContext{
		CompanyName:     b.Company.Name,
		VATNumber:       domesticVAT(b.Company.VATNumber),
		Suffix:          b.Journal.Suffix,
		INECode:         b.Journal.INECode,
		BankAccount:     bankaccount.Domestic(b.Journal.BankAccount),
		CreationDate:    today,
		City:            b.Company.City,
		Province:        b.Company.Province,
		IncludeDomicile: b.Journal.IncludeDomicile,
		ExtendedConcept: b.Journal.ExtendedConcept,
		Receipts:        receipts,
		Amount:          total,
	}, nil
}

// Generate validates, aggregates and encodes a batch. No document is
// produced when validation fails.
func (s *Service) Generate(b Batch) (Result, error) {
	ctx, err := s.Prepare(b)
	if err != nil {
		return Result{}, err
	}

	builder := &csb58.Builder{
		LineEnding: s.lineEnding,
		OnTruncate: func(tr fw.Truncation) {
			s.logger.Warn("field truncated",
				"group", b.Reference,
				"layout", tr.Layout,
				"field", tr.Field,
				"width", tr.Width,
				"value", tr.Value,
			)
		},
	}
	doc := builder.Build(ctx)

	res := Result{
		Document:   doc,
		Context:    ctx,
		FileName:   FileName(b.Reference, ctx.CreationDate),
		DocumentID: uuid.NewSHA1(uuid.Nil, doc),
	}
	s.logger.Info("remittance generated",
		"group", b.Reference,
		"receipts", len(ctx.Receipts),
		"records", ctx.RecordCount,
		"amount", ctx.Amount.StringFixed(2),
		"document_id", res.DocumentID.String(),
	)
	return res, nil
}

// Process generates the batch's document and hands it to sink.
func (s *Service) Process(b Batch, sink AttachmentSink) (Result, error) {
	res, err := s.Generate(b)
	if err != nil {
		return Result{}, err
	}
	if err := sink.Store(res.Document, res.FileName, b.Reference); err != nil {
		return Result{}, fmt.Errorf("storing %s: %w", res.FileName, err)
	}
	return res, nil
}

// FileName returns the attachment name for a payment group.
func FileName(reference string, created time.Time) string {
	if reference == "" {
		reference = created.Format("20060102")
	}
	return "csb58-" + reference + ".txt"
}

// domesticVAT returns the 9-character Spanish NIF of a VAT number that
// may carry a country prefix ("ES B12345678" -> "B12345678").
func domesticVAT(vat string) string {
	v := bankaccount.Normalize(vat)
	if len(v) > 9 && isLetter(v[0]) && isLetter(v[1]) {
		return v[2:]
	}
	return v
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
