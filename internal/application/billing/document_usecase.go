package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hayashiy/billdoc/internal/domain"
	"github.com/hayashiy/billdoc/internal/domain/entity"
	"github.com/hayashiy/billdoc/internal/domain/repository"
	"github.com/hayashiy/billdoc/pkg/logger"
)

// DocumentUseCase manages the lifecycle of invoices and quotations: draft
// creation with a generated id and one blank row, in-place item editing with
// garbage-tolerant numeric coercion, and validated saves.
type DocumentUseCase struct {
	invoices   repository.InvoiceRepository
	quotations repository.QuotationRepository
	issuers    repository.IssuerRepository
	clients    repository.ClientRepository
	log        *logger.Logger
}

// NewDocumentUseCase builds the use case with its persistence ports.
func NewDocumentUseCase(
	invoices repository.InvoiceRepository,
	quotations repository.QuotationRepository,
	issuers repository.IssuerRepository,
	clients repository.ClientRepository,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoices:   invoices,
		quotations: quotations,
		issuers:    issuers,
		clients:    clients,
		log:        log,
	}
}

// NewInvoiceDraft creates an unsaved invoice for the given issuer and client
// ids. The draft carries one blank line item and the default note.
func (uc *DocumentUseCase) NewInvoiceDraft(issuerID, clientID string) (*entity.Invoice, error) {
	issuer, client, err := uc.loadParties(issuerID, clientID)
	if err != nil {
		return nil, err
	}
	return entity.NewInvoice(*issuer, *client), nil
}

// NewQuotationDraft creates an unsaved quotation for the given parties.
func (uc *DocumentUseCase) NewQuotationDraft(issuerID, clientID string) (*entity.Quotation, error) {
	issuer, client, err := uc.loadParties(issuerID, clientID)
	if err != nil {
		return nil, err
	}
	return entity.NewQuotation(*issuer, *client), nil
}

func (uc *DocumentUseCase) loadParties(issuerID, clientID string) (*entity.PartyInfo, *entity.PartyInfo, error) {
	issuer, err := uc.issuers.GetByID(issuerID)
	if err != nil {
		return nil, nil, fmt.Errorf("billing: load issuer: %w", err)
	}
	if issuer == nil {
		return nil, nil, fmt.Errorf("billing: issuer %s: %w", issuerID, domain.ErrNotFound)
	}
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, nil, fmt.Errorf("billing: load client: %w", err)
	}
	if client == nil {
		return nil, nil, fmt.Errorf("billing: client %s: %w", clientID, domain.ErrNotFound)
	}
	return issuer, client, nil
}

// AddItem appends a blank row to the document and returns it.
func (uc *DocumentUseCase) AddItem(doc *entity.BillingDocument) entity.LineItem {
	it := entity.NewBlankLineItem()
	doc.Items = append(doc.Items, it)
	return it
}

// RemoveItem deletes the row with the given id, if present.
func (uc *DocumentUseCase) RemoveItem(doc *entity.BillingDocument, itemID string) {
	kept := doc.Items[:0]
	for _, it := range doc.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	doc.Items = kept
}

// UpdateItemDescription sets the description of the row with the given id.
func (uc *DocumentUseCase) UpdateItemDescription(doc *entity.BillingDocument, itemID, text string) {
	uc.updateItem(doc, itemID, func(it *entity.LineItem) { it.Description = text })
}

// UpdateItemQuantity parses raw as a quantity. Non-numeric or negative input
// coerces to zero so garbage never reaches the totals algorithm.
func (uc *DocumentUseCase) UpdateItemQuantity(doc *entity.BillingDocument, itemID, raw string) {
	uc.updateItem(doc, itemID, func(it *entity.LineItem) { it.Quantity = CoerceNumber(raw) })
}

// UpdateItemUnitPrice parses raw as a unit price with the same coercion rule.
func (uc *DocumentUseCase) UpdateItemUnitPrice(doc *entity.BillingDocument, itemID, raw string) {
	uc.updateItem(doc, itemID, func(it *entity.LineItem) { it.UnitPrice = CoerceNumber(raw) })
}

// UpdateItemTaxMode sets the row's tax mode; unknown values are ignored.
func (uc *DocumentUseCase) UpdateItemTaxMode(doc *entity.BillingDocument, itemID string, mode entity.TaxMode) {
	if !mode.Valid() {
		return
	}
	uc.updateItem(doc, itemID, func(it *entity.LineItem) { it.TaxMode = mode })
}

func (uc *DocumentUseCase) updateItem(doc *entity.BillingDocument, itemID string, fn func(*entity.LineItem)) {
	for i := range doc.Items {
		if doc.Items[i].ID == itemID {
			fn(&doc.Items[i])
			return
		}
	}
}

// SaveInvoice validates and persists inv, creating or updating by id.
// One save produces at most one write in the backing store.
func (uc *DocumentUseCase) SaveInvoice(inv *entity.Invoice) error {
	if err := validateDocument(&inv.BillingDocument); err != nil {
		return err
	}
	existing, err := uc.invoices.GetByID(inv.ID)
	if err != nil {
		return fmt.Errorf("billing: save invoice: %w", err)
	}
	if existing == nil {
		err = uc.invoices.Create(inv)
	} else {
		err = uc.invoices.Update(inv)
	}
	if err != nil {
		return fmt.Errorf("billing: save invoice: %w", err)
	}
	uc.log.Info().Str("id", inv.ID).Str("number", inv.Number).Msg("invoice saved")
	return nil
}

// SaveQuotation validates and persists q, creating or updating by id.
func (uc *DocumentUseCase) SaveQuotation(q *entity.Quotation) error {
	if err := validateDocument(&q.BillingDocument); err != nil {
		return err
	}
	existing, err := uc.quotations.GetByID(q.ID)
	if err != nil {
		return fmt.Errorf("billing: save quotation: %w", err)
	}
	if existing == nil {
		err = uc.quotations.Create(q)
	} else {
		err = uc.quotations.Update(q)
	}
	if err != nil {
		return fmt.Errorf("billing: save quotation: %w", err)
	}
	uc.log.Info().Str("id", q.ID).Str("number", q.Number).Msg("quotation saved")
	return nil
}

// DeleteInvoice removes a saved invoice by id.
func (uc *DocumentUseCase) DeleteInvoice(id string) error {
	if err := uc.invoices.Delete(id); err != nil {
		return fmt.Errorf("billing: delete invoice: %w", err)
	}
	return nil
}

// DeleteQuotation removes a saved quotation by id.
func (uc *DocumentUseCase) DeleteQuotation(id string) error {
	if err := uc.quotations.Delete(id); err != nil {
		return fmt.Errorf("billing: delete quotation: %w", err)
	}
	return nil
}

// validateDocument enforces the save rules: a document number is required and
// at least one line item must exist.
func validateDocument(doc *entity.BillingDocument) error {
	if doc.Number == "" {
		return fmt.Errorf("%w: document number is required", domain.ErrInvalidInput)
	}
	if len(doc.Items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", domain.ErrInvalidInput)
	}
	return nil
}

// CoerceNumber parses free-form numeric input. Anything that does not parse,
// and anything negative, becomes zero so garbage input never crashes totals.
func CoerceNumber(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
