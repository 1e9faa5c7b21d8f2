package repository

import "github.com/hayashiy/billdoc/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices.
// GetByID returns (nil, nil) when the id is unknown.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	Update(inv *entity.Invoice) error
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
}

// QuotationRepository is the persistence port for quotations.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	Update(q *entity.Quotation) error
	Delete(id string) error
	GetByID(id string) (*entity.Quotation, error)
	List() ([]*entity.Quotation, error)
}
