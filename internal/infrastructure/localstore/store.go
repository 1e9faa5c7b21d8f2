// Package localstore is the canonical keyed store for billing records.
//
// It collapses what used to be two divergent persistence strategies into a
// single abstraction: every entity type (invoice, quotation, issuer, client)
// gets add/update/delete against one in-memory snapshot, and Save persists
// the whole mapping with exactly one atomic file write (temp file + rename).
// No partially-written state file can ever be observed.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hayashiy/billdoc/internal/domain"
	"github.com/hayashiy/billdoc/internal/domain/entity"
	"github.com/hayashiy/billdoc/internal/domain/repository"
)

// snapshot is the persisted key-value mapping, one key per entity collection.
type snapshot struct {
	Invoices   []*entity.Invoice   `json:"invoices"`
	Quotations []*entity.Quotation `json:"quotations"`
	Issuers    []*entity.PartyInfo `json:"issuers"`
	Clients    []*entity.PartyInfo `json:"clients"`
}

// Store holds the records of all entity types behind one file.
type Store struct {
	path string
	mu   sync.Mutex
	data snapshot
}

// Open loads the store file at path. A missing file yields an empty store;
// a corrupt one is an error rather than silent data loss.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("localstore: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the whole snapshot in a single atomic step: marshal once,
// write a sibling temp file, rename over the target.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".billdoc-*.json")
	if err != nil {
		return fmt.Errorf("localstore: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("localstore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("localstore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("localstore: rename: %w", err)
	}
	return nil
}

// Repository views over the shared snapshot.

// Invoices returns the invoice repository backed by this store.
func (s *Store) Invoices() repository.InvoiceRepository { return invoiceRepo{s} }

// Quotations returns the quotation repository backed by this store.
func (s *Store) Quotations() repository.QuotationRepository { return quotationRepo{s} }

// Issuers returns the issuer repository backed by this store.
func (s *Store) Issuers() repository.IssuerRepository { return issuerRepo{s} }

// Clients returns the client repository backed by this store.
func (s *Store) Clients() repository.ClientRepository { return clientRepo{s} }

// ── generic collection helpers ────────────────────────────────────────────────

func indexOf[T any](list []*T, id func(*T) string, want string) int {
	for i, item := range list {
		if id(item) == want {
			return i
		}
	}
	return -1
}

func createIn[T any](s *Store, list *[]*T, id func(*T) string, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(*list, id, id(item)) >= 0 {
		return fmt.Errorf("localstore: id %s: %w", id(item), domain.ErrDuplicate)
	}
	*list = append(*list, item)
	return nil
}

func updateIn[T any](s *Store, list *[]*T, id func(*T) string, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(*list, id, id(item))
	if i < 0 {
		return fmt.Errorf("localstore: id %s: %w", id(item), domain.ErrNotFound)
	}
	(*list)[i] = item
	return nil
}

func deleteIn[T any](s *Store, list *[]*T, id func(*T) string, want string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(*list, id, want)
	if i < 0 {
		return fmt.Errorf("localstore: id %s: %w", want, domain.ErrNotFound)
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	return nil
}

// getFrom returns (nil, nil) on a missing id, matching the repository
// contract.
func getFrom[T any](s *Store, list []*T, id func(*T) string, want string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(list, id, want); i >= 0 {
		return list[i], nil
	}
	return nil, nil
}

func listFrom[T any](s *Store, list []*T) ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*T, len(list))
	copy(out, list)
	return out, nil
}

// ── adapters ──────────────────────────────────────────────────────────────────

func invoiceID(i *entity.Invoice) string     { return i.ID }
func quotationID(q *entity.Quotation) string { return q.ID }
func partyID(p *entity.PartyInfo) string     { return p.ID }

type invoiceRepo struct{ s *Store }

func (r invoiceRepo) Create(inv *entity.Invoice) error {
	return createIn(r.s, &r.s.data.Invoices, invoiceID, inv)
}
func (r invoiceRepo) Update(inv *entity.Invoice) error {
	return updateIn(r.s, &r.s.data.Invoices, invoiceID, inv)
}
func (r invoiceRepo) Delete(id string) error {
	return deleteIn(r.s, &r.s.data.Invoices, invoiceID, id)
}
func (r invoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return getFrom(r.s, r.s.data.Invoices, invoiceID, id)
}
func (r invoiceRepo) List() ([]*entity.Invoice, error) {
	return listFrom(r.s, r.s.data.Invoices)
}

type quotationRepo struct{ s *Store }

func (r quotationRepo) Create(q *entity.Quotation) error {
	return createIn(r.s, &r.s.data.Quotations, quotationID, q)
}
func (r quotationRepo) Update(q *entity.Quotation) error {
	return updateIn(r.s, &r.s.data.Quotations, quotationID, q)
}
func (r quotationRepo) Delete(id string) error {
	return deleteIn(r.s, &r.s.data.Quotations, quotationID, id)
}
func (r quotationRepo) GetByID(id string) (*entity.Quotation, error) {
	return getFrom(r.s, r.s.data.Quotations, quotationID, id)
}
func (r quotationRepo) List() ([]*entity.Quotation, error) {
	return listFrom(r.s, r.s.data.Quotations)
}

type issuerRepo struct{ s *Store }

func (r issuerRepo) Create(p *entity.PartyInfo) error {
	return createIn(r.s, &r.s.data.Issuers, partyID, p)
}
func (r issuerRepo) Update(p *entity.PartyInfo) error {
	return updateIn(r.s, &r.s.data.Issuers, partyID, p)
}
func (r issuerRepo) Delete(id string) error {
	return deleteIn(r.s, &r.s.data.Issuers, partyID, id)
}
func (r issuerRepo) GetByID(id string) (*entity.PartyInfo, error) {
	return getFrom(r.s, r.s.data.Issuers, partyID, id)
}
func (r issuerRepo) List() ([]*entity.PartyInfo, error) {
	return listFrom(r.s, r.s.data.Issuers)
}

type clientRepo struct{ s *Store }

func (r clientRepo) Create(p *entity.PartyInfo) error {
	return createIn(r.s, &r.s.data.Clients, partyID, p)
}
func (r clientRepo) Update(p *entity.PartyInfo) error {
	return updateIn(r.s, &r.s.data.Clients, partyID, p)
}
func (r clientRepo) Delete(id string) error {
	return deleteIn(r.s, &r.s.data.Clients, partyID, id)
}
func (r clientRepo) GetByID(id string) (*entity.PartyInfo, error) {
	return getFrom(r.s, r.s.data.Clients, partyID, id)
}
func (r clientRepo) List() ([]*entity.PartyInfo, error) {
	return listFrom(r.s, r.s.data.Clients)
}
