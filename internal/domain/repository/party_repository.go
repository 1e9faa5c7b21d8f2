package repository

import "github.com/hayashiy/billdoc/internal/domain/entity"

// IssuerRepository is the persistence port for issuer records.
type IssuerRepository interface {
	Create(p *entity.PartyInfo) error
	Update(p *entity.PartyInfo) error
	Delete(id string) error
	GetByID(id string) (*entity.PartyInfo, error)
	List() ([]*entity.PartyInfo, error)
}

// ClientRepository is the persistence port for client records.
type ClientRepository interface {
	Create(p *entity.PartyInfo) error
	Update(p *entity.PartyInfo) error
	Delete(id string) error
	GetByID(id string) (*entity.PartyInfo, error)
	List() ([]*entity.PartyInfo, error)
}
