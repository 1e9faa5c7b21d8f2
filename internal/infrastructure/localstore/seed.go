package localstore

import "github.com/hayashiy/billdoc/internal/domain/entity"

// SeedIssuer returns the default issuer record for a fresh store.
func SeedIssuer() *entity.PartyInfo {
	return &entity.PartyInfo{
		ID:                 "issuer-default",
		Name:               "ABC Co., Ltd.",
		PostalCode:         "160-0022",
		Address:            "1-2-3 Shinjuku, Shinjuku-ku, Tokyo",
		Phone:              "03-1234-5678",
		Fax:                "03-1234-5679",
		RegistrationNumber: "T1234567890123",
		Bank: &entity.BankAccount{
			BankName:      "Mitsubishi UFJ Bank",
			BranchName:    "Shinjuku Branch",
			AccountType:   entity.AccountOrdinary,
			AccountNumber: "1234567",
			AccountHolder: "ABC Co., Ltd.",
		},
	}
}

// SeedClients returns the default client records for a fresh store.
func SeedClients() []*entity.PartyInfo {
	return []*entity.PartyInfo{
		{
			ID:          "client-a",
			Name:        "Client A Co., Ltd.",
			ContactName: "Taro Yamada",
			PostalCode:  "100-0005",
			Address:     "1-1-1 Marunouchi, Chiyoda-ku, Tokyo",
			Phone:       "03-9876-5432",
		},
		{
			ID:          "client-b",
			Name:        "Client B Inc.",
			ContactName: "Hanako Suzuki",
			PostalCode:  "220-0012",
			Address:     "2-2-2 Minatomirai, Nishi-ku, Yokohama",
			Phone:       "045-123-4567",
		},
	}
}

// SeedIfEmpty populates a store that has no parties yet and saves it.
// A store that already holds any issuer or client is left untouched.
func SeedIfEmpty(s *Store) error {
	s.mu.Lock()
	empty := len(s.data.Issuers) == 0 && len(s.data.Clients) == 0
	if empty {
		s.data.Issuers = append(s.data.Issuers, SeedIssuer())
		s.data.Clients = append(s.data.Clients, SeedClients()...)
	}
	s.mu.Unlock()
	if !empty {
		return nil
	}
	return s.Save()
}
