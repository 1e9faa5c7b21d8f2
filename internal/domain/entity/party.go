package entity

// AccountType of a Japanese bank account.
const (
	AccountOrdinary = "ordinary" // 普通
	AccountChecking = "checking" // 当座
)

// BankAccount is the issuer's transfer destination, printed on invoices.
type BankAccount struct {
	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
	AccountType   string `json:"accountType"` // AccountOrdinary or AccountChecking
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// PartyInfo holds the static identity of an issuer or a client.
// Bank and RegistrationNumber are only meaningful for issuers; clients keep
// them empty. ContactName is the client-side attention line.
type PartyInfo struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	ContactName        string       `json:"contactName,omitempty"`
	PostalCode         string       `json:"postalCode,omitempty"`
	Address            string       `json:"address,omitempty"`
	Phone              string       `json:"phone,omitempty"`
	Fax                string       `json:"fax,omitempty"`
	RegistrationNumber string       `json:"registrationNumber,omitempty"`
	Bank               *BankAccount `json:"bank,omitempty"`
}
