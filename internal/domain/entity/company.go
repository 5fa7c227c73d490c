package entity

// CompanyProfile perfil 1:1 con una cuenta de tipo empresa.
type CompanyProfile struct {
	AccountID    string
	LegalName    string
	TaxID        string // RIF, único
	Sector       string
	ContactName  string
	ContactPhone string
	ContactEmail string
}
