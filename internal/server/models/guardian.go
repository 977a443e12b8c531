package models

// Guardian is a legal-guardian contact attached to a participant row.
type Guardian struct {
	ID             int64
	UserFreizeitID int64
	FirstName      string
	LastName       string
	AddressStreet  string
	AddressNumber  string
	AddressZip     string
	AddressCity    string
	AddressCountry string
	Phone          string
	Email          string
}
