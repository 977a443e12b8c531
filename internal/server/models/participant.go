package models

// Participant links a user to a Freizeit with a per-trip role and the
// sensitive care data (allergies, medication, permissions) that access
// requests gate visibility into.
type Participant struct {
	ID                 int64
	UserID             int64
	FreizeitID         int64
	Role               string
	AddressStreet      string
	AddressNumber      string
	AddressZip         string
	AddressCity        string
	AddressCountry     string
	Phone              string
	Allergies          string
	FoodPreferences    string
	SwimmingPermission bool
	Medications        string
	SpecialNeeds       string
	Motto              string
}
