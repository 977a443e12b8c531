package models

import "time"

// Freizeit is an organized group trip, including the venue address, the
// organizing church, and object-storage keys for the uploaded logos (empty
// when no logo was provided).
type Freizeit struct {
	ID             int64
	Title          string
	Location       string
	AddressStreet  string
	AddressNumber  string
	AddressZip     string
	AddressCity    string
	AddressCountry string
	StartDate      string
	EndDate        string
	Theme          string
	ChurchName     string
	ChurchStreet   string
	ChurchNumber   string
	ChurchZip      string
	ChurchCity     string
	ChurchCountry  string
	LogoKey        string
	ChurchLogoKey  string
	CreatedAt      time.Time
}
