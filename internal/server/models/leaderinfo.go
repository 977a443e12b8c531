package models

// LeaderInfo holds extra metadata for participants with a leader role.
type LeaderInfo struct {
	ID             int64
	UserFreizeitID int64
	Church         string
	Occupation     string
}
