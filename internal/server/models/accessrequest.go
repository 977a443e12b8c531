package models

import "time"

// AccessRequestStatus is an open enum. Only pending and approved exist today;
// the string form leaves room for further terminal states without a schema
// change.
type AccessRequestStatus string

const (
	AccessRequestPending  AccessRequestStatus = "pending"
	AccessRequestApproved AccessRequestStatus = "approved"
)

// AccessRequest records that RequestedBy wants visibility into UserID's trip
// data. It starts pending and can only move to approved.
type AccessRequest struct {
	ID          int64
	UserID      int64
	RequestedBy int64
	Status      AccessRequestStatus
	CreatedAt   time.Time
}
