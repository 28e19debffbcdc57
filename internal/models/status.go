// Package models defines the demo's domain types: the closed Status set and
// the User record.
package models

import "errors"

// Status classifies a user as active or inactive. The set is closed; use
// ParseStatus to map untrusted labels onto it.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var ErrUnknownStatus = errors.New("unknown status")

// ParseStatus maps a label onto its Status variant. Anything other than the
// two known labels is rejected with ErrUnknownStatus.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", ErrUnknownStatus
	}
}

func (s Status) String() string {
	return string(s)
}
