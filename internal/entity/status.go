package entity

import "fmt"

// Status is the soft-delete lifecycle state of a stored record. Only two
// values are legal; hard deletion removes the row instead of adding a third
// state.
type Status string

const (
	StatusActive   Status = "A"
	StatusInactive Status = "I"
)

// ParseStatus rejects anything that is not a legal status so ad hoc strings
// never reach the store. Blank input is reported as invalid; callers decide
// whether blank means "default to active".
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q, want %q or %q", s, StatusActive, StatusInactive)
}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}
