package models

import "time"

// ClassMode is how a class is delivered. The same set is enforced by a CHECK
// constraint on every classes table, so the database rejects anything else
// even if it gets past the application.
type ClassMode string

const (
	ModeInPerson           ClassMode = "In Person"
	ModeHybrid             ClassMode = "Hybrid"
	ModeAsynchronousOnline ClassMode = "Asynchronous Online"
	ModeSynchronousOnline  ClassMode = "Synchronous Online"
)

// ClassModes returns all delivery modes accepted by the schema.
func ClassModes() []ClassMode {
	return []ClassMode{
		ModeInPerson,
		ModeHybrid,
		ModeAsynchronousOnline,
		ModeSynchronousOnline,
	}
}

// Valid reports whether m is one of the enumerated delivery modes.
func (m ClassMode) Valid() bool {
	switch m {
	case ModeInPerson, ModeHybrid, ModeAsynchronousOnline, ModeSynchronousOnline:
		return true
	}
	return false
}

// Class represents one class offering within a single term.
// LastUpdated is maintained by a database trigger, not by callers.
type Class struct {
	Number      int64     `json:"number" validate:"required"`
	Code        string    `json:"code" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Mode        ClassMode `json:"mode" validate:"required"`
	LastUpdated time.Time `json:"last_updated"`
}

// Meeting is one scheduled meeting slot of a class. Place conventionally
// matches a room name but the schema does not enforce that reference.
type Meeting struct {
	Place string `json:"place"`
	Time  string `json:"time"`
}

// ClassDetail is a class joined with its instructors and meetings.
type ClassDetail struct {
	Class
	Instructors []string  `json:"instructors"`
	Meetings    []Meeting `json:"meetings"`
}
