package booking

import (
	"regexp"
	"strings"
	"time"
)

const (
	MaxNameLength  = 100
	MaxNoteLength  = 2000
	MaxPartySize   = 20
	maxEmailLength = 120
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// TimeSlot is a half-open appointment interval kept in UTC.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if !end.After(start) {
		return TimeSlot{}, ErrEndNotAfterStart
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return Customer{}, ErrInvalidCustomerName
	}
	email = strings.TrimSpace(email)
	if len(email) > maxEmailLength || !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidEmail
	}
	return Customer{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }

// Phone is the raw number as entered; normalization happens at send time.
func (c Customer) Phone() string  { return c.phone }
func (c Customer) HasPhone() bool { return c.phone != "" }

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// ReconstructCustomer, ReconstructTimeSlot and ReconstructNote rehydrate stored values without validation.
func ReconstructCustomer(name, email, phone string) Customer {
	return Customer{name: name, email: email, phone: phone}
}

func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start.UTC(), end: end.UTC()}
}

func ReconstructNote(value string) Note {
	return Note{value: value}
}
