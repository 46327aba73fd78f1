package messagebus

import "fmt"

// The set of statuses a contact message moves through. Transitions are not
// enforced.
var (
	StatusUnread  = newStatus("UNREAD")
	StatusRead    = newStatus("READ")
	StatusReplied = newStatus("REPLIED")
)

// =============================================================================

// Set of known statuses.
var statuses = make(map[string]Status)

// Status represents the handling state of a contact message.
type Status struct {
	value string
}

func newStatus(status string) Status {
	s := Status{status}
	statuses[status] = s
	return s
}

// String returns the name of the status.
func (s Status) String() string {
	return s.value
}

// Equal provides support for the go-cmp package and testing.
func (s Status) Equal(s2 Status) bool {
	return s.value == s2.value
}

// MarshalText provides support for logging and any marshal needs.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// =============================================================================

// ParseStatus parses the string value and returns a status if one exists.
func ParseStatus(value string) (Status, error) {
	status, exists := statuses[value]
	if !exists {
		return Status{}, fmt.Errorf("invalid status %q", value)
	}

	return status, nil
}

// MustParseStatus parses the string value and returns a status if one
// exists. If an error occurs the function panics.
func MustParseStatus(value string) Status {
	status, err := ParseStatus(value)
	if err != nil {
		panic(err)
	}

	return status
}
