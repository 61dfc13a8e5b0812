package reservation

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// NewResponseStatus parses an admin-supplied response status. Only the two
// terminal values are legal responses; "pending" is not something an admin
// can set.
func NewResponseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsTerminal() {
		return "", ErrInvalidResponseStatus
	}
	return s, nil
}
