package clients

import "time"

// requestTimeout bounds every remote call, neither collaborator specifies
// an SLA so we pick a conservative cap
const requestTimeout = 10 * time.Second

// DeleteOutcome classifies a single remote delete attempt
type DeleteOutcome int

const (
	// OutcomeDeleted means the remote system confirmed the deletion
	OutcomeDeleted DeleteOutcome = iota
	// OutcomeNotFound means the record was already absent, which is the
	// desired end state and counts as success
	OutcomeNotFound
	// OutcomeError means the attempt failed and the record may still exist
	OutcomeError
)

// Resolved reports whether the record is gone from the remote system
func (o DeleteOutcome) Resolved() bool {
	return o == OutcomeDeleted || o == OutcomeNotFound
}

func (o DeleteOutcome) String() string {
	switch o {
	case OutcomeDeleted:
		return "deleted"
	case OutcomeNotFound:
		return "not_found"
	}
	return "error"
}
