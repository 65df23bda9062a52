package catalog

// UpdateOutcome tags the result of an update or patch.
type UpdateOutcome int

const (
	// OutcomeNotFound means no row exists for the requested ID.
	OutcomeNotFound UpdateOutcome = iota
	// OutcomeUnchanged means the payload matched the stored row; no
	// write and no audit record were produced.
	OutcomeUnchanged
	// OutcomeUpdated means the row was mutated.
	OutcomeUpdated
)
