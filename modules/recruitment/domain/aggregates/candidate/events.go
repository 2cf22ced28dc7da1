package candidate

type CreatedEvent struct {
	Result Candidate
}

// StageChangedEvent fires on every accepted pipeline transition.
type StageChangedEvent struct {
	From   Stage
	Result Candidate
}
