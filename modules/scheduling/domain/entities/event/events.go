package event

type CreatedEvent struct {
	Result Event
}

type UpdatedEvent struct {
	Result Event
}

type DeletedEvent struct {
	Result Event
}
