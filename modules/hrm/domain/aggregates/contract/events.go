package contract

type CreatedEvent struct {
	Result Contract
}

type UpdatedEvent struct {
	Result Contract
}

type DeletedEvent struct {
	Result Contract
}
