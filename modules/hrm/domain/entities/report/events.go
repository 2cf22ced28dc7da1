package report

type CreatedEvent struct {
	Result Report
}

type UpdatedEvent struct {
	Result Report
}

type DeletedEvent struct {
	Result Report
}
