package doctemplate

type CreatedEvent struct {
	Result DocTemplate
}

type UpdatedEvent struct {
	Result DocTemplate
}

type DeletedEvent struct {
	Result DocTemplate
}
