package events

// User change events, domain.action
const (
	EventTypeUserCreated = "user.created"
	EventTypeUserUpdated = "user.updated"
	EventTypeUserDeleted = "user.deleted"
)

const AggregateTypeUser = "user"
