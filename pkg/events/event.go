package events

import "time"

// Event type codes published on the bus.
const (
	UserSignedUp       = "USER_SIGNED_UP"
	ReviewCompleted    = "REVIEW_COMPLETED"
	SubscriptionActive = "SUBSCRIPTION_ACTIVATED"
	InterestExpressed  = "INTEREST_EXPRESSED"
)

// Event is the contract for everything published on the bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds an event stamped with the current time.
func New(eventType string, data map[string]interface{}) Event {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
