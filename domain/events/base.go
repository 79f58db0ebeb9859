package events

import (
	"time"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// Person Events

// PersonAdded is raised when a new person joins the network
type PersonAdded struct {
	BaseEvent
	Name string `json:"name"`
}

// NewPersonAdded creates a PersonAdded event
func NewPersonAdded(name string, timestamp time.Time) PersonAdded {
	return PersonAdded{
		BaseEvent: BaseEvent{
			EventType: "person.added",
			Timestamp: timestamp,
		},
		Name: name,
	}
}

// PersonRemoved is raised when a person is removed along with their friendships
type PersonRemoved struct {
	BaseEvent
	Name               string `json:"name"`
	RemovedFriendships int    `json:"removed_friendships"`
}

// NewPersonRemoved creates a PersonRemoved event
func NewPersonRemoved(name string, removedFriendships int, timestamp time.Time) PersonRemoved {
	return PersonRemoved{
		BaseEvent: BaseEvent{
			EventType: "person.removed",
			Timestamp: timestamp,
		},
		Name:               name,
		RemovedFriendships: removedFriendships,
	}
}

// Friendship Events

// FriendshipCreated is raised when two people become friends
type FriendshipCreated struct {
	BaseEvent
	First  string `json:"first"`
	Second string `json:"second"`
}

// NewFriendshipCreated creates a FriendshipCreated event
func NewFriendshipCreated(first, second string, timestamp time.Time) FriendshipCreated {
	return FriendshipCreated{
		BaseEvent: BaseEvent{
			EventType: "friendship.created",
			Timestamp: timestamp,
		},
		First:  first,
		Second: second,
	}
}

// FriendshipRemoved is raised when a friendship is dissolved
type FriendshipRemoved struct {
	BaseEvent
	First  string `json:"first"`
	Second string `json:"second"`
}

// NewFriendshipRemoved creates a FriendshipRemoved event
func NewFriendshipRemoved(first, second string, timestamp time.Time) FriendshipRemoved {
	return FriendshipRemoved{
		BaseEvent: BaseEvent{
			EventType: "friendship.removed",
			Timestamp: timestamp,
		},
		First:  first,
		Second: second,
	}
}
