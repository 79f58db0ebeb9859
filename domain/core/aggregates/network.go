package aggregates

import (
	"errors"
	"time"

	"socialnet-backend/domain/core/valueobjects"
	"socialnet-backend/domain/events"
)

// Network is the aggregate root for the social graph.
// It owns the set of people and the set of friendships and ensures the
// consistency boundaries for both: no dangling friendships, no duplicate
// pairs, no self-friendships, no duplicate names.
//
// People are looked up through a hashed adjacency index; each person's
// friend list is kept in edge-insertion order so that traversal and
// persistence are deterministic for a given mutation history.
type Network struct {
	order       []valueobjects.PersonName            // people in insertion order
	adjacency   map[string][]valueobjects.PersonName // name -> friends in edge-insertion order
	friendships []Friendship                         // friendships in insertion order
	events      []events.DomainEvent
}

// Friendship is an unordered pair of two distinct people.
type Friendship struct {
	First  valueobjects.PersonName `json:"first"`
	Second valueobjects.PersonName `json:"second"`
}

// Connects reports whether this friendship links a and b, in either order.
func (f Friendship) Connects(a, b valueobjects.PersonName) bool {
	return (f.First.Equals(a) && f.Second.Equals(b)) ||
		(f.First.Equals(b) && f.Second.Equals(a))
}

// NewNetwork creates an empty social network
func NewNetwork() *Network {
	return &Network{
		adjacency: make(map[string][]valueobjects.PersonName),
	}
}

// AddPerson inserts a person into the network. Adding a name that is
// already present is a no-op, not an error. Returns true if the person
// was added.
func (n *Network) AddPerson(name valueobjects.PersonName) bool {
	key := name.String()
	if _, exists := n.adjacency[key]; exists {
		return false
	}
	n.adjacency[key] = nil
	n.order = append(n.order, name)
	n.addEvent(events.NewPersonAdded(key, time.Now()))
	return true
}

// RemovePerson deletes a person and every friendship incident to them.
// Returns false if the person is unknown.
func (n *Network) RemovePerson(name valueobjects.PersonName) bool {
	key := name.String()
	neighbors, exists := n.adjacency[key]
	if !exists {
		return false
	}

	// Cascade: drop the person from each neighbor's friend list
	for _, friend := range neighbors {
		n.adjacency[friend.String()] = withoutName(n.adjacency[friend.String()], name)
	}
	removed := len(neighbors)
	delete(n.adjacency, key)

	kept := make([]Friendship, 0, len(n.friendships))
	for _, f := range n.friendships {
		if f.First.Equals(name) || f.Second.Equals(name) {
			continue
		}
		kept = append(kept, f)
	}
	n.friendships = kept
	n.order = withoutName(n.order, name)

	n.addEvent(events.NewPersonRemoved(key, removed, time.Now()))
	return true
}

// AddFriend creates a friendship between two people. Both must already
// exist and be distinct; a duplicate friendship is a no-op. Argument
// order is irrelevant to the resulting edge. Returns true if a new
// friendship was created.
func (n *Network) AddFriend(a, b valueobjects.PersonName) bool {
	if a.Equals(b) {
		return false
	}
	if !n.HasPerson(a) || !n.HasPerson(b) {
		return false
	}
	if n.AreConnected(a, b) {
		return false
	}

	n.adjacency[a.String()] = append(n.adjacency[a.String()], b)
	n.adjacency[b.String()] = append(n.adjacency[b.String()], a)
	n.friendships = append(n.friendships, Friendship{First: a, Second: b})

	n.addEvent(events.NewFriendshipCreated(a.String(), b.String(), time.Now()))
	return true
}

// RemoveFriend deletes the friendship between two people if one exists.
// Unknown names or a missing friendship are no-ops, not errors.
// Returns true if a friendship was removed.
func (n *Network) RemoveFriend(a, b valueobjects.PersonName) bool {
	if !n.AreConnected(a, b) {
		return false
	}

	n.adjacency[a.String()] = withoutName(n.adjacency[a.String()], b)
	n.adjacency[b.String()] = withoutName(n.adjacency[b.String()], a)

	kept := make([]Friendship, 0, len(n.friendships))
	for _, f := range n.friendships {
		if f.Connects(a, b) {
			continue
		}
		kept = append(kept, f)
	}
	n.friendships = kept

	n.addEvent(events.NewFriendshipRemoved(a.String(), b.String(), time.Now()))
	return true
}

// AreConnected reports whether a friendship exists between the two people.
// If either name is unknown the result is simply false.
func (n *Network) AreConnected(a, b valueobjects.PersonName) bool {
	for _, friend := range n.adjacency[a.String()] {
		if friend.Equals(b) {
			return true
		}
	}
	return false
}

// HasPerson reports whether a person exists in the network
func (n *Network) HasPerson(name valueobjects.PersonName) bool {
	_, exists := n.adjacency[name.String()]
	return exists
}

// FriendsOf returns the direct friends of a person in edge-insertion order.
// An unknown person yields an empty list.
func (n *Network) FriendsOf(name valueobjects.PersonName) []valueobjects.PersonName {
	neighbors := n.adjacency[name.String()]
	friends := make([]valueobjects.PersonName, len(neighbors))
	copy(friends, neighbors)
	return friends
}

// People returns everyone in the network in insertion order
func (n *Network) People() []valueobjects.PersonName {
	people := make([]valueobjects.PersonName, len(n.order))
	copy(people, n.order)
	return people
}

// Friendships returns all friendships in insertion order
func (n *Network) Friendships() []Friendship {
	friendships := make([]Friendship, len(n.friendships))
	copy(friendships, n.friendships)
	return friendships
}

// NodeCount returns the number of people in the network
func (n *Network) NodeCount() int {
	return len(n.order)
}

// EdgeCount returns the number of friendships in the network
func (n *Network) EdgeCount() int {
	return len(n.friendships)
}

// Validate ensures graph invariants
func (n *Network) Validate() error {
	if len(n.order) != len(n.adjacency) {
		return errors.New("person index out of sync with insertion order")
	}

	seen := make(map[[2]string]bool, len(n.friendships))
	for _, f := range n.friendships {
		if f.First.Equals(f.Second) {
			return errors.New("friendship connects a person to itself")
		}
		if !n.HasPerson(f.First) || !n.HasPerson(f.Second) {
			return errors.New("friendship references an unknown person")
		}
		key := pairKey(f.First, f.Second)
		if seen[key] {
			return errors.New("duplicate friendship between the same pair")
		}
		seen[key] = true
	}

	edges := 0
	for name, neighbors := range n.adjacency {
		for _, friend := range neighbors {
			if friend.String() == name {
				return errors.New("adjacency lists a self-friendship")
			}
			if !n.HasPerson(friend) {
				return errors.New("adjacency references an unknown person")
			}
			edges++
		}
	}
	if edges != 2*len(n.friendships) {
		return errors.New("adjacency out of sync with friendship list")
	}

	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (n *Network) GetUncommittedEvents() []events.DomainEvent {
	drained := make([]events.DomainEvent, len(n.events))
	copy(drained, n.events)
	return drained
}

// MarkEventsAsCommitted clears all uncommitted events
func (n *Network) MarkEventsAsCommitted() {
	n.events = nil
}

func (n *Network) addEvent(event events.DomainEvent) {
	n.events = append(n.events, event)
}

func withoutName(names []valueobjects.PersonName, drop valueobjects.PersonName) []valueobjects.PersonName {
	kept := names[:0]
	for _, name := range names {
		if !name.Equals(drop) {
			kept = append(kept, name)
		}
	}
	return kept
}

func pairKey(a, b valueobjects.PersonName) [2]string {
	if a.String() < b.String() {
		return [2]string{a.String(), b.String()}
	}
	return [2]string{b.String(), a.String()}
}
