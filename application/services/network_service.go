package services

import (
	"sync"

	"go.uber.org/zap"

	"socialnet-backend/domain/core/aggregates"
	"socialnet-backend/domain/core/valueobjects"
	"socialnet-backend/infrastructure/persistence/adjfile"
	pkgerrors "socialnet-backend/pkg/errors"
)

// NetworkService provides direct, synchronous access to the social graph.
// It owns the live network behind a writer-exclusive lock: the HTTP layer
// serves many clients, and the graph must never be mutated while a query
// is iterating it.
type NetworkService struct {
	mu      sync.RWMutex
	network *aggregates.Network
	store   *adjfile.Store
	logger  *zap.Logger
}

// NewNetworkService creates a new network service
func NewNetworkService(network *aggregates.Network, store *adjfile.Store, logger *zap.Logger) *NetworkService {
	return &NetworkService{
		network: network,
		store:   store,
		logger:  logger,
	}
}

// AddPerson adds a person to the network. Returns false without error if
// the name is already present.
func (s *NetworkService) AddPerson(name string) (bool, error) {
	person, err := parseName(name)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	added := s.network.AddPerson(person)
	s.drainEvents()
	return added, nil
}

// RemovePerson removes a person and every incident friendship. Returns a
// not-found error if the person is unknown.
func (s *NetworkService) RemovePerson(name string) error {
	person, err := parseName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.network.RemovePerson(person) {
		return pkgerrors.NewNotFoundError("person").WithDetails(map[string]interface{}{"name": person.String()})
	}
	s.drainEvents()
	return nil
}

// AddFriend creates a friendship. Unknown names, self-friendship, and
// duplicate friendships are quiet no-ops reported through the bool.
func (s *NetworkService) AddFriend(first, second string) (bool, error) {
	a, b, err := parsePair(first, second)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	created := s.network.AddFriend(a, b)
	s.drainEvents()
	return created, nil
}

// RemoveFriend removes the friendship between two people if one exists
func (s *NetworkService) RemoveFriend(first, second string) (bool, error) {
	a, b, err := parsePair(first, second)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.network.RemoveFriend(a, b)
	s.drainEvents()
	return removed, nil
}

// AreConnected reports whether two people are direct friends
func (s *NetworkService) AreConnected(first, second string) (bool, error) {
	a, b, err := parsePair(first, second)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network.AreConnected(a, b), nil
}

// Friends returns the direct friends of a person in adjacency order.
// Returns a not-found error if the person is unknown.
func (s *NetworkService) Friends(name string) ([]string, error) {
	person, err := parseName(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.network.HasPerson(person) {
		return nil, pkgerrors.NewNotFoundError("person").WithDetails(map[string]interface{}{"name": person.String()})
	}
	return namesOf(s.network.FriendsOf(person)), nil
}

// Recommendations returns up to k friend recommendations for a person,
// ranked by mutual-friend count. An unknown person yields an empty list.
func (s *NetworkService) Recommendations(name string, k int) ([]string, error) {
	person, err := parseName(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return namesOf(s.network.RecommendFriends(person, k)), nil
}

// ShortestPath finds the shortest chain of friendships between two people,
// optionally excluding everyone named in avoid. An empty result means no
// path exists.
func (s *NetworkService) ShortestPath(from, to string, avoid []string) ([]string, error) {
	src, dst, err := parsePair(from, to)
	if err != nil {
		return nil, err
	}
	blacklist := make([]valueobjects.PersonName, 0, len(avoid))
	for _, raw := range avoid {
		name, err := parseName(raw)
		if err != nil {
			return nil, err
		}
		blacklist = append(blacklist, name)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(blacklist) == 0 {
		return namesOf(s.network.ShortestPath(src, dst)), nil
	}
	return namesOf(s.network.ShortestPathAvoiding(src, dst, blacklist)), nil
}

// People returns everyone in the network in insertion order
func (s *NetworkService) People() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return namesOf(s.network.People())
}

// Friendships returns every friendship in insertion order
func (s *NetworkService) Friendships() []aggregates.Friendship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network.Friendships()
}

// LoadFromFile replaces the live network with the contents of the file at
// path. The file is decoded into a fresh network first; on any failure the
// current network is left untouched.
func (s *NetworkService) LoadFromFile(path string) error {
	network, err := s.store.Load(path)
	if err != nil {
		return err
	}
	s.Replace(network)
	return nil
}

// SaveToFile writes the live network to the file at path
func (s *NetworkService) SaveToFile(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Save(path, s.network)
}

// Replace atomically swaps in a new network
func (s *NetworkService) Replace(network *aggregates.Network) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.network = network
	s.logger.Info("Network replaced",
		zap.Int("people", network.NodeCount()),
		zap.Int("friendships", network.EdgeCount()),
	)
}

// drainEvents logs and clears the aggregate's uncommitted events.
// Callers must hold the write lock.
func (s *NetworkService) drainEvents() {
	for _, event := range s.network.GetUncommittedEvents() {
		s.logger.Debug("Domain event",
			zap.String("type", event.GetEventType()),
			zap.Time("occurredAt", event.GetTimestamp()),
		)
	}
	s.network.MarkEventsAsCommitted()
}

func parseName(raw string) (valueobjects.PersonName, error) {
	name, err := valueobjects.NewPersonName(raw)
	if err != nil {
		return valueobjects.PersonName{}, pkgerrors.NewValidationError(err.Error())
	}
	return name, nil
}

func parsePair(first, second string) (valueobjects.PersonName, valueobjects.PersonName, error) {
	a, err := parseName(first)
	if err != nil {
		return valueobjects.PersonName{}, valueobjects.PersonName{}, err
	}
	b, err := parseName(second)
	if err != nil {
		return valueobjects.PersonName{}, valueobjects.PersonName{}, err
	}
	return a, b, nil
}

func namesOf(people []valueobjects.PersonName) []string {
	names := make([]string, 0, len(people))
	for _, person := range people {
		names = append(names, person.String())
	}
	return names
}
