package aggregates

import (
	"sort"

	"socialnet-backend/domain/core/valueobjects"
)

// MutualFriendCount returns the number of people who are direct friends
// of both a and b. Unknown names contribute an empty friend set.
func (n *Network) MutualFriendCount(a, b valueobjects.PersonName) int {
	aFriends := n.adjacency[a.String()]
	if len(aFriends) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(aFriends))
	for _, friend := range aFriends {
		seen[friend.String()] = struct{}{}
	}

	count := 0
	for _, friend := range n.adjacency[b.String()] {
		if _, ok := seen[friend.String()]; ok {
			count++
		}
	}
	return count
}

// RecommendFriends returns up to k people ranked by how many friends they
// share with the given person. Candidates that are already direct friends,
// the person themselves, or share no mutual friends are never recommended.
// An unknown name or k <= 0 yields an empty result.
//
// Ties on mutual-friend count are broken by the candidate's insertion
// order into the network: the scan walks people in insertion order and the
// sort is stable, so earlier members rank first among equals.
func (n *Network) RecommendFriends(name valueobjects.PersonName, k int) []valueobjects.PersonName {
	if k <= 0 || !n.HasPerson(name) {
		return nil
	}

	key := name.String()
	direct := make(map[string]struct{})
	for _, friend := range n.adjacency[key] {
		direct[friend.String()] = struct{}{}
	}

	type candidate struct {
		name   valueobjects.PersonName
		mutual int
	}

	var candidates []candidate
	for _, other := range n.order {
		otherKey := other.String()
		if otherKey == key {
			continue
		}
		if _, isFriend := direct[otherKey]; isFriend {
			continue
		}
		if mutual := n.MutualFriendCount(name, other); mutual > 0 {
			candidates = append(candidates, candidate{name: other, mutual: mutual})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].mutual > candidates[j].mutual
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	recommendations := make([]valueobjects.PersonName, 0, k)
	for _, c := range candidates[:k] {
		recommendations = append(recommendations, c.name)
	}
	return recommendations
}
