package aggregates

import (
	"socialnet-backend/domain/core/valueobjects"
)

// ShortestPath finds the shortest path between two people using BFS.
// The returned slice runs from `from` to `to` inclusive; its length is the
// hop distance plus one. An unknown endpoint or an unreachable target
// yields nil. When from equals to and the person exists, the single-node
// path is returned.
//
// Neighbors are explored in edge-insertion order, so the path returned
// among equal-length alternatives is deterministic for a given mutation
// history.
func (n *Network) ShortestPath(from, to valueobjects.PersonName) []valueobjects.PersonName {
	return n.bfs(from, to, nil)
}

// ShortestPathAvoiding behaves like ShortestPath except that any person
// named in the blacklist is excluded from traversal entirely. A
// blacklisted endpoint makes the target unreachable; blacklist names not
// present in the network are silently ignored.
func (n *Network) ShortestPathAvoiding(from, to valueobjects.PersonName, blacklist []valueobjects.PersonName) []valueobjects.PersonName {
	excluded := make(map[string]struct{}, len(blacklist))
	for _, name := range blacklist {
		excluded[name.String()] = struct{}{}
	}
	return n.bfs(from, to, excluded)
}

func (n *Network) bfs(from, to valueobjects.PersonName, excluded map[string]struct{}) []valueobjects.PersonName {
	fromKey, toKey := from.String(), to.String()
	if !n.HasPerson(from) || !n.HasPerson(to) {
		return nil
	}
	if _, banned := excluded[fromKey]; banned {
		return nil
	}
	if _, banned := excluded[toKey]; banned {
		return nil
	}
	if fromKey == toKey {
		return []valueobjects.PersonName{from}
	}

	visited := map[string]bool{fromKey: true}
	parent := make(map[string]valueobjects.PersonName)
	queue := []valueobjects.PersonName{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range n.adjacency[current.String()] {
			key := next.String()
			if visited[key] {
				continue
			}
			if _, banned := excluded[key]; banned {
				continue
			}
			// First discovery fixes the distance; classic unweighted-BFS optimality
			visited[key] = true
			parent[key] = current

			if key == toKey {
				return reconstructPath(from, next, parent)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

func reconstructPath(from, to valueobjects.PersonName, parent map[string]valueobjects.PersonName) []valueobjects.PersonName {
	reversed := []valueobjects.PersonName{to}
	for current := to; !current.Equals(from); {
		current = parent[current.String()]
		reversed = append(reversed, current)
	}

	path := make([]valueobjects.PersonName, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
