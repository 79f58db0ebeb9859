package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutualFriendCount(t *testing.T) {
	n := diamond(t)

	t.Run("counts shared direct friends", func(t *testing.T) {
		// A and C share B and D
		assert.Equal(t, 2, n.MutualFriendCount(name(t, "A"), name(t, "C")))
	})

	t.Run("is symmetric", func(t *testing.T) {
		assert.Equal(t,
			n.MutualFriendCount(name(t, "A"), name(t, "C")),
			n.MutualFriendCount(name(t, "C"), name(t, "A")),
		)
	})

	t.Run("direct friends with no shared contacts", func(t *testing.T) {
		// A and B are friends of each other but share nobody
		assert.Equal(t, 0, n.MutualFriendCount(name(t, "A"), name(t, "B")))
		assert.Equal(t, 2, n.MutualFriendCount(name(t, "B"), name(t, "D")))
	})

	t.Run("unknown names count zero", func(t *testing.T) {
		assert.Equal(t, 0, n.MutualFriendCount(name(t, "A"), name(t, "Nobody")))
	})
}

func TestRecommendFriends(t *testing.T) {
	t.Run("diamond scenario recommends across the gap", func(t *testing.T) {
		n := diamond(t)
		recs := asStrings(n.RecommendFriends(name(t, "A"), 1))
		assert.Equal(t, []string{"C"}, recs)
	})

	t.Run("never recommends self, direct friends, or strangers", func(t *testing.T) {
		n := buildNetwork(t,
			[]string{"A", "B", "C", "D", "E", "Loner"},
			[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"C", "E"}},
		)
		direct := map[string]bool{}
		for _, f := range n.FriendsOf(name(t, "A")) {
			direct[f.String()] = true
		}

		recs := n.RecommendFriends(name(t, "A"), 10)
		require.NotEmpty(t, recs)
		for _, rec := range recs {
			assert.NotEqual(t, "A", rec.String())
			assert.False(t, direct[rec.String()], "recommended an existing friend %s", rec)
			assert.Greater(t, n.MutualFriendCount(name(t, "A"), rec), 0)
		}
		// Loner shares no friends with anyone and must never surface
		assert.NotContains(t, asStrings(recs), "Loner")
	})

	t.Run("ranks by mutual-friend count descending", func(t *testing.T) {
		// D shares B and C with A; E shares only C
		n := buildNetwork(t,
			[]string{"A", "B", "C", "D", "E"},
			[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"C", "E"}},
		)
		recs := asStrings(n.RecommendFriends(name(t, "A"), 5))
		assert.Equal(t, []string{"D", "E"}, recs)
	})

	t.Run("ties break by insertion order", func(t *testing.T) {
		// X and Y both share exactly B with A; X was inserted first
		n := buildNetwork(t,
			[]string{"A", "B", "X", "Y"},
			[][2]string{{"A", "B"}, {"B", "Y"}, {"B", "X"}},
		)
		recs := asStrings(n.RecommendFriends(name(t, "A"), 2))
		assert.Equal(t, []string{"X", "Y"}, recs)
	})

	t.Run("k limits the result", func(t *testing.T) {
		n := buildNetwork(t,
			[]string{"A", "B", "C", "D", "E"},
			[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"C", "E"}},
		)
		assert.Len(t, n.RecommendFriends(name(t, "A"), 1), 1)
		assert.Len(t, n.RecommendFriends(name(t, "A"), 100), 2)
		assert.Empty(t, n.RecommendFriends(name(t, "A"), 0))
		assert.Empty(t, n.RecommendFriends(name(t, "A"), -3))
	})

	t.Run("unknown person yields no recommendations", func(t *testing.T) {
		n := diamond(t)
		assert.Empty(t, n.RecommendFriends(name(t, "Nobody"), 3))
	})
}
