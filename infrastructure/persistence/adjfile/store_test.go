package adjfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialnet-backend/domain/core/aggregates"
	"socialnet-backend/domain/core/valueobjects"
	pkgerrors "socialnet-backend/pkg/errors"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(zap.NewNop())
}

func mustName(t *testing.T, raw string) valueobjects.PersonName {
	t.Helper()
	n, err := valueobjects.NewPersonName(raw)
	require.NoError(t, err)
	return n
}

func friendNames(t *testing.T, n *aggregates.Network, person string) []string {
	t.Helper()
	out := []string{}
	for _, f := range n.FriendsOf(mustName(t, person)) {
		out = append(out, f.String())
	}
	return out
}

func TestDecode(t *testing.T) {
	t.Run("parses people and undirected friendships", func(t *testing.T) {
		input := "A: B C\nB: A\nC: A\n"
		n, err := Decode(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, 3, n.NodeCount())
		assert.Equal(t, 2, n.EdgeCount())
		assert.True(t, n.AreConnected(mustName(t, "A"), mustName(t, "B")))
		assert.True(t, n.AreConnected(mustName(t, "C"), mustName(t, "A")))
		assert.NoError(t, n.Validate())
	})

	t.Run("mirrored lines never duplicate an edge", func(t *testing.T) {
		n, err := Decode(strings.NewReader("A: B\nB: A\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, n.EdgeCount())
	})

	t.Run("skips blank lines", func(t *testing.T) {
		n, err := Decode(strings.NewReader("\nA: B\n\n   \nB: A\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, n.NodeCount())
	})

	t.Run("trims whitespace around the source name", func(t *testing.T) {
		n, err := Decode(strings.NewReader("  A  : B\n"))
		require.NoError(t, err)
		assert.True(t, n.HasPerson(mustName(t, "A")))
	})

	t.Run("colon-less line is a lone person", func(t *testing.T) {
		n, err := Decode(strings.NewReader("Hermit\n"))
		require.NoError(t, err)
		assert.True(t, n.HasPerson(mustName(t, "Hermit")))
		assert.Empty(t, friendNames(t, n, "Hermit"))
	})

	t.Run("person with zero friends", func(t *testing.T) {
		n, err := Decode(strings.NewReader("Hermit: \n"))
		require.NoError(t, err)
		assert.True(t, n.HasPerson(mustName(t, "Hermit")))
		assert.Equal(t, 0, n.EdgeCount())
	})

	t.Run("invalid name is a validation error", func(t *testing.T) {
		_, err := Decode(strings.NewReader("A: b:c\n"))
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("decoded network carries no pending events", func(t *testing.T) {
		n, err := Decode(strings.NewReader("A: B\nB: A\n"))
		require.NoError(t, err)
		assert.Empty(t, n.GetUncommittedEvents())
	})
}

func TestEncode(t *testing.T) {
	n := aggregates.NewNetwork()
	for _, p := range []string{"A", "B", "C"} {
		n.AddPerson(mustName(t, p))
	}
	n.AddFriend(mustName(t, "A"), mustName(t, "B"))
	n.AddFriend(mustName(t, "A"), mustName(t, "C"))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, n))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4) // three lines plus trailing newline
	assert.Equal(t, "A: B C", lines[0])
	assert.Equal(t, "B: A", lines[1])
	assert.Equal(t, "C: A", lines[2])
	assert.Equal(t, "", lines[3])
}

func TestEncode_ZeroFriends(t *testing.T) {
	n := aggregates.NewNetwork()
	n.AddPerson(mustName(t, "Hermit"))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, n))
	assert.Equal(t, "Hermit: \n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	original := aggregates.NewNetwork()
	for _, p := range []string{"A", "B", "C", "D", "Hermit"} {
		original.AddPerson(mustName(t, p))
	}
	for _, f := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"D", "C"}} {
		original.AddFriend(mustName(t, f[0]), mustName(t, f[1]))
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))
	restored, err := Decode(&buf)
	require.NoError(t, err)

	// Same person set
	assert.ElementsMatch(t, namesAsStrings(original.People()), namesAsStrings(restored.People()))

	// Same friendship set as unordered pairs
	assert.Equal(t, original.EdgeCount(), restored.EdgeCount())
	for _, f := range original.Friendships() {
		assert.True(t, restored.AreConnected(f.First, f.Second),
			"missing friendship %s-%s after round trip", f.First, f.Second)
	}
	assert.NoError(t, restored.Validate())
}

func TestStore_LoadAndSave(t *testing.T) {
	store := testStore(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "network.txt")

	n := aggregates.NewNetwork()
	for _, p := range []string{"A", "B"} {
		n.AddPerson(mustName(t, p))
	}
	n.AddFriend(mustName(t, "A"), mustName(t, "B"))

	require.NoError(t, store.Save(path, n))

	t.Run("save leaves no temp files behind", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "network.txt", entries[0].Name())
	})

	t.Run("load reconstructs the saved network", func(t *testing.T) {
		loaded, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.NodeCount())
		assert.True(t, loaded.AreConnected(mustName(t, "A"), mustName(t, "B")))
	})

	t.Run("load of a missing file is a storage error", func(t *testing.T) {
		_, err := store.Load(filepath.Join(dir, "missing.txt"))
		require.Error(t, err)
		assert.Equal(t, 500, pkgerrors.StatusCode(err))
	})

	t.Run("failed save preserves the existing file", func(t *testing.T) {
		err := store.Save(filepath.Join(dir, "no-such-dir", "network.txt"), n)
		require.Error(t, err)

		loaded, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.NodeCount())
	})
}

func namesAsStrings(people []valueobjects.PersonName) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.String())
	}
	return out
}
