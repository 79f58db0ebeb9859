// Package adjfile persists the social network as a line-oriented
// adjacency-list text file. Each line holds one person and their direct
// friends:
//
//	<name>: <friend1> <friend2> ... <friendN>
//
// A person with no friends produces "<name>: ". Blank lines are skipped
// on read; a line with no colon is treated as a single person with an
// empty friend list.
package adjfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"socialnet-backend/domain/core/aggregates"
	"socialnet-backend/domain/core/valueobjects"
	pkgerrors "socialnet-backend/pkg/errors"
)

// Store reads and writes networks in the adjacency text format
type Store struct {
	logger *zap.Logger
}

// NewStore creates a new adjacency-file store
func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads the file at path into a fresh network. The caller's live
// network is never touched: on any failure the returned network is nil
// and the current state stays valid.
func (s *Store) Load(path string) (*aggregates.Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.NewStorageError("open", err)
	}
	defer file.Close()

	network, err := Decode(file)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded network from file",
		zap.String("path", path),
		zap.Int("people", network.NodeCount()),
		zap.Int("friendships", network.EdgeCount()),
	)
	return network, nil
}

// Save writes the network to the file at path. The data is written to a
// uniquely named temporary file in the same directory and renamed into
// place, so a failed save never corrupts an existing file.
func (s *Store) Save(path string, network *aggregates.Network) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	file, err := os.Create(tmp)
	if err != nil {
		return pkgerrors.NewStorageError("create", err)
	}

	if err := Encode(file, network); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return pkgerrors.NewStorageError("close", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return pkgerrors.NewStorageError("rename", err)
	}

	s.logger.Info("Saved network to file",
		zap.String("path", path),
		zap.Int("people", network.NodeCount()),
		zap.Int("friendships", network.EdgeCount()),
	)
	return nil
}

// Decode parses the adjacency text format into a fresh network
func Decode(r io.Reader) (*aggregates.Network, error) {
	network := aggregates.NewNetwork()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var rawName, rest string
		if idx := strings.IndexByte(line, ':'); idx >= 0 {
			rawName, rest = line[:idx], line[idx+1:]
		} else {
			rawName = line
		}

		source, err := valueobjects.NewPersonName(rawName)
		if err != nil {
			return nil, pkgerrors.NewValidationError(
				fmt.Sprintf("line %d: invalid person name %q", lineNo, strings.TrimSpace(rawName))).WithCause(err)
		}
		network.AddPerson(source)

		for _, token := range strings.Fields(rest) {
			neighbor, err := valueobjects.NewPersonName(token)
			if err != nil {
				return nil, pkgerrors.NewValidationError(
					fmt.Sprintf("line %d: invalid friend name %q", lineNo, token)).WithCause(err)
			}
			network.AddPerson(neighbor)
			network.AddFriend(source, neighbor)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pkgerrors.NewStorageError("read", err)
	}

	// Loading is reconstruction, not new activity
	network.MarkEventsAsCommitted()
	return network, nil
}

// Encode writes the network in the adjacency text format, one line per
// person in insertion order, friends in adjacency order.
func Encode(w io.Writer, network *aggregates.Network) error {
	bw := bufio.NewWriter(w)
	for _, person := range network.People() {
		names := make([]string, 0)
		for _, friend := range network.FriendsOf(person) {
			names = append(names, friend.String())
		}
		if _, err := fmt.Fprintf(bw, "%s: %s\n", person.String(), strings.Join(names, " ")); err != nil {
			return pkgerrors.NewStorageError("write", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return pkgerrors.NewStorageError("write", err)
	}
	return nil
}
