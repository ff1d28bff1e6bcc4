package sngraph

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Kind identifies the shape of a feed record.
type Kind uint8

// Feed record kinds.
const (
	KindUser Kind = iota
	KindPost
	KindFollower
)

func (k Kind) isValid() bool { return k <= KindFollower }

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindPost:
		return "post"
	case KindFollower:
		return "follower"
	}
	return "unknown"
}

// Record is a single entry of a graph construction feed: a user, post
// or follower declaration. The graph is agnostic to how records are
// produced (markup documents, flat files, direct calls), it only
// requires that producers preserve the per-user ordering of posts.
type Record struct {
	Kind       Kind     `json:"kind" msgpack:"kind"`
	UserID     string   `json:"user_id" msgpack:"user_id"`
	Name       string   `json:"name,omitempty" msgpack:"name,omitempty"`
	Body       string   `json:"body,omitempty" msgpack:"body,omitempty"`
	Topics     []string `json:"topics,omitempty" msgpack:"topics,omitempty"`
	FollowerID string   `json:"follower_id,omitempty" msgpack:"follower_id,omitempty"`
}

// Validate checks the record shape. Graph-level conditions such as
// unknown targets or duplicates are not errors and are left to
// replay.
func (r *Record) Validate() error {
	if !r.Kind.isValid() {
		return errors.Errorf("sngraph: invalid record kind %d", r.Kind)
	}
	if r.UserID == "" {
		return errors.Errorf("sngraph: %s record without user id", r.Kind)
	}
	if r.Kind == KindFollower && r.FollowerID == "" {
		return errors.New("sngraph: follower record without follower id")
	}
	return nil
}

// Replayer applies feed records to a graph.
type Replayer struct {
	// Logger receives a debug line for every record the graph
	// ignored. Optional, defaults to a discard logger.
	Logger logrus.FieldLogger
}

// Build replays records into a fresh graph.
func (p *Replayer) Build(records []Record) (*Graph, error) {
	g := New()
	if err := p.Replay(g, records); err != nil {
		return nil, err
	}
	return g, nil
}

// Replay validates and applies records in order. It stops at the
// first malformed record. Records the graph ignores under its no-op
// semantics are logged and skipped.
func (p *Replayer) Replay(g *Graph, records []Record) error {
	logger := p.logger()

	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return errors.Wrapf(err, "record %d", i)
		}

		var applied bool
		switch rec.Kind {
		case KindUser:
			applied = g.AddUser(rec.UserID, rec.Name)
		case KindPost:
			applied = g.AddPost(rec.UserID, rec.Body, rec.Topics)
		case KindFollower:
			applied = g.AddFollower(rec.UserID, rec.FollowerID)
		}

		if !applied {
			logger.WithFields(logrus.Fields{
				"record": i,
				"kind":   rec.Kind.String(),
				"user":   rec.UserID,
			}).Debug("record ignored")
		}
	}
	return nil
}

func (p *Replayer) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	return discardLogger
}

var discardLogger logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
