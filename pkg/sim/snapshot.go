package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/taskboard/pkg/feed"
	"github.com/matzehuels/taskboard/pkg/ready"
)

// Document is the persisted form of a session: the full board state plus
// a little provenance. Restoring a document reproduces partitions and
// edges exactly.
type Document struct {
	Title string                 `json:"title,omitempty"`
	Taken time.Time              `json:"taken"`
	Board ready.Snapshot[string] `json:"board"`
}

// Document captures the session as a persistable document.
func (s *Session) Document() Document {
	return Document{
		Title: s.Title(),
		Taken: time.Now().UTC(),
		Board: s.Snapshot(),
	}
}

// WriteJSON encodes a document as indented JSON.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadJSON decodes a document from r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return doc, nil
}

// Save writes the session's document to a file.
func (s *Session) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s.Document(), f)
}

// Restore builds a session from a document. Live tasks are inserted
// first, then staged tasks, then edges; suspended tasks are parked last,
// after their edges are in place, so each task lands back in the
// partition the document recorded.
func Restore(doc Document, bus *feed.Bus) *Session {
	s := NewSession(bus)
	s.title = doc.Title

	for _, t := range doc.Board.Pending {
		s.graph.Add(t)
	}
	for _, t := range doc.Board.Blocked {
		s.graph.Add(t)
	}
	for _, t := range doc.Board.Waiting {
		s.graph.Add(t)
	}
	for _, t := range doc.Board.Planned {
		s.graph.Plan(t)
	}
	for _, e := range doc.Board.Edges {
		s.graph.Link(e.Dependent, e.Dependency)
	}
	for _, t := range doc.Board.Waiting {
		s.graph.Suspend(t)
	}
	return s
}

// Load reads a snapshot file and restores the session it describes.
func Load(path string, bus *feed.Bus) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Restore(doc, bus), nil
}
