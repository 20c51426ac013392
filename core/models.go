package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// ID is a unique identifier for a reasoning session.
// Callers may supply their own stable identifiers; NewID generates one.
type ID string

// NewID generates a fresh random session ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Mode classifies the reasoning strategy used in a session.
type Mode int

const (
	// ModeLinear represents straightforward step-by-step reasoning.
	ModeLinear Mode = iota + 1
	// ModeMathematical represents formal mathematical reasoning.
	ModeMathematical
	// ModePhysics represents physical-systems reasoning.
	ModePhysics
	// ModeCausal represents cause-and-effect analysis.
	ModeCausal
	// ModeSystems represents systems-thinking analysis.
	ModeSystems
	// ModeDialectical represents thesis/antithesis argumentation.
	ModeDialectical
)

var modeNames = map[Mode]string{
	ModeLinear:       "linear",
	ModeMathematical: "mathematical",
	ModePhysics:      "physics",
	ModeCausal:       "causal",
	ModeSystems:      "systems",
	ModeDialectical:  "dialectical",
}

// String returns the lowercase name of the mode, or a numeric form for
// unknown values.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode converts a mode name to a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range modeNames {
		if name == lower {
			return mode, nil
		}
	}
	return 0, ErrUnknownMode
}

// Thought is a single step in a reasoning session.
type Thought struct {
	Number  int    // 1-based position within the session
	Content string // the reasoning text for this step
}

// Taxonomy classifies a session against an external classification scheme.
// Sessions without a classification carry a nil *Taxonomy; an absent
// taxonomy is distinct from one with empty category or type sets.
type Taxonomy struct {
	Categories []string
	Types      []string
}

// Session is a recorded reasoning session: a titled sequence of thoughts
// produced in a particular reasoning mode.
type Session struct {
	Id        ID
	Title     string
	Mode      Mode
	Author    string // empty when the owner is unknown
	Domain    string // free-text category, empty when uncategorized
	Thoughts  []Thought
	Tags      []string
	Taxonomy  *Taxonomy // nil when the session is unclassified
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContentText returns the searchable text surface of the session: the title
// followed by every thought's content.
func (s *Session) ContentText() string {
	var b strings.Builder
	b.WriteString(s.Title)
	for _, thought := range s.Thoughts {
		b.WriteString(" ")
		b.WriteString(thought.Content)
	}
	return b.String()
}

// FingerprintSession computes a 64-bit BLAKE2b digest over every field that
// feeds the search projection. Two sessions with equal fingerprints produce
// identical projections, which lets the indexer skip no-op re-indexes.
func FingerprintSession(s *Session) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	write := func(parts ...string) {
		for _, part := range parts {
			h.Write([]byte(part))
			h.Write([]byte{0})
		}
	}
	write(string(s.Id), s.Title, s.Mode.String(), s.Author, s.Domain)
	for _, thought := range s.Thoughts {
		write(strconv.Itoa(thought.Number), thought.Content)
	}
	write(s.Tags...)
	if s.Taxonomy != nil {
		write("taxonomy")
		write(s.Taxonomy.Categories...)
		write(s.Taxonomy.Types...)
	}
	write(strconv.FormatInt(s.CreatedAt.UnixMicro(), 10),
		strconv.FormatInt(s.UpdatedAt.UnixMicro(), 10))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
