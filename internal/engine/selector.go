package engine

import (
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// dragSession holds all state scoped to a single pointer-down-to-pointer-up
// gesture. It is created on press and disposed on every exit path: release,
// cancellation, resize, or puzzle change. At most one session exists at a
// time; the closed flag makes disposal idempotent so no exit path can leak a
// half-open gesture.
type dragSession struct {
	anchor puzzle.Coord
	lock   *directionLock
	path   []puzzle.Coord
	closed bool
}

func (s *dragSession) close() {
	s.closed = true
	s.lock = nil
	s.path = nil
}

// Selector is the gesture state machine: Idle when no session exists,
// Selecting while one does. Commit is transient: release evaluates the match
// and immediately returns to Idle. While a session is active the selector
// accepts motion from anywhere on screen, resolved through Metrics with
// overscan, so a drag that leaves the rendered board keeps updating.
type Selector struct {
	metrics Metrics
	phrases []puzzle.Phrase
	session *dragSession

	// OnFound is called exactly once per committed match with the phrase text.
	OnFound func(text string)
}

// NewSelector creates a selector for one puzzle's phrases and board metrics.
func NewSelector(metrics Metrics, phrases []puzzle.Phrase) *Selector {
	return &Selector{metrics: metrics, phrases: phrases}
}

// SetMetrics replaces the board metrics, abandoning any gesture in progress:
// the cell geometry changed under the pointer, so remapping the drag would
// select cells the user never touched.
func (s *Selector) SetMetrics(m Metrics) {
	s.Cancel()
	s.metrics = m
}

// Selecting reports whether a gesture is in progress.
func (s *Selector) Selecting() bool {
	return s.session != nil
}

// Path returns the cells currently highlighted by the in-progress gesture.
// Empty when idle.
func (s *Selector) Path() []puzzle.Coord {
	if s.session == nil {
		return nil
	}
	return s.session.path
}

// PointerDown starts a gesture at the given screen position. Presses that do
// not land on an in-bounds cell are ignored; overscan applies only to motion,
// a gesture must begin on the board.
func (s *Selector) PointerDown(x, y int) {
	if s.session != nil {
		// Stray second press while a gesture is live; restart cleanly.
		s.Cancel()
	}
	cell, ok := s.metrics.CellAt(x, y)
	if !ok || !cell.In(s.metrics.Size) {
		return
	}
	s.session = &dragSession{
		anchor: cell,
		path:   []puzzle.Coord{cell},
	}
}

// PointerMove extends the gesture toward the given screen position. Before a
// direction is locked, movement that does not classify as straight leaves the
// path anchored; the first straight movement locks the direction for the rest
// of the gesture. Once locked, the target is constrained to the locked line,
// the path rebuilt, and out-of-bounds cells clipped. Unresolvable positions
// are ignored.
func (s *Selector) PointerMove(x, y int) {
	sess := s.session
	if sess == nil || sess.closed {
		return
	}
	target, ok := s.metrics.CellAt(x, y)
	if !ok {
		return
	}

	if sess.lock == nil {
		if target == sess.anchor {
			sess.path = []puzzle.Coord{sess.anchor}
			return
		}
		lock := lockDirection(sess.anchor, target)
		if lock == nil {
			// Not a straight movement yet; stay anchored.
			return
		}
		sess.lock = lock
	}

	constrained := sess.lock.constrain(sess.anchor, target)
	sess.path = ClipToBounds(BuildPath(sess.anchor, constrained), s.metrics.Size)
}

// PointerUp commits the gesture: a straight path is matched against the
// puzzle's phrases and OnFound fires on success. Non-straight or empty paths
// are discarded silently; an invalid selection is indistinguishable from the
// user changing their mind. The selector always returns to Idle. The matched
// phrase, if any, is also returned for callers that prefer a return value.
func (s *Selector) PointerUp() *puzzle.Phrase {
	sess := s.session
	if sess == nil {
		return nil
	}
	path := sess.path
	sess.close()
	s.session = nil

	if !IsStraightLine(path) {
		return nil
	}
	match := FindMatch(path, s.phrases)
	if match != nil && s.OnFound != nil {
		s.OnFound(match.Text)
	}
	return match
}

// Cancel abandons any gesture in progress without attempting a match.
func (s *Selector) Cancel() {
	if s.session != nil {
		s.session.close()
		s.session = nil
	}
}
