// Package playback defines the contract between the subtitle engine and the
// hosting media front-end. The engine never talks to a player itself: the
// host feeds position events in and issues seek/reload commands out, using
// the record data the engine resolves.
package playback

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/srtlab/srted/internal/editor"
	"github.com/srtlab/srted/internal/srt"
)

// Seeker is implemented by the host; Seek asks the player to move to an
// absolute position.
type Seeker interface {
	Seek(ctx context.Context, at time.Duration) error
}

// Reloader is implemented by the host; Reload asks the player to re-read the
// subtitle source, typically after a mutation batch.
type Reloader interface {
	Reload(ctx context.Context) error
}

// DefaultMaxRate is the ceiling, in lookups per second, applied to position
// events when no rate is configured.
const DefaultMaxRate = 10.0

// Follower correlates playback position events with the editor cursor.
// Position events may arrive at an arbitrary rate; lookups beyond the
// configured ceiling are dropped rather than queued, since a fresher event
// always follows.
type Follower struct {
	ed      *editor.Editor
	limiter *rate.Limiter
}

// NewFollower wraps ed with a position follower limited to maxRate lookups
// per second. A non-positive maxRate selects DefaultMaxRate.
func NewFollower(ed *editor.Editor, maxRate float64) *Follower {
	if maxRate <= 0 {
		maxRate = DefaultMaxRate
	}
	return &Follower{
		ed:      ed,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// Position handles one playback position event and reports whether the
// cursor moved to a different record. Throttled events report false.
func (f *Follower) Position(at time.Duration) bool {
	if !f.limiter.Allow() {
		return false
	}
	return f.ed.JumpToTime(at)
}

// Current returns the record the cursor is on, so the host can derive seek
// targets from its start and stop times.
func (f *Follower) Current() (srt.Record, bool) {
	return f.ed.Current()
}

// SeekToCurrent issues a Seek at the enclosing record's start time. Returns
// editor.ErrNotFound when no record encloses the cursor.
func (f *Follower) SeekToCurrent(ctx context.Context, s Seeker) error {
	r, ok := f.ed.Current()
	if !ok {
		return editor.ErrNotFound
	}
	return s.Seek(ctx, r.Start)
}
