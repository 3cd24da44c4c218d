// Package ratingctl drives a single catalog entry's rating through an
// optimistic update against the server. The control is an explicit
// Idle/Pending/Error machine: the optimistic value is shown before the
// server confirms, a failure rolls back to the previous rating, and a
// response for a superseded request can never overwrite newer state.
package ratingctl

import (
	"context"
	"sync"

	"github.com/smallbiznis/snackcat/internal/snack/domain"
)

type Kind int

const (
	KindIdle Kind = iota
	KindPending
	KindError
)

// State is the displayed condition of the control. Rating carries the
// currently displayed value for every kind: the confirmed rating when
// Idle, the optimistic one while Pending, and the rolled-back one on
// Error. Previous is the rollback target while Pending; Message is the
// surfaced failure on Error.
type State struct {
	Kind     Kind
	Rating   *int
	Previous *int
	Message  string
}

// Updater is the slice of the catalog service the control needs.
// domain.Service satisfies it.
type Updater interface {
	UpdateRating(ctx context.Context, id string, rating *int) (*domain.Response, error)
}

type Control struct {
	mu      sync.Mutex
	id      string
	updater Updater
	state   State
	seq     uint64
}

// New builds a control for one entry, starting Idle at whatever rating
// the entry held when loaded (nil for unrated).
func New(id string, loaded *int, updater Updater) *Control {
	return &Control{
		id:      id,
		updater: updater,
		state:   State{Kind: KindIdle, Rating: loaded},
	}
}

func (c *Control) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Tap translates a press on rating button value into the request it
// implies: pressing the already-active rating clears it.
func (c *Control) Tap(value int) (token uint64, rating *int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rating = &value
	if c.state.Rating != nil && *c.state.Rating == value {
		rating = nil
	}
	return c.begin(rating), rating
}

// Set applies the optimistic transition for an explicit target rating
// and returns the request token the eventual response must present.
// Calling Set while Pending supersedes the in-flight request: the new
// token invalidates the old one, and the rollback target stays the
// last server-confirmed rating.
func (c *Control) Set(rating *int) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.begin(rating)
}

func (c *Control) begin(rating *int) uint64 {
	previous := c.state.Rating
	if c.state.Kind == KindPending {
		previous = c.state.Previous
	}

	c.seq++
	c.state = State{Kind: KindPending, Rating: rating, Previous: previous}
	return c.seq
}

// Complete records the server-confirmed rating for the request
// identified by token. The server's value, not the optimistic one,
// becomes the new source of truth. Stale tokens are dropped.
func (c *Control) Complete(token uint64, confirmed *int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.seq || c.state.Kind != KindPending {
		return false
	}
	c.state = State{Kind: KindIdle, Rating: confirmed}
	return true
}

// Fail rolls the display back to the pre-optimistic rating and
// surfaces the failure. Stale tokens are dropped. No retry happens
// automatically.
func (c *Control) Fail(token uint64, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.seq || c.state.Kind != KindPending {
		return false
	}
	c.state = State{Kind: KindError, Rating: c.state.Previous, Message: err.Error()}
	return true
}

// Submit runs the full optimistic round trip for a target rating and
// returns the resulting state. The network call happens outside the
// lock, so a concurrent Set may supersede this request before its
// response lands; in that case the response is dropped.
func (c *Control) Submit(ctx context.Context, rating *int) State {
	token := c.Set(rating)

	resp, err := c.updater.UpdateRating(ctx, c.id, rating)
	if err != nil {
		c.Fail(token, err)
	} else {
		c.Complete(token, resp.Rating)
	}
	return c.State()
}
