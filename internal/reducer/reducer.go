// Package reducer builds state-transition functions from a table of
// per-action handlers. A reducer is created once per state slice and then
// fed (state, action) pairs.
package reducer

// Type is the tag that selects a handler for an action.
type Type string

// Action is a tagged record describing an intended state transition.
// Concrete actions are plain structs carrying their own payload fields.
type Action interface {
	ActionType() Type
}

// Handler computes the next state for one action type.
type Handler[S any] func(state S, action Action) S

// Handlers maps action types to their handlers.
type Handlers[S any] map[Type]Handler[S]

// Option configures a Reducer.
type Option func(*options)

type options struct {
	onUnhandled func(Action)
}

// WithUnhandled registers a callback invoked when an action has no handler.
// It does not change the returned state; unknown actions are still no-ops.
func WithUnhandled(fn func(Action)) Option {
	return func(o *options) {
		o.onUnhandled = fn
	}
}

// Reducer is a pure state-transition function built from a handler table.
type Reducer[S any] struct {
	initial  S
	handlers Handlers[S]
	opts     options
}

// New creates a reducer with the given initial state and handler table.
// The table is copied; later changes to the caller's map have no effect.
// A nil table behaves like an empty one.
func New[S any](initial S, handlers Handlers[S], opts ...Option) *Reducer[S] {
	r := &Reducer[S]{
		initial:  initial,
		handlers: make(Handlers[S], len(handlers)),
	}
	for t, h := range handlers {
		if h != nil {
			r.handlers[t] = h
		}
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Reduce returns the next state for the given action.
//
// A nil state means "no state yet" and the captured initial state is used.
// A nil action, or one whose type has no handler, returns the state unchanged.
func (r *Reducer[S]) Reduce(state *S, action Action) S {
	current := r.initial
	if state != nil {
		current = *state
	}

	if action == nil {
		return current
	}

	handler, ok := r.handlers[action.ActionType()]
	if !ok {
		if r.opts.onUnhandled != nil {
			r.opts.onUnhandled(action)
		}
		return current
	}

	return handler(current, action)
}

// Initial returns the captured initial state.
func (r *Reducer[S]) Initial() S {
	return r.initial
}

// Handles reports whether a handler is registered for the action type.
func (r *Reducer[S]) Handles(t Type) bool {
	_, ok := r.handlers[t]
	return ok
}
