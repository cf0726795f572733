package reducer

import "testing"

type incrementAction struct{}

func (incrementAction) ActionType() Type { return "INCREMENT" }

type addAction struct{ Amount int }

func (addAction) ActionType() Type { return "ADD" }

type unknownAction struct{}

func (unknownAction) ActionType() Type { return "UNKNOWN" }

func counterHandlers() Handlers[int] {
	return Handlers[int]{
		"INCREMENT": func(s int, _ Action) int { return s + 1 },
		"ADD": func(s int, a Action) int {
			return s + a.(addAction).Amount
		},
	}
}

func TestReduceAppliesHandler(t *testing.T) {
	r := New(0, counterHandlers())

	state := 5
	if got := r.Reduce(&state, incrementAction{}); got != 6 {
		t.Errorf("Reduce(5, INCREMENT) = %d, expected 6", got)
	}
	if got := r.Reduce(&state, addAction{Amount: 10}); got != 15 {
		t.Errorf("Reduce(5, ADD 10) = %d, expected 15", got)
	}
	if state != 5 {
		t.Errorf("input state mutated to %d, expected 5", state)
	}
}

func TestReduceNilStateUsesInitial(t *testing.T) {
	r := New(42, counterHandlers())

	if got := r.Reduce(nil, incrementAction{}); got != 43 {
		t.Errorf("Reduce(nil, INCREMENT) = %d, expected 43", got)
	}
	if got := r.Reduce(nil, unknownAction{}); got != 42 {
		t.Errorf("Reduce(nil, UNKNOWN) = %d, expected 42", got)
	}
}

func TestReduceUnknownActionIsNoop(t *testing.T) {
	type board struct{ cells []int }
	initial := &board{cells: []int{1, 2, 3}}

	r := New(initial, Handlers[*board]{
		"INCREMENT": func(s *board, _ Action) *board { return &board{} },
	})

	got := r.Reduce(&initial, unknownAction{})
	if got != initial {
		t.Errorf("Reduce(initial, UNKNOWN) returned %p, expected same reference %p", got, initial)
	}
}

func TestReduceNilActionIsNoop(t *testing.T) {
	r := New(7, counterHandlers())

	state := 3
	if got := r.Reduce(&state, nil); got != 3 {
		t.Errorf("Reduce(3, nil) = %d, expected 3", got)
	}
}

func TestNewWithNilHandlers(t *testing.T) {
	r := New[int](9, nil)

	state := 1
	if got := r.Reduce(&state, incrementAction{}); got != 1 {
		t.Errorf("Reduce() with no handlers = %d, expected 1", got)
	}
	if r.Handles("INCREMENT") {
		t.Error("Handles(INCREMENT) should be false with no handlers")
	}
}

func TestNewCopiesHandlerTable(t *testing.T) {
	handlers := counterHandlers()
	r := New(0, handlers)

	// Mutating the caller's table must not affect the reducer
	delete(handlers, "INCREMENT")
	handlers["UNKNOWN"] = func(s int, _ Action) int { return -1 }

	state := 1
	if got := r.Reduce(&state, incrementAction{}); got != 2 {
		t.Errorf("Reduce(1, INCREMENT) = %d, expected 2", got)
	}
	if got := r.Reduce(&state, unknownAction{}); got != 1 {
		t.Errorf("Reduce(1, UNKNOWN) = %d, expected 1", got)
	}
}

func TestWithUnhandled(t *testing.T) {
	var reported []Type
	r := New(0, counterHandlers(), WithUnhandled(func(a Action) {
		reported = append(reported, a.ActionType())
	}))

	state := 4
	if got := r.Reduce(&state, unknownAction{}); got != 4 {
		t.Errorf("Reduce(4, UNKNOWN) = %d, expected 4", got)
	}
	r.Reduce(&state, incrementAction{})

	if len(reported) != 1 || reported[0] != "UNKNOWN" {
		t.Errorf("unhandled reports = %v, expected [UNKNOWN]", reported)
	}
}

func TestInitialAndHandles(t *testing.T) {
	r := New(100, counterHandlers())

	if r.Initial() != 100 {
		t.Errorf("Initial() = %d, expected 100", r.Initial())
	}
	if !r.Handles("ADD") {
		t.Error("Handles(ADD) should be true")
	}
	if r.Handles("UNKNOWN") {
		t.Error("Handles(UNKNOWN) should be false")
	}
}
