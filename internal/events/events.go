// Package events carries named events from the UI to collaborators such as
// the level loader. Dispatch is synchronous and fire-and-forget.
package events

// Name identifies an event kind.
type Name string

// LoadLevel requests that a level be loaded.
const LoadLevel Name = "load-level"

// Event is a named payload sent through a Dispatcher.
type Event interface {
	EventName() Name
}

// LoadLevelEvent asks the level loader to load the given level number.
type LoadLevelEvent struct {
	LevelNumber int
}

func (LoadLevelEvent) EventName() Name { return LoadLevel }

// Dispatcher delivers events to interested listeners.
type Dispatcher interface {
	Dispatch(e Event)
}

// FireLoadLevel emits a LoadLevelEvent for levelNumber.
// A nil dispatcher is a no-op.
func FireLoadLevel(d Dispatcher, levelNumber int) {
	if d == nil {
		return
	}
	d.Dispatch(LoadLevelEvent{LevelNumber: levelNumber})
}
