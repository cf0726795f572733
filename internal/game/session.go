package game

import (
	"github.com/vovakirdan/puzzlekit/internal/audio"
	"github.com/vovakirdan/puzzlekit/internal/core"
	"github.com/vovakirdan/puzzlekit/internal/devlog"
	"github.com/vovakirdan/puzzlekit/internal/events"
	"github.com/vovakirdan/puzzlekit/internal/levels"
	"github.com/vovakirdan/puzzlekit/internal/reducer"
)

// Recorder persists solved levels.
type Recorder interface {
	RecordCompletion(levelNumber, moves int) (bool, error)
}

// Options wires a Session to its collaborators. Only Catalog and Bus are
// required; missing clips, logger, or recorder disable that feature.
type Options struct {
	Catalog   *levels.Catalog
	Bus       *events.Bus
	Audio     audio.Player
	StepClip  audio.Clip
	SolveClip audio.Clip
	Log       *devlog.Logger
	Recorder  Recorder
}

// Session runs one puzzle at a time. Levels are loaded by LoadLevelEvents
// on the bus, so anything holding the bus can switch levels.
type Session struct {
	opts        Options
	store       *reducer.Store[State]
	unsubscribe func()
}

// NewSession creates a session and starts listening for load-level events.
func NewSession(opts Options) *Session {
	s := &Session{opts: opts}
	// Only reads s.opts, which is set above.
	unhandled := reducer.WithUnhandled(func(a reducer.Action) {
		s.opts.Log.Log("warn", "unhandled action", "type", a.ActionType())
	})
	s.store = reducer.NewStore(NewReducer(unhandled))
	s.unsubscribe = opts.Bus.Subscribe(events.LoadLevel, s.onLoadLevel)
	return s
}

// Close stops listening for events.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.store.State()
}

// Subscribe registers fn to be called after every state change.
func (s *Session) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// Load requests a level by firing a load-level event.
func (s *Session) Load(levelNumber int) {
	events.FireLoadLevel(s.opts.Bus, levelNumber)
}

// LoadNext requests the level after the current one. It does nothing on
// the last level.
func (s *Session) LoadNext() {
	next := s.State().LevelNumber + 1
	if next >= s.opts.Catalog.Count() {
		return
	}
	s.Load(next)
}

// Move moves the player and handles the resulting sound and progress.
func (s *Session) Move(dir core.Direction) State {
	prev := s.State()
	next := s.store.Dispatch(MoveAction{Dir: dir})

	if next.Moves == prev.Moves {
		return next
	}

	if next.Solved && !prev.Solved {
		s.opts.Audio.PlaySoundEffect(s.opts.SolveClip)
		s.onSolved(next)
	} else {
		s.opts.Audio.PlaySoundEffect(s.opts.StepClip)
	}
	return next
}

// Restart puts the player back at the start of the current level.
func (s *Session) Restart() State {
	next := s.store.Dispatch(RestartAction{})
	s.opts.Log.Debug("level restarted", "level", next.LevelNumber)
	return next
}

func (s *Session) onLoadLevel(e events.Event) {
	ev, ok := e.(events.LoadLevelEvent)
	if !ok {
		return
	}

	lvl, ok := s.opts.Catalog.Level(ev.LevelNumber)
	if !ok {
		s.opts.Log.Log("warn", "level not found", "level", ev.LevelNumber, "count", s.opts.Catalog.Count())
		return
	}

	s.store.Dispatch(LoadLevelAction{LevelNumber: ev.LevelNumber, Level: lvl})
	s.opts.Log.Info("level loaded",
		"level", ev.LevelNumber,
		"id", lvl.ID,
		"tier", s.State().Tier(),
		"par", lvl.Par(),
	)
}

func (s *Session) onSolved(st State) {
	s.opts.Log.Info("level solved", "level", st.LevelNumber, "moves", st.Moves, "par", st.Level.Par())

	if s.opts.Recorder == nil {
		return
	}
	improved, err := s.opts.Recorder.RecordCompletion(st.LevelNumber, st.Moves)
	if err != nil {
		s.opts.Log.Error("could not record completion", "level", st.LevelNumber, "error", err)
		return
	}
	if improved {
		s.opts.Log.Info("new best", "level", st.LevelNumber, "moves", st.Moves)
	}
}
