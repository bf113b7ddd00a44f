package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/suderio/svarog/internal/command"
	"github.com/suderio/svarog/internal/data"
	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
	"github.com/suderio/svarog/internal/rules"
)

// ErrUnknownCreature is returned when a command names a creature that is
// not on the table.
var ErrUnknownCreature = command.ErrUnknownCreature

// Store defines the dependency required by Session to persist events
type Store interface {
	Append(evt engine.Event) error
	Load() ([]engine.Event, error)
	Close() error
}

// Options configures a session. Zero values are usable.
type Options struct {
	// DataDirs are searched for creature templates before the embedded defaults.
	DataDirs []string
	// DefaultTarget is used when a command has no "to:".
	DefaultTarget string
	// RollFunc backs roll() inside check expressions.
	RollFunc rules.RollFunc
	Logger   *slog.Logger
}

// Session manages the cohesive loop of taking commands, executing them, persisting events, and projecting GameState
type Session struct {
	mu            sync.Mutex
	loader        *data.Loader
	projector     *engine.Projector
	store         Store
	state         *engine.GameState
	evaluator     *rules.Evaluator
	defaultTarget string
	lastResponses []engine.Response
	logger        *slog.Logger
}

// NewSession bootstraps a game session pipeline relying on an injected store
func NewSession(store Store, opts Options) (*Session, error) {
	evaluator, err := rules.NewEvaluator(opts.RollFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules evaluator: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		loader:        data.NewLoader(opts.DataDirs),
		projector:     engine.NewProjector(),
		store:         store,
		evaluator:     evaluator,
		defaultTarget: opts.DefaultTarget,
		logger:        logger,
	}
	if err := s.RebuildState(); err != nil {
		return nil, err
	}
	return s, nil
}

// RebuildState reads the entire event log from the store and projects the latest GameState
func (s *Session) RebuildState() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuild()
}

func (s *Session) rebuild() error {
	events, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load event log: %w", err)
	}

	state, err := s.projector.Build(events)
	if err != nil {
		s.logger.Warn("event log replay failed", "events", len(events), "error", err)
		return fmt.Errorf("failed to project game state: %w", err)
	}

	s.state = state
	s.lastResponses = nil
	s.logger.Debug("state rebuilt", "events", len(events), "creatures", len(state.Creatures))
	return nil
}

// State returns the current projected GameState. Callers must not modify it.
func (s *Session) State() *engine.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loader returns the template loader
func (s *Session) Loader() *data.Loader {
	return s.loader
}

// Evaluator returns the CEL evaluator used by check.
func (s *Session) Evaluator() *rules.Evaluator {
	return s.evaluator
}

// LastResponses returns the responses produced by the last command.
func (s *Session) LastResponses() []engine.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]engine.Response(nil), s.lastResponses...)
}

// Execute takes a raw command string, resolves it, applies the resulting
// events and appends the persistent ones to the store. A command is all or
// nothing: if any event fails to apply, the state is left untouched.
func (s *Session) Execute(input string) ([]engine.Event, error) {
	cmd, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := command.Execute(cmd, &command.Context{
		State:         s.state,
		Loader:        s.loader,
		Evaluator:     s.evaluator,
		DefaultTarget: s.defaultTarget,
		LastResponses: s.lastResponses,
	})
	if err != nil {
		return nil, err
	}

	next := s.state.Clone()
	if err := s.projector.Apply(next, events...); err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Keyword(), err)
	}
	var responses []engine.Response
	for _, evt := range events {
		if h, ok := evt.(*engine.HealthActionEvent); ok {
			responses = append(responses, h.Responses...)
			s.logger.Debug("health action", "creature", h.CreatureID, "action", h.Action.String(), "responses", h.Responses)
		}
	}

	for _, evt := range events {
		if !engine.Persistent(evt) {
			continue
		}
		if err := s.store.Append(evt); err != nil {
			// the log may hold part of the command; trust it over memory
			if rerr := s.rebuild(); rerr != nil {
				s.logger.Error("state rebuild after failed append", "error", rerr)
			}
			return nil, fmt.Errorf("failed to persist event: %w", err)
		}
	}

	s.state = next
	if cmd.Check == nil && cmd.Show == nil && cmd.Help == nil && cmd.Roll == nil {
		s.lastResponses = responses
	}
	s.logger.Debug("command executed", "command", cmd.Keyword(), "events", len(events))
	return events, nil
}

// ExecuteScript runs every command of a script in order and stops at the
// first failure.
func (s *Session) ExecuteScript(script string) ([]engine.Event, error) {
	var all []engine.Event
	for i, line := range SplitInput(script) {
		events, err := s.Execute(line)
		if err != nil {
			return all, fmt.Errorf("command %d (%s): %w", i+1, line, err)
		}
		all = append(all, events...)
	}
	return all, nil
}

// Close releases the underlying store.
func (s *Session) Close() error {
	return s.store.Close()
}
