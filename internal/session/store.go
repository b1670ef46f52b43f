// Package session owns the single mutable prompt configuration of a run and keeps
// the generated prompt in step with it.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HartBrook/promptarchitect/internal/errors"
	"github.com/HartBrook/promptarchitect/internal/optimize"
	"github.com/HartBrook/promptarchitect/internal/prompt"
)

// Field names accepted by Set. They match the JSON names of prompt.Configuration.
const (
	FieldTheme                  = "theme"
	FieldRole                   = "role"
	FieldObjective              = "objective"
	FieldTone                   = "tone"
	FieldFormat                 = "format"
	FieldDetailLevel            = "detailLevel"
	FieldLanguage               = "language"
	FieldAdditionalInstructions = "additionalInstructions"
	FieldAIEngine               = "aiEngine"
)

// Fields lists the settable field names in display order.
var Fields = []string{
	FieldTheme, FieldRole, FieldObjective, FieldTone, FieldFormat,
	FieldDetailLevel, FieldLanguage, FieldAdditionalInstructions, FieldAIEngine,
}

// Shorter spellings used by the CLI and the interactive shell.
var fieldAliases = map[string]string{
	"detail":       FieldDetailLevel,
	"level":        FieldDetailLevel,
	"instructions": FieldAdditionalInstructions,
	"extras":       FieldAdditionalInstructions,
	"engine":       FieldAIEngine,
}

// Improver rewrites a finished prompt, typically by calling a language model.
type Improver interface {
	Improve(ctx context.Context, text string) (string, error)
}

// Snapshot is a consistent copy of the store's state.
type Snapshot struct {
	ID                   string
	Config               prompt.Configuration
	Style                prompt.Style
	GeneratedPrompt      string
	EditedPrompt         string
	IsEditing            bool
	IsLoading            bool
	Error                string
	OriginalObjective    string
	IsObjectiveOptimized bool
}

// CurrentPrompt returns the edited prompt while editing, else the generated one.
func (s Snapshot) CurrentPrompt() string {
	if s.IsEditing {
		return s.EditedPrompt
	}
	return s.GeneratedPrompt
}

// Store serializes every mutation of the configuration and re-renders the prompt
// before releasing its lock, so readers never see a half-applied update.
type Store struct {
	mu       sync.Mutex
	id       string
	logger   *slog.Logger
	defaults prompt.Configuration
	style    prompt.Style
	render   func(prompt.Configuration, prompt.Style) string

	cfg       prompt.Configuration
	generated string
	edited    string
	editing   bool
	loading   bool
	errMsg    string
	lastErr   error

	originalObjective string
	optimized         bool

	// revision increments on every change that can alter the current prompt.
	revision uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for generation and improvement diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithDefaults sets the configuration the store starts from and resets to.
func WithDefaults(cfg prompt.Configuration) Option {
	return func(s *Store) {
		cfg.DetailLevel = prompt.ClampDetailLevel(cfg.DetailLevel)
		s.defaults = cfg
	}
}

// WithStyle sets the render style.
func WithStyle(style prompt.Style) Option {
	return func(s *Store) {
		s.style = style
	}
}

// New creates a store holding the default configuration and its rendered preview.
func New(opts ...Option) *Store {
	s := &Store{
		id:       uuid.New().String(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaults: prompt.DefaultConfiguration(),
		render:   prompt.RenderStyle,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cfg = s.defaults
	s.regenerate()
	return s
}

// ID returns the session identifier.
func (s *Store) ID() string {
	return s.id
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:                   s.id,
		Config:               s.cfg,
		Style:                s.style,
		GeneratedPrompt:      s.generated,
		EditedPrompt:         s.edited,
		IsEditing:            s.editing,
		IsLoading:            s.loading,
		Error:                s.errMsg,
		OriginalObjective:    s.originalObjective,
		IsObjectiveOptimized: s.optimized,
	}
}

// Config returns a copy of the configuration.
func (s *Store) Config() prompt.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// CurrentPrompt returns the edited prompt while editing, else the generated one.
func (s *Store) CurrentPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPrompt()
}

// Err returns the error behind the current error message, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Set assigns one configuration field from its textual value.
//
// Changing the theme clears the role. Editing the objective discards any
// optimization backup. Any change leaves edit mode and clears the error.
func (s *Store) Set(field, value string) error {
	name, ok := canonicalField(field)
	if !ok {
		return errors.InvalidField(field, "unknown field")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg
	switch name {
	case FieldTheme:
		if value != next.Theme {
			next.Role = ""
		}
		next.Theme = value
	case FieldRole:
		next.Role = value
	case FieldObjective:
		next.Objective = value
		s.optimized = false
		s.originalObjective = ""
	case FieldTone:
		next.Tone = value
	case FieldFormat:
		next.Format = value
	case FieldDetailLevel:
		level, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.InvalidField(FieldDetailLevel, fmt.Sprintf("%q is not a number", value))
		}
		next.DetailLevel = prompt.ClampDetailLevel(level)
	case FieldLanguage:
		next.Language = value
	case FieldAdditionalInstructions:
		next.AdditionalInstructions = value
	case FieldAIEngine:
		next.AIEngine = value
	}

	s.cfg = next
	s.editing = false
	s.regenerate()
	return nil
}

// SetStyle switches the render style and regenerates.
func (s *Store) SetStyle(style prompt.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.style = style
	s.editing = false
	s.regenerate()
}

// Reset restores the default configuration and clears all derived state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = s.defaults
	s.generated = ""
	s.edited = ""
	s.originalObjective = ""
	s.optimized = false
	s.editing = false
	s.regenerate()
}

// OptimizeObjective rewrites the objective with the optimizer, using the theme as
// context. The pre-optimization text is kept only the first time, so repeated
// calls still revert to what the user typed. It reports false for a blank objective.
func (s *Store) OptimizeObjective() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(s.cfg.Objective) == "" {
		return false
	}
	if !s.optimized {
		s.originalObjective = s.cfg.Objective
	}

	s.cfg.Objective = optimize.Optimize(s.cfg.Objective, s.cfg.Theme)
	s.optimized = true
	s.editing = false
	s.regenerate()
	return true
}

// RevertObjectiveOptimization restores the objective saved by OptimizeObjective.
// It reports false when there is nothing to revert.
func (s *Store) RevertObjectiveOptimization() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.optimized || s.originalObjective == "" {
		return false
	}

	s.cfg.Objective = s.originalObjective
	s.originalObjective = ""
	s.optimized = false
	s.editing = false
	s.regenerate()
	return true
}

// UpdateEditedPrompt replaces the displayed prompt with hand-edited text.
func (s *Store) UpdateEditedPrompt(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edited = text
	s.editing = true
	s.revision++
}

// ResetToGenerated drops hand edits and shows the generated prompt again.
func (s *Store) ResetToGenerated() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edited = s.generated
	s.editing = false
	s.revision++
}

// Improve sends the current prompt to improver and, on success, makes the answer
// the generated prompt. The lock is not held during the call. The result is
// discarded with a StaleResult error if the prompt changed in the meantime.
// A positive timeout bounds the call.
func (s *Store) Improve(ctx context.Context, improver Improver, timeout time.Duration) (string, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return "", errors.AIRequestFailed("an improvement is already in progress", nil)
	}
	current := s.currentPrompt()
	rev := s.revision
	s.loading = true
	s.errMsg = ""
	s.lastErr = nil
	s.mu.Unlock()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := time.Now()
	improved, err := improver.Improve(ctx, current)
	if err == nil && strings.TrimSpace(improved) == "" {
		err = errors.AIInvalidResponse()
	}
	if err != nil && ctx.Err() == context.DeadlineExceeded && !errors.Is(err, errors.ErrAITimeout) {
		err = errors.AITimeout(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.errMsg = errors.AIFailedMessage
		s.lastErr = err
		s.logger.Warn("prompt improvement failed", "session", s.id, "error", err)
		return "", err
	}
	if s.revision != rev {
		s.logger.Debug("discarding stale improvement", "session", s.id)
		return "", errors.StaleResult()
	}

	s.generated = improved
	if !s.editing {
		s.edited = improved
	}
	s.revision++
	s.logger.Debug("prompt improved", "session", s.id, "elapsed", time.Since(started))
	return improved, nil
}

func (s *Store) currentPrompt() string {
	if s.editing {
		return s.edited
	}
	return s.generated
}

// regenerate re-renders the prompt. A panic while rendering keeps the previous
// prompt and sets the generation error message. Callers hold s.mu.
func (s *Store) regenerate() {
	s.revision++

	out, err := s.safeRender()
	if err != nil {
		s.errMsg = errors.GenerationFailedMessage
		s.lastErr = err
		s.logger.Error("prompt generation failed", "session", s.id, "error", err)
		return
	}

	s.generated = out
	if !s.editing {
		s.edited = out
	}
	s.errMsg = ""
	s.lastErr = nil
}

func (s *Store) safeRender() (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.GenerationFailed(fmt.Errorf("%v", r))
		}
	}()
	return s.render(s.cfg, s.style), nil
}

func canonicalField(field string) (string, bool) {
	key := strings.TrimSpace(field)
	for _, f := range Fields {
		if strings.EqualFold(f, key) {
			return f, true
		}
	}
	if f, ok := fieldAliases[strings.ToLower(key)]; ok {
		return f, true
	}
	return "", false
}
