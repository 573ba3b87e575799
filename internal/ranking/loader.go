package ranking

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jonathan/fairpath/internal/features"
)

// Model load states. Lifecycle: Unloaded -> Loading -> Ready | Failed.
// Failed is a latch: a failed load is never retried for the remainder
// of the process.
const (
	StateUnloaded = "unloaded"
	StateLoading  = "loading"
	StateReady    = "ready"
	StateFailed   = "failed"
)

// ModelStatus is the introspection view of the loader, exposed so the
// surrounding service can observe whether the trained model is usable.
type ModelStatus struct {
	State        string `json:"state"`
	Version      string `json:"version,omitempty"`
	FeatureCount int    `json:"feature_count,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ModelLoader lazily loads the model artifact on first use. Concurrent
// first callers block on the once barrier until the single load
// completes. Load failure is logged exactly once and degrades all
// subsequent calls to the baseline, never surfacing to the caller.
type ModelLoader struct {
	path   string
	space  *features.Space
	logger zerolog.Logger

	once   sync.Once
	mu     sync.RWMutex
	state  string
	ranker *ModelRanker
	err    error
}

// NewModelLoader creates a loader for the artifact at path. An empty
// path means no model is configured: the loader reports Failed on first
// use without touching the filesystem.
func NewModelLoader(path string, space *features.Space, logger zerolog.Logger) *ModelLoader {
	return &ModelLoader{
		path:   path,
		space:  space,
		logger: logger,
		state:  StateUnloaded,
	}
}

// Get returns the model ranker, loading the artifact on first call.
// ok is false when the model is unavailable; the caller should use the
// baseline scorer instead.
func (l *ModelLoader) Get() (ranker *ModelRanker, ok bool) {
	l.once.Do(l.load)

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.state != StateReady {
		return nil, false
	}
	return l.ranker, true
}

func (l *ModelLoader) load() {
	l.setState(StateLoading, nil, nil)

	if l.path == "" {
		err := &ArtifactError{Message: "no model artifact configured"}
		l.logger.Warn().Msg("no model artifact configured, using baseline ranking")
		l.setState(StateFailed, nil, err)
		return
	}

	artifact, err := LoadArtifact(l.path, l.space)
	if err != nil {
		// Logged once here; every later request silently uses the baseline.
		l.logger.Error().Err(err).Str("path", l.path).
			Msg("model artifact load failed, falling back to baseline ranking")
		l.setState(StateFailed, nil, err)
		return
	}

	ranker := NewModelRanker(l.space, artifact)
	l.logger.Info().Str("version", artifact.Version).Int("features", artifact.FeatureCount).
		Msg("model artifact loaded")
	l.setState(StateReady, ranker, nil)
}

func (l *ModelLoader) setState(state string, ranker *ModelRanker, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = state
	l.ranker = ranker
	l.err = err
}

// Status reports the loader's current state without triggering a load.
func (l *ModelLoader) Status() ModelStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()

	status := ModelStatus{State: l.state}
	if l.ranker != nil {
		status.Version = l.ranker.artifact.Version
		status.FeatureCount = l.ranker.artifact.FeatureCount
	}
	if l.err != nil {
		status.Error = l.err.Error()
	}
	return status
}
