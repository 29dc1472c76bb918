// Package watcher watches a directory tree for HTML document changes.
package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/signum/source"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 500

	defaultDebounce = 500 * time.Millisecond
)

// Config configures document watching.
type Config struct {
	// DebounceDelay is how long to wait for more changes before emitting events.
	DebounceDelay time.Duration `yaml:"debounce_delay"`

	// Extensions lists file extensions to watch (e.g., [".html", ".htm"]).
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs lists directory names to skip (e.g., [".git", "node_modules"]).
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// DefaultConfig returns default watch configuration.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: defaultDebounce,
		Extensions:    []string{".html", ".htm"},
		ExcludeDirs:   []string{".git", "node_modules", "vendor"},
	}
}

// debounce returns the debounce delay, falling back to the default.
func (c Config) debounce() time.Duration {
	if c.DebounceDelay <= 0 {
		return defaultDebounce
	}
	return c.DebounceDelay
}

// Event describes a changed document.
type Event struct {
	// Path is the file path relative to the watched root.
	Path string

	// AbsPath is the absolute file path.
	AbsPath string

	// Operation is the type of change.
	Operation Operation
}

// Operation indicates the type of file change.
type Operation string

// OpCreate, OpModify, and OpDelete enumerate the watch operation types.
const (
	OpCreate Operation = "create"
	OpModify Operation = "modify"
	OpDelete Operation = "delete"
)

// Watcher watches for document changes and emits debounced events.
type Watcher struct {
	config     Config
	root       string
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
	extensions map[string]bool
	excludes   map[string]bool

	// Debouncing: collect changes before processing
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Hash-based change detection
	hashMu sync.RWMutex
	hashes map[string]string

	events chan Event

	droppedEvents atomic.Int64
}

// New creates a watcher for the tree rooted at root.
func New(config Config, root string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	defaults := DefaultConfig()

	exts := config.Extensions
	if len(exts) == 0 {
		exts = defaults.Extensions
	}
	extensions := make(map[string]bool)
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[strings.ToLower(ext)] = true
	}

	dirs := config.ExcludeDirs
	if len(dirs) == 0 {
		dirs = defaults.ExcludeDirs
	}
	excludes := make(map[string]bool)
	for _, dir := range dirs {
		excludes[dir] = true
	}

	return &Watcher{
		config:     config,
		root:       absRoot,
		watcher:    fsw,
		logger:     logger,
		extensions: extensions,
		excludes:   excludes,
		pending:    make(map[string]fsnotify.Op),
		hashes:     make(map[string]string),
		events:     make(chan Event, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events. It is closed when the watcher
// stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start adds watches under the root and begins processing. Processing stops
// when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.root); err != nil {
		return err
	}
	w.seedHashes()

	go w.processEvents(ctx)

	w.logger.Info("Document watcher started",
		"root", w.root,
		"debounce", w.config.debounce())

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// SetHash records the content hash for a path relative to the root. Events for
// content matching the recorded hash are suppressed, which keeps the watcher
// from reacting to its own writes.
func (w *Watcher) SetHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

// GetHash returns the recorded hash for a path.
func (w *Watcher) GetHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

// DroppedEvents returns the number of events dropped due to channel overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

// Root returns the absolute watched root.
func (w *Watcher) Root() string {
	return w.root
}

// addWatchesRecursive adds watches to all directories.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if path != root && (w.excludes[base] || strings.HasPrefix(base, ".")) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

// seedHashes records the hash of every existing document so the first change
// to it is reported as a modification.
func (w *Watcher) seedHashes() {
	_ = filepath.Walk(w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			base := filepath.Base(path)
			if path != w.root && (w.excludes[base] || strings.HasPrefix(base, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		relPath, _ := filepath.Rel(w.root, path)
		w.SetHash(relPath, source.ContentHash(content))
		return nil
	})
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.config.debounce())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent processes a single fsnotify event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	ext := strings.ToLower(filepath.Ext(path))
	if !w.extensions[ext] {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}

	relPath, _ := filepath.Rel(w.root, path)
	for _, part := range strings.Split(filepath.Dir(relPath), string(filepath.Separator)) {
		if w.excludes[part] {
			return
		}
	}

	w.pendingMu.Lock()
	w.pending[path] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Document change detected",
		"path", relPath,
		"op", event.Op.String())
}

// handleNewDirectory adds a watch to a newly created directory.
func (w *Watcher) handleNewDirectory(path string) {
	base := filepath.Base(path)
	if w.excludes[base] || strings.HasPrefix(base, ".") {
		return
	}

	if err := w.addWatchesRecursive(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
	}
}

// flushPending emits events for accumulated changes.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		relPath, _ := filepath.Rel(w.root, path)
		event := Event{
			Path:    relPath,
			AbsPath: path,
		}

		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			w.hashMu.Lock()
			_, known := w.hashes[relPath]
			delete(w.hashes, relPath)
			w.hashMu.Unlock()

			if known || toProcess[path].Has(fsnotify.Remove) || toProcess[path].Has(fsnotify.Rename) {
				event.Operation = OpDelete
				w.sendEvent(event)
			}
			continue
		}
		if err != nil {
			w.logger.Warn("Failed to read file for hash check",
				"path", relPath,
				"error", err)
			continue
		}

		newHash := source.ContentHash(content)
		oldHash, hadHash := w.GetHash(relPath)
		if hadHash && oldHash == newHash {
			continue
		}
		w.SetHash(relPath, newHash)

		if hadHash {
			event.Operation = OpModify
		} else {
			event.Operation = OpCreate
		}
		w.sendEvent(event)
	}
}

// sendEvent sends an event to the output channel.
func (w *Watcher) sendEvent(event Event) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			"path", event.Path,
			"op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}
