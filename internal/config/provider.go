package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"atena/internal/knowledge"
	"atena/internal/markdown"
)

// maxTasks bounds the task indices probed in Section 3 (Task1..Task9).
const maxTasks = 9

// Snapshot is one fully parsed, internally consistent view of the document.
// Snapshots are immutable once published; a reload builds a new one and swaps
// it in, so readers never observe a half-updated configuration.
type Snapshot struct {
	// ID uniquely identifies this parse pass. A reload that is skipped by the
	// mtime guard leaves the published ID unchanged.
	ID      string
	Agent   *AgentConfig
	Tasks   map[string]*TaskConfig
	ModTime time.Time
}

// Provider loads the agent construction document, exposes the parsed
// configuration, and re-parses whenever the file changes on disk.
type Provider struct {
	path   string
	loader *knowledge.Loader
	log    *zap.Logger

	mu   sync.RWMutex
	snap *Snapshot

	// reloadMu serializes reload attempts from the watcher goroutine and
	// explicit ForceReload callers; lastMod is only touched under it.
	reloadMu sync.Mutex
	lastMod  time.Time

	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// NewProvider parses the document at path and starts watching its parent
// directory for modifications. knowledgeDir roots the knowledge base lookups
// (empty selects the default). Construction fails when the document cannot be
// read at all; after that, reload failures keep the previous snapshot.
func NewProvider(path, knowledgeDir string, log *zap.Logger) (*Provider, error) {
	if log == nil {
		log = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving document path %s: %w", path, err)
	}

	p := &Provider{
		path:   abs,
		loader: knowledge.NewLoader(knowledgeDir, log),
		log:    log,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	if err := p.reload(); err != nil {
		return nil, fmt.Errorf("initial configuration load: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	p.watcher = watcher

	go p.run()
	p.log.Info("configuration provider started", zap.String("document", abs))

	return p, nil
}

// run is the watcher event loop. It reloads on write/create events for the
// tracked file; the mtime guard in reload makes duplicate events harmless.
func (p *Provider) run() {
	defer close(p.doneCh)

	for {
		select {
		case <-p.stopCh:
			return

		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != p.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.log.Debug("document changed on disk", zap.String("op", event.Op.String()))
			if err := p.reload(); err != nil {
				p.log.Error("reload after file change failed; keeping previous snapshot",
					zap.Error(err))
			}

		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.log.Error("file watcher error", zap.Error(err))
		}
	}
}

// reload re-parses the document if its modification time has advanced past
// the last successful load. An unchanged or earlier mtime is a no-op.
func (p *Provider) reload() error {
	p.reloadMu.Lock()
	defer p.reloadMu.Unlock()

	info, err := os.Stat(p.path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", p.path, err)
	}
	if !info.ModTime().After(p.lastMod) {
		return nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", p.path, err)
	}
	content := string(data)

	snap := &Snapshot{
		ID:      uuid.NewString(),
		Agent:   ParseAgentConfig(content, p.log),
		Tasks:   p.parseTasks(content),
		ModTime: info.ModTime(),
	}

	p.mu.Lock()
	p.snap = snap
	p.mu.Unlock()
	p.lastMod = info.ModTime()

	p.log.Info("configuration loaded",
		zap.String("agent", snap.Agent.Name),
		zap.Int("tasks", len(snap.Tasks)))
	return nil
}

// parseTasks slices the Section 3 region into per-task subsections and parses
// each one. Indices without a discoverable "### 3.<n>" header are simply
// absent; a header that is present but carries no recognizable fields still
// yields an entry with every field at its default.
func (p *Provider) parseTasks(content string) map[string]*TaskConfig {
	tasks := make(map[string]*TaskConfig)

	region := markdown.FindSectionBetweenHeaders(content, markerSection3, markerSection4)
	if region == "" {
		return tasks
	}

	for n := 1; n <= maxTasks; n++ {
		end := fmt.Sprintf("### 3.%d", n+1)
		if n == maxTasks {
			end = markerSection4
		}
		section := markdown.FindSectionBetweenHeaders(region, fmt.Sprintf("### 3.%d", n), end)
		if section == "" {
			continue
		}
		tasks[fmt.Sprintf("Task%d", n)] = ParseTaskConfig(section, n, p.loader, p.log)
	}

	return tasks
}

// ForceReload re-parses the document immediately, subject to the same mtime
// guard as watcher-triggered reloads.
func (p *Provider) ForceReload() error {
	return p.reload()
}

// Snapshot returns the last successfully parsed snapshot. Safe to call
// concurrently with an in-flight reload.
func (p *Provider) Snapshot() *Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// Agent returns the agent configuration of the current snapshot.
func (p *Provider) Agent() *AgentConfig {
	return p.Snapshot().Agent
}

// Problems returns the agent's problem statements.
func (p *Provider) Problems() []string {
	return p.Snapshot().Agent.Problems
}

// Tasks returns the task mapping keyed "Task1".."Task9".
func (p *Provider) Tasks() map[string]*TaskConfig {
	return p.Snapshot().Tasks
}

// Task returns the named task configuration, if present.
func (p *Provider) Task(key string) (*TaskConfig, bool) {
	t, ok := p.Snapshot().Tasks[key]
	return t, ok
}

// Path returns the absolute document path being tracked.
func (p *Provider) Path() string {
	return p.path
}

// Close stops the file watcher. The provider's last snapshot stays readable.
func (p *Provider) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.stopCh)
		if p.watcher != nil {
			err = p.watcher.Close()
		}
		<-p.doneCh
		p.log.Info("configuration provider stopped")
	})
	return err
}
