package serve

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/config"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/view"
	"github.com/nickmackenzie/folder-hero/package/telemetry"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

// Entry is one editing session served over http. The edit engine is not
// safe for concurrent use, so every access goes through Lock.
type Entry struct {
	sync.Mutex
	Id      string
	Created time.Time
	Session *session.Session
	Binder  *view.Binder
	Engine  *edit.Engine
}

type Store struct {
	mutex     sync.RWMutex
	entries   map[string]*Entry
	config    *config.Config
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
}

func NewStore(config *config.Config, logger *zap.Logger, telemetry *telemetry.Telemetry) *Store {
	return &Store{
		mutex:     sync.RWMutex{},
		entries:   make(map[string]*Entry),
		config:    config,
		logger:    logger,
		telemetry: telemetry,
	}
}

func (r *Store) Create(ctx context.Context, input string) *Entry {
	// * construct session
	s := session.New(parser.New(*r.config.IndentWidth), input)
	entry := &Entry{
		Id:      uuid.NewString(),
		Created: time.Now(),
		Session: s,
		Binder:  view.Bind(s),
		Engine:  edit.New(r.logger, *r.config.DefaultLabel),
	}
	entry.Binder.Listen(entry.Engine)

	// * register session
	r.mutex.Lock()
	r.entries[entry.Id] = entry
	r.mutex.Unlock()

	r.telemetry.Instrument.SessionActive(ctx, 1)
	r.logger.Debug("session created", zap.String("id", entry.Id))
	return entry
}

func (r *Store) Get(id string) (*Entry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

func (r *Store) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	_, ok := r.entries[id]
	delete(r.entries, id)
	r.mutex.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	r.telemetry.Instrument.SessionActive(ctx, -1)
	return nil
}

// List returns sessions oldest first.
func (r *Store) List(limit int, offset int) ([]*Entry, int) {
	r.mutex.RLock()
	entries := make([]*Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	r.mutex.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Created.Equal(entries[j].Created) {
			return entries[i].Id < entries[j].Id
		}
		return entries[i].Created.Before(entries[j].Created)
	})

	total := len(entries)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return entries[offset:end], total
}
