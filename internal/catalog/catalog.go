// Package catalog loads the platform's listing files into display tables,
// watches the catalog directory for edits, and persists record deletions.
// It is the data-side collaborator of the listing pages; everything it
// learns is published on the event bus.
package catalog

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"careboard/internal/domain"
	"careboard/internal/eventbus"
)

// Service loads and maintains the listing catalog.
type Service interface {
	// Load reads every listing file and publishes a TableUpdated event per
	// table, then a CatalogLoaded event.
	Load() error

	// Watch reloads listing files as they change on disk, until ctx is
	// cancelled.
	Watch(ctx context.Context) error

	// Delete removes a record from its listing file and republishes the
	// table.
	Delete(entity domain.Entity, key string) error
}

type service struct {
	bus eventbus.EventBus
	dir string
	mu  sync.Mutex // serializes file rewrites against reloads
}

// NewService creates a catalog service rooted at dir. It subscribes to
// delete and reload requests on the bus.
func NewService(bus eventbus.EventBus, dir string) Service {
	s := &service{bus: bus, dir: dir}

	bus.Subscribe(eventbus.EventDeleteRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DeleteRequestedEvent); ok {
			if err := s.Delete(event.Entity, event.Key); err != nil {
				log.Printf("Delete failed: %v", err)
				s.bus.Publish(eventbus.ErrorEvent{
					Message: fmt.Sprintf("Failed to delete %s #%s", event.Entity, event.Key),
					Err:     err,
				})
			}
		}
	})

	bus.Subscribe(eventbus.EventReloadRequested, func(e eventbus.DomainEvent) {
		if err := s.Load(); err != nil {
			log.Printf("Reload failed: %v", err)
		}
	})

	return s
}

func (s *service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := 0
	rows := 0
	for _, e := range domain.Entities {
		t, err := s.loadAndPublish(e)
		if err != nil {
			return err
		}
		tables++
		rows += len(t.Rows)
	}

	s.bus.Publish(eventbus.CatalogLoadedEvent{Tables: tables, Rows: rows})
	return nil
}

func (s *service) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			entity, known := entityForFile(ev.Name)
			if !known {
				continue
			}
			log.Printf("Catalog file changed: %s", filepath.Base(ev.Name))
			s.mu.Lock()
			_, err := s.loadAndPublish(entity)
			s.mu.Unlock()
			if err != nil {
				log.Printf("Reload of %s failed: %v", entity, err)
				s.bus.Publish(eventbus.ErrorEvent{
					Message: fmt.Sprintf("Failed to reload %s listing", entity),
					Err:     err,
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (s *service) Delete(entity domain.Entity, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := deleteRecord(s.dir, entity, key); err != nil {
		return err
	}

	s.bus.Publish(eventbus.RecordDeletedEvent{Entity: entity, Key: key})
	_, err := s.loadAndPublish(entity)
	return err
}

// loadAndPublish must be called with s.mu held.
func (s *service) loadAndPublish(e domain.Entity) (domain.Table, error) {
	t, err := loadTable(s.dir, e)
	if err != nil {
		return t, err
	}
	s.bus.Publish(eventbus.TableUpdatedEvent{Table: t})
	return t, nil
}
