// Package catalog holds the administrator-owned collection of events.
package catalog

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/certhub/certhub/pkg/kvstore"
	"github.com/certhub/certhub/pkg/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CertificateSweeper removes the certificates tied to a deleted event. The
// registry implements it; the indirection avoids a package cycle.
type CertificateSweeper interface {
	DeleteForEvent(eventId string) error
}

// Fields is a partial update; nil members are left as stored. Id, CreatedBy
// and CreatedAt are immutable.
type Fields struct {
	Title       *string
	Description *string
	EventDate   *string
}

type Catalog struct {
	mu      sync.RWMutex
	store   kvstore.Store
	sweeper CertificateSweeper
	events  []models.Event
}

func NewCatalog(store kvstore.Store) (*Catalog, error) {
	c := &Catalog{store: store}

	raw, ok, err := store.Get(kvstore.KeyEvents)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &c.events); err != nil {
			return nil, fmt.Errorf("loading events: %w", err)
		}
	}

	return c, nil
}

func (c *Catalog) SetSweeper(sweeper CertificateSweeper) {
	c.sweeper = sweeper
}

// Create adds an event. Title and event date are required.
func (c *Catalog) Create(title, description, eventDate, creatorId string) (models.Event, error) {
	if title == "" || eventDate == "" {
		return models.Event{}, fmt.Errorf("title and event date are required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	event := models.Event{
		Id:          uuid.New().String(),
		Title:       title,
		Description: description,
		EventDate:   eventDate,
		CreatedBy:   creatorId,
		CreatedAt:   time.Now().UTC(),
	}

	updated := append(append([]models.Event{}, c.events...), event)
	if err := c.persist(updated); err != nil {
		return models.Event{}, err
	}
	c.events = updated

	logrus.Infof("created event %s (%s)", event.Title, event.Id)
	return event, nil
}

func (c *Catalog) Update(eventId string, fields Fields) (models.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	index := -1
	for i := range c.events {
		if c.events[i].Id == eventId {
			index = i
			break
		}
	}
	if index < 0 {
		return models.Event{}, models.ErrNotFound
	}

	updated := append([]models.Event{}, c.events...)
	if fields.Title != nil {
		updated[index].Title = *fields.Title
	}
	if fields.Description != nil {
		updated[index].Description = *fields.Description
	}
	if fields.EventDate != nil {
		updated[index].EventDate = *fields.EventDate
	}

	if err := c.persist(updated); err != nil {
		return models.Event{}, err
	}
	c.events = updated

	return updated[index], nil
}

// Delete removes an event and cascades to its certificates. Deleting an
// unknown id is a no-op.
func (c *Catalog) Delete(eventId string) error {
	c.mu.Lock()

	index := -1
	for i := range c.events {
		if c.events[i].Id == eventId {
			index = i
			break
		}
	}
	if index < 0 {
		c.mu.Unlock()
		return nil
	}

	updated := append([]models.Event{}, c.events[:index]...)
	updated = append(updated, c.events[index+1:]...)
	if err := c.persist(updated); err != nil {
		c.mu.Unlock()
		return err
	}
	c.events = updated
	c.mu.Unlock()

	if c.sweeper != nil {
		if err := c.sweeper.DeleteForEvent(eventId); err != nil {
			return err
		}
	}

	logrus.Infof("deleted event %s", eventId)
	return nil
}

func (c *Catalog) List() []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]models.Event{}, c.events...)
}

func (c *Catalog) FindById(eventId string) (models.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, event := range c.events {
		if event.Id == eventId {
			return event, true
		}
	}
	return models.Event{}, false
}

func (c *Catalog) persist(events []models.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.store.Set(kvstore.KeyEvents, raw)
}
