package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventTableUpdated    EventType = "TableUpdated"
	EventRecordDeleted   EventType = "RecordDeleted"
	EventDeleteRequested EventType = "DeleteRequested"
	EventReloadRequested EventType = "ReloadRequested"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted when the initial catalog load completes
type CatalogLoadedEvent struct {
	Tables int
	Rows   int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// TableUpdatedEvent is emitted when a listing table is loaded or reloaded
type TableUpdatedEvent struct {
	Table Table
}

func (e TableUpdatedEvent) Type() EventType { return EventTableUpdated }

// RecordDeletedEvent is emitted when a record has been removed from a listing
type RecordDeletedEvent struct {
	Entity Entity
	Key    string
}

func (e RecordDeletedEvent) Type() EventType { return EventRecordDeleted }

// DeleteRequestedEvent asks the catalog to remove a record
type DeleteRequestedEvent struct {
	Entity Entity
	Key    string
}

func (e DeleteRequestedEvent) Type() EventType { return EventDeleteRequested }

// ReloadRequestedEvent asks the catalog to reload all listing files
type ReloadRequestedEvent struct{}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	CatalogDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	DarkMode bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
