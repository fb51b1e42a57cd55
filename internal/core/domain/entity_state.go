package domain

import (
	"fmt"
	"strings"
	"time"
)

// EntityState is the soft lifecycle state shared by catalog entities.
type EntityState string

const (
	StateActive   EntityState = "active"
	StateArchived EntityState = "archived"
	StateDeleted  EntityState = "deleted"
)

// Lifecycle holds the persisted soft-delete markers. The state is derived,
// never stored.
type Lifecycle struct {
	IsDeleted  bool       `json:"is_deleted"`
	ArchivedAt *time.Time `json:"archived_at"`
}

// State derives the entity state: deleted wins over archived.
func (l Lifecycle) State() EntityState {
	switch {
	case l.IsDeleted:
		return StateDeleted
	case l.ArchivedAt != nil:
		return StateArchived
	default:
		return StateActive
	}
}

// ApplyState rewrites the markers so that State() returns s.
// Deleting keeps the original archive timestamp or stamps now.
func (l *Lifecycle) ApplyState(s EntityState, now time.Time) {
	switch s {
	case StateActive:
		l.IsDeleted = false
		l.ArchivedAt = nil
	case StateArchived:
		l.IsDeleted = false
		l.ArchivedAt = &now
	case StateDeleted:
		l.IsDeleted = true
		if l.ArchivedAt == nil {
			l.ArchivedAt = &now
		}
	}
}

// BulkAction is a lifecycle action requested through a bulk endpoint.
type BulkAction string

const (
	ActionArchive    BulkAction = "archive"
	ActionRestore    BulkAction = "restore"
	ActionDelete     BulkAction = "delete"
	ActionActivate   BulkAction = "activate"
	ActionDeactivate BulkAction = "deactivate"
)

// StateFilter selects entities by lifecycle state in list queries.
// An empty filter matches everything except deleted entities.
type StateFilter []EntityState

// ParseStateFilter parses a comma separated status query value such as
// "active,archived". "all" matches every state.
func ParseStateFilter(raw string) (StateFilter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out StateFilter
	for _, part := range strings.Split(raw, ",") {
		switch s := EntityState(strings.ToLower(strings.TrimSpace(part))); s {
		case "":
			continue
		case "all":
			return StateFilter{StateActive, StateArchived, StateDeleted}, nil
		case StateActive, StateArchived, StateDeleted:
			out = append(out, s)
		default:
			return nil, fmt.Errorf("unknown status %q", part)
		}
	}
	return out, nil
}

// Includes reports whether s is selected by the filter.
func (f StateFilter) Includes(s EntityState) bool {
	if len(f) == 0 {
		return s != StateDeleted
	}
	for _, x := range f {
		if x == s {
			return true
		}
	}
	return false
}
