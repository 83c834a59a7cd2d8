// Package dialog implements the blocking delete-confirmation modal. The
// callback fires zero or one times per dialog lifecycle — only on explicit
// confirmation — and the modal is unmounted on every close path.
package dialog

import (
	"fmt"

	"github.com/google/uuid"

	"careboard/internal/domain"
)

// ModalHost mounts and unmounts modal content in the page.
type ModalHost interface {
	MountModal(content string)
	UnmountModal()
}

// NopHost discards modal updates.
type NopHost struct{}

func (NopHost) MountModal(string) {}
func (NopHost) UnmountModal()     {}

// Confirm is one delete-confirmation dialog instance.
type Confirm struct {
	id       string
	host     ModalHost
	entity   domain.Entity
	key      string
	display  string
	callback func(key string)
	open     bool
	fired    bool
}

// Open mounts a confirmation modal naming the target type and identifier.
// callback receives key only on explicit confirmation.
func Open(host ModalHost, entity domain.Entity, key, display string, callback func(key string)) *Confirm {
	if host == nil {
		host = NopHost{}
	}
	d := &Confirm{
		id:       uuid.NewString(),
		host:     host,
		entity:   entity,
		key:      key,
		display:  display,
		callback: callback,
		open:     true,
	}
	host.MountModal(d.Body())
	return d
}

// Body returns the modal text.
func (d *Confirm) Body() string {
	return fmt.Sprintf("Delete %s #%s?\n\n  %s\n\nThis cannot be undone.  [y] delete   [n/esc] cancel", d.entity, d.key, d.display)
}

// ID returns the dialog instance identifier.
func (d *Confirm) ID() string { return d.id }

// IsOpen reports whether the modal is still mounted.
func (d *Confirm) IsOpen() bool { return d.open }

// Entity returns the target entity type.
func (d *Confirm) Entity() domain.Entity { return d.entity }

// Key returns the target record identifier.
func (d *Confirm) Key() string { return d.key }

// ConfirmDelete closes the dialog and fires the callback exactly once.
// Calls after the dialog has closed are no-ops.
func (d *Confirm) ConfirmDelete() {
	if !d.open {
		return
	}
	d.teardown()
	if d.callback != nil && !d.fired {
		d.fired = true
		d.callback(d.key)
	}
}

// Cancel closes the dialog without firing the callback.
func (d *Confirm) Cancel() {
	if !d.open {
		return
	}
	d.teardown()
}

// Close is the outside-dismissal path; identical to Cancel.
func (d *Confirm) Close() {
	d.Cancel()
}

func (d *Confirm) teardown() {
	d.open = false
	d.host.UnmountModal()
}
