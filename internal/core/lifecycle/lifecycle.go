// Package lifecycle applies bulk actions to the active/archived/deleted
// state of catalog entities.
package lifecycle

import (
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/qmuntal/stateless"
)

// ResourceActions are the bulk actions accepted for resources.
var ResourceActions = []domain.BulkAction{domain.ActionArchive, domain.ActionRestore, domain.ActionDelete}

// EmployeeActions are the bulk actions accepted for employees.
var EmployeeActions = []domain.BulkAction{
	domain.ActionActivate, domain.ActionDeactivate,
	domain.ActionArchive, domain.ActionRestore, domain.ActionDelete,
}

// Normalize maps the employee aliases onto the canonical triggers:
// deactivate is archive, activate is restore.
func Normalize(action domain.BulkAction) domain.BulkAction {
	switch action {
	case domain.ActionDeactivate:
		return domain.ActionArchive
	case domain.ActionActivate:
		return domain.ActionRestore
	default:
		return action
	}
}

// Supports reports whether action is listed in allowed.
func Supports(allowed []domain.BulkAction, action domain.BulkAction) bool {
	for _, a := range allowed {
		if a == action {
			return true
		}
	}
	return false
}

func newMachine(initial domain.EntityState) *stateless.StateMachine {
	machine := stateless.NewStateMachine(initial)

	machine.Configure(domain.StateActive).
		Permit(domain.ActionArchive, domain.StateArchived).
		Permit(domain.ActionDelete, domain.StateDeleted).
		Ignore(domain.ActionRestore)

	machine.Configure(domain.StateArchived).
		Permit(domain.ActionRestore, domain.StateActive).
		Permit(domain.ActionDelete, domain.StateDeleted).
		Ignore(domain.ActionArchive)

	// Deleted entities must be restored before they can be archived again.
	machine.Configure(domain.StateDeleted).
		Permit(domain.ActionRestore, domain.StateActive).
		Ignore(domain.ActionDelete)

	return machine
}

// Transition returns the state reached by applying action to current.
// Repeating an action on an entity already in the target state is a no-op.
func Transition(current domain.EntityState, action domain.BulkAction) (domain.EntityState, error) {
	trigger := Normalize(action)
	switch trigger {
	case domain.ActionArchive, domain.ActionRestore, domain.ActionDelete:
	default:
		return current, fmt.Errorf("%w: unknown action %q", apperrors.ErrInvalidTransition, action)
	}

	machine := newMachine(current)
	if err := machine.Fire(trigger); err != nil {
		return current, fmt.Errorf("%w: cannot %s a %s entity", apperrors.ErrInvalidTransition, action, current)
	}
	return machine.MustState().(domain.EntityState), nil
}
