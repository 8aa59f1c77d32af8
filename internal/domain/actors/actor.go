package actors

import (
	"errors"

	"github.com/google/uuid"
)

// Actor is the pre-validated identity supplied by the authorization
// collaborator. No authentication happens in this service.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

var ErrForbidden = errors.New("actor is not allowed to perform this action")

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// CanManageEvents reports whether the actor may create events and ticket types.
func (a Actor) CanManageEvents() bool {
	return a.Role == RoleOrganizer || a.Role == RoleAdmin
}

// CanViewAnyPayment reports whether the actor may read payments it does not own.
func (a Actor) CanViewAnyPayment() bool {
	return a.Role == RoleOrganizer || a.Role == RoleAdmin
}
