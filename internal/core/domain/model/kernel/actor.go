package kernel

import (
	"errors"
	"fmt"

	"entrega/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Role identifies the kind of actor invoking a core operation.
type Role string

const (
	// RoleClient is a customer placing and managing orders.
	RoleClient Role = "client"

	// RoleCourier is a repartidor claiming and delivering orders.
	RoleCourier Role = "courier"
)

// Validate rejects unknown roles.
func (r Role) Validate() error {
	if r != RoleClient && r != RoleCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid role", string(r)),
		)
	}
	return nil
}

// String returns the wire representation.
func (r Role) String() string {
	return string(r)
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Actor is a verified identity handed to the core by the authentication
// layer. The core trusts it as-is and never authenticates.
type Actor struct {
	id   UUID
	role Role

	isConstructed bool
}

// NewActor builds a verified actor from an identifier and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role, isConstructed: true}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}
