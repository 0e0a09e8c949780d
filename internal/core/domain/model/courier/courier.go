package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier is a roster entry for a delivery person. It carries identity and
// contact details plus the standing that decides whether the courier may be
// assigned new deliveries.
//
// The order aggregate never references this entity directly: an assignment
// snapshots the courier's name and phone into the order, so roster changes
// after the fact do not rewrite history.
type Courier struct {
	id     kernel.UUID
	name   string
	phone  string
	status Status

	guard guard.ConstructorGuard
}

// NewCourier creates a new active courier.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty)
//   - phone: contact number, may be empty
func NewCourier(id kernel.UUID, name string, phone string) (*Courier, error) {
	c := &Courier{
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	return c, nil
}

// RestoreCourier reconstructs a courier from persistent storage with its
// stored standing.
func RestoreCourier(id kernel.UUID, name string, phone string, status Status) (*Courier, error) {
	c, err := NewCourier(id, name, phone)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	return c, nil
}

// Validate checks that the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number, possibly empty.
func (c *Courier) Phone() string {
	return c.phone
}

// Status returns the courier's roster standing.
func (c *Courier) Status() Status {
	return c.status
}

// IsActive reports whether the courier may take new delivery assignments.
func (c *Courier) IsActive() bool {
	return c.status.IsAssignable()
}

// Suspend takes the courier off the roster temporarily. Existing assignments
// are untouched: they hold a snapshot, not a reference.
func (c *Courier) Suspend() {
	c.status = StatusSuspended
}

// Reinstate returns a suspended courier to the active roster.
func (c *Courier) Reinstate() error {
	if c.status == StatusInactive {
		return errs.NewCourierUnavailableError(c.id.String(), "courier is inactive and cannot be reinstated")
	}
	c.status = StatusActive
	return nil
}

// Deactivate permanently removes the courier from the roster.
func (c *Courier) Deactivate() {
	c.status = StatusInactive
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
