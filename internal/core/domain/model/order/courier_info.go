package order

import (
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrCourierInfoIsNotConstructed is returned when attempting to use an
// improperly initialized CourierInfo.
var ErrCourierInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"courier info must be created via NewCourierInfo constructor")

// CourierInfo is the contact snapshot of the courier assigned to a delivery.
// The courier directory itself is an external collaborator; the order only
// records who was assigned at scheduling time, so the dashboard can render
// the name and phone even if the directory entry later changes.
//
// CourierInfo is an immutable value object.
type CourierInfo struct {
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewCourierInfo creates a courier contact snapshot.
// The name is required; the phone may be empty.
func NewCourierInfo(name, phone string) (CourierInfo, error) {
	if name == "" {
		return CourierInfo{}, errs.NewValueIsRequiredError("courier name")
	}
	return CourierInfo{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CourierInfo was created through its constructor.
func (c CourierInfo) Validate() error {
	return c.guard.Validate(ErrCourierInfoIsNotConstructed)
}

// Name returns the courier's display name.
func (c CourierInfo) Name() string {
	return c.name
}

// Phone returns the courier's contact phone, possibly empty.
func (c CourierInfo) Phone() string {
	return c.phone
}
