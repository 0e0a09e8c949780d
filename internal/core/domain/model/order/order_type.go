package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Type classifies the upstream feed an order originated from.
// Custom work is slower to prepare than regular stock, so the type feeds the
// processing-time estimate used by the urgency scorer.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeRegular is a stock product order.
	TypeRegular

	// TypeCustomOrder is a made-to-order item based on an existing product.
	TypeCustomOrder

	// TypeCustomDesign is a fully customer-designed item.
	TypeCustomDesign
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeRegular:      "regular",
		TypeCustomOrder:  "custom_order",
		TypeCustomDesign: "custom_design",
	}
}

// TypeFromString parses the wire representation of an order type.
// Returns an error for anything outside regular, custom_order, custom_design.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderType", fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is one of the known order types.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%d is not a valid order type", int(t)))
	}
	return nil
}

// String returns the wire representation of the order type.
// Implements the fmt.Stringer interface; invalid values yield "unknown".
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
