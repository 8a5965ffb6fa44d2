package kernel

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

// DefaultCountry is assumed when an address is constructed without one.
const DefaultCountry = "USA"

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory function.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is an immutable value object describing a shipping destination.
//
// Address has no invariants beyond field presence: street and city are
// required, country falls back to DefaultCountry when empty. Once
// constructed it cannot be mutated.
type Address struct {
	street  string
	city    string
	state   string
	zip     string
	country string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street and city are required;
// an empty country defaults to DefaultCountry.
func NewAddress(street, city, state, zip, country string) (Address, error) {
	if country == "" {
		country = DefaultCountry
	}

	address := Address{
		state:   state,
		zip:     zip,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region of the address.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code of the address.
func (a Address) Zip() string {
	return a.zip
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// String returns a single-line rendering suitable for labels and logs.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.street, a.city, a.state, a.zip, a.country)
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zip == other.zip &&
		a.country == other.country
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
