package symbols

import (
	"fmt"
	"math/big"
	"strings"
)

// NumericalAddress is a package address value in canonical short hex form,
// for example "0x1".
type NumericalAddress string

// ParseNumericalAddress parses a hex ("0x0001") or decimal ("1") address
// literal into its canonical form.
func ParseNumericalAddress(s string) (NumericalAddress, error) {
	var n big.Int
	text := strings.ToLower(strings.TrimSpace(s))
	base := 10
	if strings.HasPrefix(text, "0x") {
		text = text[2:]
		base = 16
	}
	if text == "" {
		return "", fmt.Errorf("invalid address literal %q", s)
	}
	if _, ok := n.SetString(text, base); !ok {
		return "", fmt.Errorf("invalid address literal %q", s)
	}
	if n.Sign() < 0 || n.BitLen() > 256 {
		return "", fmt.Errorf("address literal out of range: %q", s)
	}
	return NumericalAddress("0x" + n.Text(16)), nil
}

// MustParseNumericalAddress is like ParseNumericalAddress but panics on error.
func MustParseNumericalAddress(s string) NumericalAddress {
	addr, err := ParseNumericalAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// String implements fmt.Stringer
func (a NumericalAddress) String() string {
	return string(a)
}

// AddressKind discriminates the Address union.
type AddressKind int

const (
	// AddressNumerical is an address with a resolved numeric value and an
	// optional human-readable name.
	AddressNumerical AddressKind = iota
	// AddressNamedUnassigned is a named address whose value was never
	// assigned.
	AddressNamedUnassigned
)

// Address identifies the package a module belongs to.
type Address struct {
	Kind AddressKind
	// Name is the address name, optional for numerical addresses.
	Name string
	// Value is the numeric value, empty for unassigned named addresses.
	Value NumericalAddress
}

// NumericalAddressOf constructs a numerical address, optionally named.
func NumericalAddressOf(value NumericalAddress, name string) Address {
	return Address{Kind: AddressNumerical, Name: name, Value: value}
}

// NamedAddressOf constructs an unassigned named address.
func NamedAddressOf(name string) Address {
	return Address{Kind: AddressNamedUnassigned, Name: name}
}

// Key returns the canonical identity of the address: the numeric value when
// one is assigned, the name otherwise.
func (a Address) Key() string {
	switch a.Kind {
	case AddressNumerical:
		return a.Value.String()
	case AddressNamedUnassigned:
		return a.Name
	default:
		panic(fmt.Sprintf("unknown address kind: %d", a.Kind))
	}
}

// String implements fmt.Stringer.  The name is preferred when present.
func (a Address) String() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Value.String()
}
