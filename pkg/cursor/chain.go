package cursor

import (
	"fmt"
	"strings"

	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// LeadingKind discriminates the syntactic form of a chain's first segment.
type LeadingKind int

const (
	// PlainName is an identifier such as `std` or `vector`.
	PlainName LeadingKind = iota
	// NumericAddress is an address literal such as `0x1`.
	NumericAddress
	// GlobalName is an explicitly global-qualified name such as `::std`.
	GlobalName
)

// String implements fmt.Stringer
func (k LeadingKind) String() string {
	switch k {
	case PlainName:
		return "name"
	case NumericAddress:
		return "address"
	case GlobalName:
		return "global"
	default:
		return fmt.Sprintf("LeadingKind(%d)", int(k))
	}
}

// Name is an identifier together with its source location.
type Name struct {
	Value string
	Loc   symbols.Loc
}

// LeadingName is the first segment of a name chain.
type LeadingName struct {
	Kind LeadingKind
	// Name is set for PlainName and GlobalName.
	Name string
	// Address is set for NumericAddress.
	Address symbols.NumericalAddress
	Loc     symbols.Loc
}

// NewPlainName constructs a PlainName leading segment.
func NewPlainName(name string, loc symbols.Loc) LeadingName {
	return LeadingName{Kind: PlainName, Name: name, Loc: loc}
}

// NewGlobalName constructs a GlobalName leading segment.
func NewGlobalName(name string, loc symbols.Loc) LeadingName {
	return LeadingName{Kind: GlobalName, Name: name, Loc: loc}
}

// NewNumericAddress constructs a NumericAddress leading segment.
func NewNumericAddress(addr symbols.NumericalAddress, loc symbols.Loc) LeadingName {
	return LeadingName{Kind: NumericAddress, Address: addr, Loc: loc}
}

// String implements fmt.Stringer
func (l LeadingName) String() string {
	switch l.Kind {
	case NumericAddress:
		return l.Address.String()
	case GlobalName:
		return symbols.Separator + l.Name
	default:
		return l.Name
	}
}

// NameChain is a `::` separated access path.  Entry locations are strictly
// increasing and follow the leading segment.
type NameChain struct {
	Leading LeadingName
	Entries []Name
}

// String implements fmt.Stringer
func (c NameChain) String() string {
	parts := []string{c.Leading.String()}
	for _, e := range c.Entries {
		parts = append(parts, e.Value)
	}
	return strings.Join(parts, symbols.Separator)
}

// Purpose restricts what a chain may denote at the cursor position.
type Purpose int

const (
	// PurposeAll accepts any member.
	PurposeAll Purpose = iota
	// PurposeType accepts datatypes only.
	PurposeType
	// PurposeFunction accepts functions only.
	PurposeFunction
)

// String implements fmt.Stringer
func (p Purpose) String() string {
	switch p {
	case PurposeAll:
		return "all"
	case PurposeType:
		return "type"
	case PurposeFunction:
		return "function"
	default:
		return fmt.Sprintf("Purpose(%d)", int(p))
	}
}

// AcceptsFunctions reports whether functions may be offered.
func (p Purpose) AcceptsFunctions() bool {
	return p == PurposeAll || p == PurposeFunction
}

// AcceptsTypes reports whether datatypes may be offered.
func (p Purpose) AcceptsTypes() bool {
	return p == PurposeAll || p == PurposeType
}

// ChainInfo is the name chain enclosing the cursor.
type ChainInfo struct {
	Chain   NameChain
	Purpose Purpose
	// InsideUse is true when the chain is the target of a `use fun`
	// declaration.
	InsideUse bool
}
