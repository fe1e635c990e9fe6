package scope

import (
	"fmt"
	"sort"
	"strings"

	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// MemberAlias binds a short name to a member of a module, as introduced by
// `use pkg::mod::{member as alias}`.
type MemberAlias struct {
	Alias  string
	Module symbols.ModuleIdent
	Member string
}

// AliasScope is the set of names visible at a given name chain root.  It is
// computed by the front end and never modified afterwards.
type AliasScope struct {
	// Addresses maps visible address names to their values.
	Addresses map[string]symbols.NumericalAddress
	// Modules maps module aliases to the modules they stand for.
	Modules map[string]symbols.ModuleIdent
	// Members is the set of member aliases, sorted by alias.
	Members []MemberAlias
	// TypeParams are the type parameter names in scope.
	TypeParams []string
}

// New constructs an empty AliasScope.
func New() *AliasScope {
	return &AliasScope{
		Addresses: make(map[string]symbols.NumericalAddress),
		Modules:   make(map[string]symbols.ModuleIdent),
	}
}

// AddMember inserts a member alias, keeping Members sorted by alias.
func (s *AliasScope) AddMember(alias MemberAlias) {
	i := sort.Search(len(s.Members), func(i int) bool {
		return s.Members[i].Alias >= alias.Alias
	})
	s.Members = append(s.Members, MemberAlias{})
	copy(s.Members[i+1:], s.Members[i:])
	s.Members[i] = alias
}

// LookupMember returns the first member alias with the given name.
func (s *AliasScope) LookupMember(alias string) (MemberAlias, bool) {
	for _, m := range s.Members {
		if m.Alias == alias {
			return m, true
		}
	}
	return MemberAlias{}, false
}

// HasAddress reports whether the given value is bound to some visible
// address name.
func (s *AliasScope) HasAddress(value symbols.NumericalAddress) bool {
	for _, v := range s.Addresses {
		if v == value {
			return true
		}
	}
	return false
}

// AddressNames returns the visible address names in sorted order.
func (s *AliasScope) AddressNames() []string {
	names := make([]string, 0, len(s.Addresses))
	for name := range s.Addresses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModuleAliases returns the module aliases in sorted order.
func (s *AliasScope) ModuleAliases() []string {
	names := make([]string, 0, len(s.Modules))
	for name := range s.Modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String implements the fmt.Stringer interface
func (s *AliasScope) String() string {
	var buf strings.Builder
	for _, name := range s.AddressNames() {
		buf.WriteString(fmt.Sprintf("address %s = %s\n", name, s.Addresses[name]))
	}
	for _, name := range s.ModuleAliases() {
		buf.WriteString(fmt.Sprintf("module %s = %s\n", name, s.Modules[name]))
	}
	for _, m := range s.Members {
		buf.WriteString(fmt.Sprintf("member %s = %s::%s\n", m.Alias, m.Module, m.Member))
	}
	for _, tp := range s.TypeParams {
		buf.WriteString(fmt.Sprintf("tparam %s\n", tp))
	}
	return buf.String()
}
