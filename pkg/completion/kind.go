package completion

import (
	"fmt"

	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// ComponentKind is what a chain component denotes: one of PackageKind,
// ModuleKind or MemberKind.  Kinds only narrow along a chain.
type ComponentKind interface {
	fmt.Stringer
	isComponentKind()
}

// PackageKind is a component naming a package.
type PackageKind struct {
	Leading cursor.LeadingName
}

// ModuleKind is a component naming a module.
type ModuleKind struct {
	Module symbols.ModuleIdent
}

// MemberKind is a component naming a module member.
type MemberKind struct {
	Module symbols.ModuleIdent
	Member string
}

func (PackageKind) isComponentKind() {}
func (ModuleKind) isComponentKind()  {}
func (MemberKind) isComponentKind()  {}

func (k PackageKind) String() string { return "package " + k.Leading.String() }
func (k ModuleKind) String() string  { return "module " + k.Module.String() }
func (k MemberKind) String() string {
	return "member " + k.Module.String() + symbols.Separator + k.Member
}

// firstComponentKind classifies the leading segment of a chain.  A global
// name can only be a package.  A plain name is a package, else a module
// alias, else a member alias.
func (r *request) firstComponentKind(leading cursor.LeadingName) (ComponentKind, bool) {
	switch leading.Kind {
	case cursor.PlainName:
		if r.isPackageName(leading.Name) {
			return PackageKind{Leading: leading}, true
		}
		if ident, ok := r.aliases.Modules[leading.Name]; ok {
			return ModuleKind{Module: ident}, true
		}
		if member, ok := r.aliases.LookupMember(leading.Name); ok {
			return MemberKind{Module: member.Module, Member: member.Member}, true
		}
		return nil, false
	case cursor.NumericAddress:
		if r.isPackageAddress(leading.Address) {
			return PackageKind{Leading: leading}, true
		}
		return nil, false
	case cursor.GlobalName:
		if r.isPackageName(leading.Name) {
			return PackageKind{Leading: leading}, true
		}
		return nil, false
	default:
		panic(fmt.Sprintf("unhandled leading name kind: %v", leading.Kind))
	}
}

// nextComponentKind narrows prev by the name of the following component.
func (r *request) nextComponentKind(prev ComponentKind, name string) (ComponentKind, bool) {
	switch kind := prev.(type) {
	case PackageKind:
		if ident, ok := r.packageModule(kind.Leading, name); ok {
			return ModuleKind{Module: ident}, true
		}
		return nil, false
	case ModuleKind:
		defs, ok := r.moduleDefs(kind.Module)
		if !ok || !defs.HasMember(name) {
			return nil, false
		}
		return MemberKind{Module: kind.Module, Member: name}, true
	case MemberKind:
		// variants are a terminal expansion
		return nil, false
	default:
		panic(fmt.Sprintf("unhandled component kind: %T", prev))
	}
}

// entryCandidates returns the candidates for the component following one of
// the given kind.
func (r *request) entryCandidates(prev ComponentKind, purpose cursor.Purpose, insideUse bool) []Candidate {
	switch kind := prev.(type) {
	case PackageKind:
		return r.packageModuleCandidates(kind.Leading)
	case ModuleKind:
		return r.memberCandidates(kind.Module, purpose, insideUse)
	case MemberKind:
		return r.variantCandidates(kind.Module, kind.Member)
	default:
		panic(fmt.Sprintf("unhandled component kind: %T", prev))
	}
}
