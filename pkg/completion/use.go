package completion

import (
	"fmt"

	"github.com/drogan2233/movecomplete/pkg/cursor"
)

// useCandidates computes completions for the use declaration enclosing the
// cursor.  Function aliases (`use fun`) are completed as name chains.
func (r *request) useCandidates(decl cursor.UseDecl) []Candidate {
	switch use := decl.(type) {
	case *cursor.ModuleUse:
		switch {
		case r.cursor.Within(use.Package.Loc):
			return r.packageCandidates()
		case r.cursor.After(use.Package.Loc) && r.cursor.Loc.End <= use.Module.Loc.End:
			// at the `::` after the package or on the module name
			return r.packageModuleCandidates(use.Package)
		default:
			return r.moduleUseCandidates(use.Package, use.Module, use.Clause)
		}

	case *cursor.NestedModuleUses:
		if r.cursor.Within(use.Package.Loc) {
			return r.packageCandidates()
		}
		if len(use.Uses) > 0 && r.cursor.Between(use.Package.Loc, use.Uses[0].Module.Loc) {
			// after `::` but before the first module
			return r.packageModuleCandidates(use.Package)
		}
		var candidates []Candidate
		for _, nested := range use.Uses {
			if r.cursor.Within(nested.Module.Loc) {
				return append(candidates, r.packageModuleCandidates(use.Package)...)
			}
			candidates = append(candidates, r.moduleUseCandidates(use.Package, nested.Module, nested.Clause)...)
		}
		return candidates

	case *cursor.FunUse:
		return nil

	case *cursor.PartialUse:
		var candidates []Candidate
		if r.cursor.Within(use.Package.Loc) {
			candidates = append(candidates, r.packageCandidates()...)
		}
		if use.ColonColon != nil && r.cursor.Loc.Start >= use.ColonColon.Start {
			candidates = append(candidates, r.packageModuleCandidates(use.Package)...)
		}
		return candidates

	default:
		panic(fmt.Sprintf("unhandled use declaration: %T", decl))
	}
}

// moduleUseCandidates computes completions for the member clause of a single
// module import.
func (r *request) moduleUseCandidates(pkg cursor.LeadingName, module cursor.Name, clause cursor.ModuleUseClause) []Candidate {
	ident, ok := r.packageModule(pkg, module.Value)
	if !ok {
		return nil
	}
	members := func() []Candidate {
		return r.memberCandidates(ident, cursor.PurposeAll, true)
	}

	switch c := clause.(type) {
	case nil, *cursor.ModuleAliasClause:
		return nil

	case *cursor.MembersClause:
		if c.Group != nil && r.cursor.Within(*c.Group) {
			return members()
		}
		prev := module.Loc
		for _, member := range c.Members {
			// after the `::` (or `,`) preceding this member, or on it
			if r.cursor.Between(prev, member.Name.Loc) || r.cursor.Within(member.Name.Loc) {
				return members()
			}
			prev = member.Name.Loc
		}
		return nil

	case *cursor.PartialMembersClause:
		if c.ColonColon != nil && r.cursor.Loc.Start >= c.ColonColon.Start {
			return members()
		}
		return nil

	default:
		panic(fmt.Sprintf("unhandled module use clause: %T", clause))
	}
}
