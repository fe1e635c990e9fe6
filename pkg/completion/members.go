package completion

import (
	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/scope"
	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// memberCandidates lists the members of a module that fit the purpose and
// are visible from the module enclosing the cursor.
func (r *request) memberCandidates(ident symbols.ModuleIdent, purpose cursor.Purpose, insideUse bool) []Candidate {
	defs, ok := r.moduleDefs(ident)
	if !ok {
		r.logger.Trace().Str("module", ident.String()).Msg("module not indexed")
		return nil
	}

	sameModule := r.cursor.InModule(defs.Ident)
	samePackage := r.cursor.InPackage(defs.Ident)

	var candidates []Candidate

	if purpose.AcceptsFunctions() {
		for _, name := range defs.FunctionNames() {
			fn := defs.Functions[name]
			if !functionVisible(fn.Visibility, sameModule, samePackage) {
				continue
			}
			candidates = append(candidates, callCandidate(name, fn, insideUse))
		}
	}

	if purpose.AcceptsTypes() {
		for _, name := range defs.StructNames() {
			candidates = append(candidates, datatypeCandidates(r.cursor, defs.Ident, name, KindStruct, defs.Structs[name].Fields)...)
		}
		for _, name := range defs.EnumNames() {
			candidates = append(candidates, NewCandidate(name, KindEnum))
		}
	}

	if purpose == cursor.PurposeAll && sameModule {
		for _, name := range defs.ConstantNames() {
			candidates = append(candidates, NewCandidate(name, KindConstant))
		}
	}

	return candidates
}

func functionVisible(v symbols.Visibility, sameModule, samePackage bool) bool {
	switch v {
	case symbols.Internal:
		return sameModule
	case symbols.Package:
		return samePackage
	default:
		return true
	}
}

// singleNameMemberCandidates returns the candidates for a member alias used
// as a chain of length one.  The alias, not the member name, is the label.
func (r *request) singleNameMemberCandidates(alias scope.MemberAlias, purpose cursor.Purpose) []Candidate {
	defs, ok := r.moduleDefs(alias.Module)
	if !ok {
		return nil
	}

	if fn, ok := defs.Functions[alias.Member]; ok {
		if !purpose.AcceptsFunctions() {
			return nil
		}
		return []Candidate{callCandidate(alias.Alias, fn, false)}
	}

	if sdef, ok := defs.Structs[alias.Member]; ok {
		if !purpose.AcceptsTypes() {
			return nil
		}
		return datatypeCandidates(r.cursor, defs.Ident, alias.Alias, KindStruct, sdef.Fields)
	}

	if _, ok := defs.Enums[alias.Member]; ok {
		if !purpose.AcceptsTypes() {
			return nil
		}
		return []Candidate{NewCandidate(alias.Alias, KindEnum)}
	}

	if _, ok := defs.Constants[alias.Member]; ok {
		if purpose != cursor.PurposeAll {
			return nil
		}
		return []Candidate{NewCandidate(alias.Alias, KindConstant)}
	}

	return nil
}

func (r *request) allSingleNameMemberCandidates(purpose cursor.Purpose) []Candidate {
	var candidates []Candidate
	for _, alias := range r.aliases.Members {
		candidates = append(candidates, r.singleNameMemberCandidates(alias, purpose)...)
	}
	return candidates
}

// variantCandidates lists the variants of an enum, in declaration order.
func (r *request) variantCandidates(ident symbols.ModuleIdent, enum string) []Candidate {
	defs, ok := r.moduleDefs(ident)
	if !ok {
		return nil
	}
	edef, ok := defs.Enums[enum]
	if !ok {
		r.logger.Trace().Str("module", ident.String()).Str("member", enum).Msg("not an enum")
		return nil
	}
	var candidates []Candidate
	for _, v := range edef.Variants {
		candidates = append(candidates, datatypeCandidates(r.cursor, defs.Ident, v.Name, KindEnumVariant, v.Fields)...)
	}
	return candidates
}
