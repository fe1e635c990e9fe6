package completion

import (
	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// chainCandidates computes completions for the name chain enclosing the
// cursor.  The leading segment is classified first; the remaining entries are
// then walked until the one holding the cursor is found.
func (r *request) chainCandidates(info *cursor.ChainInfo) []Candidate {
	leading := info.Chain.Leading
	entries := info.Chain.Entries

	if len(entries) > r.maxChainLength {
		r.logger.Debug().
			Int("entries", len(entries)).
			Int("max", r.maxChainLength).
			Msg("name chain too long")
		return nil
	}

	if r.cursor.Within(leading.Loc) {
		// a package fits the first position whatever the leading name
		// turns out to be: `0xCAFE::`, `some_name::`, `::some_name`
		candidates := r.packageCandidates()

		// only a plain name can also be a module or member alias
		if leading.Kind == cursor.PlainName {
			for _, alias := range r.aliases.ModuleAliases() {
				if r.visible(r.aliases.Modules[alias]) {
					candidates = append(candidates, NewCandidate(alias, KindModule))
				}
			}
			candidates = append(candidates, r.allSingleNameMemberCandidates(info.Purpose)...)
			if info.Purpose == cursor.PurposeType {
				for _, prim := range r.primitiveTypes {
					candidates = append(candidates, NewCandidate(prim, KindPrimitiveType))
				}
				for _, tp := range r.aliases.TypeParams {
					candidates = append(candidates, NewCandidate(tp, KindTypeParameter))
				}
			}
		}
		return candidates
	}

	kind, ok := r.firstComponentKind(leading)
	if !ok {
		r.logger.Trace().Str("leading", leading.String()).Msg("leading name not resolved")
		return nil
	}
	return r.walkChain(info, leading.Loc, kind, 0)
}

// walkChain looks for the chain entry at index that holds the cursor, given
// the location and kind of the component preceding it.  Each call either
// stops or advances index, so the depth is bounded by the entry count.
func (r *request) walkChain(info *cursor.ChainInfo, prevLoc symbols.Loc, prevKind ComponentKind, index int) []Candidate {
	entries := info.Chain.Entries

	r.logger.Trace().
		Int("index", index).
		Stringer("prev", prevKind).
		Msg("walking name chain")

	atColonColon := false
	if index == len(entries) {
		// past the last component only a trailing `::` can hold the cursor
		if !r.cursor.ColonColonTriggered || !r.cursor.After(prevLoc) {
			return nil
		}
		atColonColon = true
	} else if r.cursor.ColonColonTriggered && r.cursor.Between(prevLoc, entries[index].Loc) {
		atColonColon = true
	}

	if atColonColon || r.cursor.Within(entries[index].Loc) {
		return r.entryCandidates(prevKind, info.Purpose, info.InsideUse)
	}

	entry := entries[index]
	next, ok := r.nextComponentKind(prevKind, entry.Value)
	if !ok {
		r.logger.Trace().Str("entry", entry.Value).Msg("chain entry not resolved")
		return nil
	}
	return r.walkChain(info, entry.Loc, next, index+1)
}
