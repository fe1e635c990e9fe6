package scope

import "github.com/drogan2233/movecomplete/pkg/symbols"

// Provider supplies the alias snapshot in effect at a chain root.
type Provider interface {
	// AliasScope returns the snapshot for the chain whose leading segment is
	// at the given location.  If there is none `(nil, false)` is returned.
	AliasScope(root symbols.Loc) (*AliasScope, bool)
}

// Table implements Provider over a map keyed by chain-root location.
type Table map[symbols.Loc]*AliasScope

// AliasScope implements the Provider interface.
func (t Table) AliasScope(root symbols.Loc) (*AliasScope, bool) {
	s, ok := t[root]
	return s, ok && s != nil
}

// Lookup returns the snapshot for the given chain root, substituting an empty
// one when the front end did not produce any.
func Lookup(p Provider, root symbols.Loc) *AliasScope {
	if p != nil {
		if s, ok := p.AliasScope(root); ok {
			return s
		}
	}
	return New()
}
