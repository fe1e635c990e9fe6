package completion

import (
	"sort"

	"github.com/drogan2233/movecomplete/pkg/collections"
	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// indexModules returns the visible modules of the index, computed once per
// request.
func (r *request) indexModules() []*symbols.ModuleDefs {
	if r.modules == nil {
		all := r.index.Modules()
		r.modules = make([]*symbols.ModuleDefs, 0, len(all))
		for _, defs := range all {
			if r.visible(defs.Ident) {
				r.modules = append(r.modules, defs)
			}
		}
	}
	return r.modules
}

// moduleDefs looks up a visible module.
func (r *request) moduleDefs(ident symbols.ModuleIdent) (*symbols.ModuleDefs, bool) {
	if !r.visible(ident) {
		return nil, false
	}
	return r.index.Module(ident)
}

// isPkgModIdent reports whether the module belongs to the package named by
// the leading segment.
func isPkgModIdent(ident symbols.ModuleIdent, leading cursor.LeadingName) bool {
	addr := ident.Address
	switch addr.Kind {
	case symbols.AddressNamedUnassigned:
		return leading.Kind != cursor.NumericAddress && leading.Name == addr.Name
	case symbols.AddressNumerical:
		switch leading.Kind {
		case cursor.NumericAddress:
			return leading.Address == addr.Value
		case cursor.PlainName, cursor.GlobalName:
			return addr.Name != "" && leading.Name == addr.Name
		}
	}
	return false
}

// pkgModIdents returns the modules of the package named by the leading
// segment, from both the alias scope and the index, sorted by key.
func (r *request) pkgModIdents(leading cursor.LeadingName) []symbols.ModuleIdent {
	seen := make(map[string]bool)
	var idents []symbols.ModuleIdent
	add := func(ident symbols.ModuleIdent) {
		if seen[ident.Key()] || !isPkgModIdent(ident, leading) || !r.visible(ident) {
			return
		}
		seen[ident.Key()] = true
		idents = append(idents, ident)
	}
	for _, alias := range r.aliases.ModuleAliases() {
		add(r.aliases.Modules[alias])
	}
	for _, defs := range r.indexModules() {
		add(defs.Ident)
	}
	sort.Slice(idents, func(i, j int) bool {
		return idents[i].Key() < idents[j].Key()
	})
	return idents
}

// packageModule finds the module with the given name in the package named
// by the leading segment.
func (r *request) packageModule(leading cursor.LeadingName, name string) (symbols.ModuleIdent, bool) {
	for _, ident := range r.pkgModIdents(leading) {
		if ident.Module == name {
			return ident, true
		}
	}
	return symbols.ModuleIdent{}, false
}

// isPackageName reports whether the name denotes a package of the program.
func (r *request) isPackageName(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := r.aliases.Addresses[name]; ok {
		return true
	}
	for _, defs := range r.indexModules() {
		if defs.Ident.Address.Name == name {
			return true
		}
	}
	return false
}

// isPackageAddress reports whether the numeric address denotes a package of
// the program.
func (r *request) isPackageAddress(value symbols.NumericalAddress) bool {
	if r.aliases.HasAddress(value) {
		return true
	}
	for _, defs := range r.indexModules() {
		addr := defs.Ident.Address
		if addr.Kind == symbols.AddressNumerical && addr.Value == value {
			return true
		}
	}
	return false
}

// allPackages returns the names and numeric values of every package known
// to the alias scope or the index.
func (r *request) allPackages() []string {
	packages := make(collections.StringSet)
	for name, value := range r.aliases.Addresses {
		packages.Add(name, value.String())
	}
	for _, defs := range r.indexModules() {
		addr := defs.Ident.Address
		switch addr.Kind {
		case symbols.AddressNumerical:
			packages.Add(addr.Name, addr.Value.String())
		case symbols.AddressNamedUnassigned:
			packages.Add(addr.Name)
		}
	}
	return packages.Sorted()
}

func (r *request) packageCandidates() []Candidate {
	packages := r.allPackages()
	candidates := make([]Candidate, len(packages))
	for i, name := range packages {
		candidates[i] = NewCandidate(name, KindPackage)
	}
	return candidates
}

func (r *request) packageModuleCandidates(leading cursor.LeadingName) []Candidate {
	var candidates []Candidate
	for _, ident := range r.pkgModIdents(leading) {
		candidates = append(candidates, NewCandidate(ident.Module, KindModule))
	}
	return candidates
}
