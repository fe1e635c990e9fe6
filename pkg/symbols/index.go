package symbols

// Index is a read-only view over the module definitions of a compilation
// unit.
type Index interface {
	// Module returns the definitions of the given module.  If not known
	// `(nil, false)` is returned.
	Module(ident ModuleIdent) (*ModuleDefs, bool)

	// Modules returns all known modules, sorted by their canonical key.
	Modules() []*ModuleDefs
}
