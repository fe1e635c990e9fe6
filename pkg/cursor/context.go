package cursor

import "github.com/drogan2233/movecomplete/pkg/symbols"

// Context describes where completion was requested.  It is produced by the
// front end from a raw document offset.
type Context struct {
	// Module is the module enclosing the cursor, if any.
	Module *symbols.ModuleIdent
	// Loc is the cursor location, usually zero-width.
	Loc symbols.Loc
	// Chain is the name chain enclosing the cursor, if any.
	Chain *ChainInfo
	// Use is the use declaration enclosing the cursor, if any.
	Use UseDecl
	// ColonColonTriggered is true when completion was triggered by typing
	// `::`.
	ColonColonTriggered bool
}

// InModule reports whether the cursor is inside the given module.
func (c *Context) InModule(ident symbols.ModuleIdent) bool {
	return c.Module != nil && c.Module.Equal(ident)
}

// InPackage reports whether the cursor is inside a module of the given
// module's package.
func (c *Context) InPackage(ident symbols.ModuleIdent) bool {
	return c.Module != nil && c.Module.SamePackage(ident)
}

// After reports whether the cursor starts strictly after the given location.
func (c *Context) After(loc symbols.Loc) bool {
	return c.Loc.Start > loc.End
}

// Within reports whether the cursor lies inside the given location.
func (c *Context) Within(loc symbols.Loc) bool {
	return loc.Contains(c.Loc)
}

// Between reports whether the cursor lies in the gap between the end of
// prev and the start of next.
func (c *Context) Between(prev, next symbols.Loc) bool {
	return c.Loc.Start > prev.End && c.Loc.End <= next.Start
}
