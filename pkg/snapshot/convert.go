package snapshot

import (
	"fmt"
	"strings"

	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/scope"
	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// Inputs are the engine inputs described by a snapshot.
type Inputs struct {
	Index   *symbols.TrieIndex
	Aliases scope.Table
	Cursor  *cursor.Context
}

// Inputs converts the snapshot.  Module references are resolved against the
// snapshot modules first, so "P::m" and "0x1::m" name the same module when
// P is declared at 0x1.
func (s *Snapshot) Inputs() (*Inputs, error) {
	c := &converter{
		file:    s.Cursor.File,
		modules: make(map[string]symbols.ModuleIdent),
	}

	index := symbols.NewTrieIndex()
	for i, spec := range s.Modules {
		defs, err := c.moduleDefs(spec)
		if err != nil {
			return nil, fmt.Errorf("modules[%d]: %w", i, err)
		}
		if err := index.AddModule(defs); err != nil {
			return nil, fmt.Errorf("modules[%d]: %w", i, err)
		}
		c.modules[defs.Ident.Key()] = defs.Ident
		c.modules[defs.Ident.String()] = defs.Ident
	}

	aliases := make(scope.Table, len(s.Aliases))
	for i, spec := range s.Aliases {
		as, err := c.aliasScope(spec)
		if err != nil {
			return nil, fmt.Errorf("aliases[%d]: %w", i, err)
		}
		aliases[c.loc(spec.Root)] = as
	}

	cur, err := c.cursor(s.Cursor)
	if err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return &Inputs{Index: index, Aliases: aliases, Cursor: cur}, nil
}

type converter struct {
	file    string
	modules map[string]symbols.ModuleIdent
}

func (c *converter) loc(span SpanSpec) symbols.Loc {
	return symbols.NewLoc(c.file, span.Start, span.End)
}

func (c *converter) locPtr(span *SpanSpec) *symbols.Loc {
	if span == nil {
		return nil
	}
	loc := c.loc(*span)
	return &loc
}

func (c *converter) name(spec NameSpec) cursor.Name {
	return cursor.Name{Value: spec.Value, Loc: c.loc(spec.SpanSpec)}
}

func (c *converter) namePtr(spec *NameSpec) *cursor.Name {
	if spec == nil {
		return nil
	}
	name := c.name(*spec)
	return &name
}

func (c *converter) moduleDefs(spec ModuleSpec) (*symbols.ModuleDefs, error) {
	var addr symbols.Address
	switch {
	case spec.Address != "":
		value, err := symbols.ParseNumericalAddress(spec.Address)
		if err != nil {
			return nil, err
		}
		addr = symbols.NumericalAddressOf(value, spec.Package)
	case spec.Package != "":
		addr = symbols.NamedAddressOf(spec.Package)
	default:
		return nil, fmt.Errorf("module %q has neither address nor package", spec.Name)
	}

	defs := symbols.NewModuleDefs(symbols.NewModuleIdent(addr, spec.Name))
	declare := func(name string) error {
		if name == "" {
			return fmt.Errorf("%s: member without a name", defs.Ident)
		}
		if defs.HasMember(name) {
			return fmt.Errorf("%s: duplicate member %q", defs.Ident, name)
		}
		return nil
	}

	for _, fn := range spec.Functions {
		if err := declare(fn.Name); err != nil {
			return nil, err
		}
		vis, err := parseVisibility(fn.Visibility)
		if err != nil {
			return nil, fmt.Errorf("%s::%s: %w", defs.Ident, fn.Name, err)
		}
		params := make([]symbols.Param, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = symbols.Param{Name: p.Name, Type: p.Type}
		}
		defs.Functions[fn.Name] = &symbols.FunctionDef{
			Name:       fn.Name,
			Visibility: vis,
			Macro:      fn.Macro,
			TypeParams: fn.TypeParams,
			Params:     params,
			Return:     fn.Return,
		}
	}
	for _, st := range spec.Structs {
		if err := declare(st.Name); err != nil {
			return nil, err
		}
		defs.Structs[st.Name] = &symbols.StructDef{Name: st.Name, Fields: fields(st)}
	}
	for _, en := range spec.Enums {
		if err := declare(en.Name); err != nil {
			return nil, err
		}
		edef := &symbols.EnumDef{Name: en.Name}
		for _, v := range en.Variants {
			edef.Variants = append(edef.Variants, &symbols.VariantDef{Name: v.Name, Fields: fields(v)})
		}
		defs.Enums[en.Name] = edef
	}
	for _, name := range spec.Constants {
		if err := declare(name); err != nil {
			return nil, err
		}
		defs.Constants[name] = &symbols.ConstantDef{Name: name}
	}
	return defs, nil
}

func fields(spec StructSpec) symbols.Fields {
	return symbols.Fields{Names: spec.Fields, Positional: spec.Positional}
}

func parseVisibility(s string) (symbols.Visibility, error) {
	switch s {
	case "", "internal":
		return symbols.Internal, nil
	case "package", "friend":
		return symbols.Package, nil
	case "public":
		return symbols.Public, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q", s)
	}
}

// moduleRef resolves a "pkg::module" reference.
func (c *converter) moduleRef(ref string) (symbols.ModuleIdent, error) {
	if ident, ok := c.modules[ref]; ok {
		return ident, nil
	}
	pkg, module, ok := strings.Cut(ref, symbols.Separator)
	if !ok || pkg == "" || module == "" || strings.Contains(module, symbols.Separator) {
		return symbols.ModuleIdent{}, fmt.Errorf("malformed module reference %q", ref)
	}
	if isAddressLiteral(pkg) {
		value, err := symbols.ParseNumericalAddress(pkg)
		if err != nil {
			return symbols.ModuleIdent{}, err
		}
		return symbols.NewModuleIdent(symbols.NumericalAddressOf(value, ""), module), nil
	}
	return symbols.NewModuleIdent(symbols.NamedAddressOf(pkg), module), nil
}

func isAddressLiteral(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func (c *converter) aliasScope(spec AliasSpec) (*scope.AliasScope, error) {
	as := scope.New()
	for name, value := range spec.Addresses {
		addr, err := symbols.ParseNumericalAddress(value)
		if err != nil {
			return nil, fmt.Errorf("address %s: %w", name, err)
		}
		as.Addresses[name] = addr
	}
	for alias, ref := range spec.Modules {
		ident, err := c.moduleRef(ref)
		if err != nil {
			return nil, fmt.Errorf("module alias %s: %w", alias, err)
		}
		as.Modules[alias] = ident
	}
	for _, m := range spec.Members {
		ident, err := c.moduleRef(m.Module)
		if err != nil {
			return nil, fmt.Errorf("member alias %s: %w", m.Alias, err)
		}
		as.AddMember(scope.MemberAlias{Alias: m.Alias, Module: ident, Member: m.Member})
	}
	as.TypeParams = spec.TypeParams
	return as, nil
}

func (c *converter) leading(spec LeadingSpec) (cursor.LeadingName, error) {
	loc := c.loc(spec.SpanSpec)
	switch spec.Kind {
	case "", "name":
		return cursor.NewPlainName(spec.Value, loc), nil
	case "global":
		return cursor.NewGlobalName(spec.Value, loc), nil
	case "address":
		addr, err := symbols.ParseNumericalAddress(spec.Value)
		if err != nil {
			return cursor.LeadingName{}, err
		}
		return cursor.NewNumericAddress(addr, loc), nil
	default:
		return cursor.LeadingName{}, fmt.Errorf("unknown leading kind %q", spec.Kind)
	}
}

func parsePurpose(s string) (cursor.Purpose, error) {
	switch s {
	case "", "all":
		return cursor.PurposeAll, nil
	case "type":
		return cursor.PurposeType, nil
	case "function":
		return cursor.PurposeFunction, nil
	default:
		return 0, fmt.Errorf("unknown purpose %q", s)
	}
}

func (c *converter) cursor(spec CursorSpec) (*cursor.Context, error) {
	cur := &cursor.Context{
		Loc:                 symbols.NewLoc(c.file, spec.Offset, spec.Offset),
		ColonColonTriggered: spec.ColonColon,
	}
	if spec.Module != "" {
		ident, err := c.moduleRef(spec.Module)
		if err != nil {
			return nil, err
		}
		cur.Module = &ident
	}
	if spec.Chain != nil {
		chain, err := c.chain(*spec.Chain)
		if err != nil {
			return nil, fmt.Errorf("chain: %w", err)
		}
		cur.Chain = chain
	}
	if spec.Use != nil {
		use, err := c.use(*spec.Use)
		if err != nil {
			return nil, fmt.Errorf("use: %w", err)
		}
		cur.Use = use
	}
	return cur, nil
}

func (c *converter) chain(spec ChainSpec) (*cursor.ChainInfo, error) {
	purpose, err := parsePurpose(spec.Purpose)
	if err != nil {
		return nil, err
	}
	leading, err := c.leading(spec.Leading)
	if err != nil {
		return nil, err
	}
	info := &cursor.ChainInfo{
		Chain:     cursor.NameChain{Leading: leading},
		Purpose:   purpose,
		InsideUse: spec.InsideUse,
	}
	prev := leading.Loc
	for _, e := range spec.Entries {
		name := c.name(e)
		if name.Loc.Start < prev.End {
			return nil, fmt.Errorf("entry %q at %v overlaps the previous component", e.Value, name.Loc)
		}
		info.Chain.Entries = append(info.Chain.Entries, name)
		prev = name.Loc
	}
	return info, nil
}

func (c *converter) use(spec UseSpec) (cursor.UseDecl, error) {
	if spec.Kind == "fun" {
		return &cursor.FunUse{}, nil
	}
	pkg, err := c.leading(spec.Package)
	if err != nil {
		return nil, fmt.Errorf("package: %w", err)
	}

	switch spec.Kind {
	case "module":
		if spec.Module == nil {
			return nil, fmt.Errorf("module use without a module")
		}
		clause, err := c.clause(spec.Clause)
		if err != nil {
			return nil, err
		}
		return &cursor.ModuleUse{Package: pkg, Module: c.name(*spec.Module), Clause: clause}, nil
	case "nested":
		use := &cursor.NestedModuleUses{Package: pkg}
		for _, nested := range spec.Uses {
			clause, err := c.clause(nested.Clause)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", nested.Module.Value, err)
			}
			use.Uses = append(use.Uses, cursor.NestedModule{Module: c.name(nested.Module), Clause: clause})
		}
		return use, nil
	case "partial":
		return &cursor.PartialUse{
			Package:      pkg,
			ColonColon:   c.locPtr(spec.ColonColon),
			OpeningBrace: c.locPtr(spec.OpeningBrace),
		}, nil
	default:
		return nil, fmt.Errorf("unknown use kind %q", spec.Kind)
	}
}

// clause converts a module use clause.  A missing clause is a plain module
// import.
func (c *converter) clause(spec *ClauseSpec) (cursor.ModuleUseClause, error) {
	if spec == nil {
		return &cursor.ModuleAliasClause{}, nil
	}
	switch spec.Kind {
	case "alias":
		return &cursor.ModuleAliasClause{Alias: c.namePtr(spec.Alias)}, nil
	case "members":
		clause := &cursor.MembersClause{Group: c.locPtr(spec.Group)}
		for _, m := range spec.Members {
			clause.Members = append(clause.Members, cursor.MemberImport{Name: c.name(m.Name), Alias: c.namePtr(m.Alias)})
		}
		return clause, nil
	case "partial":
		return &cursor.PartialMembersClause{
			ColonColon:   c.locPtr(spec.ColonColon),
			OpeningBrace: c.locPtr(spec.OpeningBrace),
		}, nil
	default:
		return nil, fmt.Errorf("unknown clause kind %q", spec.Kind)
	}
}
