// Package snapshot reads a completion request from a YAML document: the
// modules of the program, the alias scopes of the name chains in the file,
// and the cursor.  It stands in for the parser and symbolicator that would
// produce these inputs in an editor.
package snapshot

// Snapshot is the root of a request document.
type Snapshot struct {
	Modules []ModuleSpec `yaml:"modules"`
	Aliases []AliasSpec  `yaml:"aliases,omitempty"`
	Cursor  CursorSpec   `yaml:"cursor"`
}

// ModuleSpec describes a module and its members.
type ModuleSpec struct {
	// Address is the numeric package address.  It may be empty for a named
	// address without a value.
	Address string `yaml:"address,omitempty"`
	// Package is the named address, if any.
	Package   string         `yaml:"package,omitempty"`
	Name      string         `yaml:"name"`
	Functions []FunctionSpec `yaml:"functions,omitempty"`
	Structs   []StructSpec   `yaml:"structs,omitempty"`
	Enums     []EnumSpec     `yaml:"enums,omitempty"`
	Constants []string       `yaml:"constants,omitempty"`
}

type FunctionSpec struct {
	Name string `yaml:"name"`
	// Visibility is one of internal (the default), package or public.
	Visibility string      `yaml:"visibility,omitempty"`
	Macro      bool        `yaml:"macro,omitempty"`
	TypeParams []string    `yaml:"type_params,omitempty"`
	Params     []ParamSpec `yaml:"params,omitempty"`
	Return     string      `yaml:"return,omitempty"`
}

type ParamSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type StructSpec struct {
	Name       string   `yaml:"name"`
	Fields     []string `yaml:"fields,omitempty"`
	Positional bool     `yaml:"positional,omitempty"`
}

type EnumSpec struct {
	Name     string       `yaml:"name"`
	Variants []StructSpec `yaml:"variants,omitempty"`
}

// AliasSpec is the alias snapshot taken at the leading segment of a chain.
// Module references are written "pkg::module" where pkg is a package name
// or a numeric address.
type AliasSpec struct {
	Root       SpanSpec          `yaml:"root"`
	Addresses  map[string]string `yaml:"addresses,omitempty"`
	Modules    map[string]string `yaml:"modules,omitempty"`
	Members    []MemberSpec      `yaml:"members,omitempty"`
	TypeParams []string          `yaml:"type_params,omitempty"`
}

type MemberSpec struct {
	Alias  string `yaml:"alias"`
	Module string `yaml:"module"`
	Member string `yaml:"member"`
}

// SpanSpec is a byte range of the cursor file.
type SpanSpec struct {
	Start uint32 `yaml:"start"`
	End   uint32 `yaml:"end"`
}

// NameSpec is an identifier and its span.
type NameSpec struct {
	Value    string `yaml:"value"`
	SpanSpec `yaml:",inline"`
}

// LeadingSpec is the first segment of a chain or use declaration.
type LeadingSpec struct {
	// Kind is one of name (the default), address or global.
	Kind     string `yaml:"kind,omitempty"`
	NameSpec `yaml:",inline"`
}

// CursorSpec is the completion position and its syntactic context.
type CursorSpec struct {
	File   string `yaml:"file"`
	Offset uint32 `yaml:"offset"`
	// Module is the "pkg::module" reference of the enclosing module.
	Module     string     `yaml:"module,omitempty"`
	ColonColon bool       `yaml:"colon_colon,omitempty"`
	Chain      *ChainSpec `yaml:"chain,omitempty"`
	Use        *UseSpec   `yaml:"use,omitempty"`
}

type ChainSpec struct {
	// Purpose is one of all (the default), type or function.
	Purpose   string      `yaml:"purpose,omitempty"`
	InsideUse bool        `yaml:"inside_use,omitempty"`
	Leading   LeadingSpec `yaml:"leading"`
	Entries   []NameSpec  `yaml:"entries,omitempty"`
}

// UseSpec describes a use declaration.
type UseSpec struct {
	// Kind is one of module, nested, fun or partial.
	Kind         string       `yaml:"kind"`
	Package      LeadingSpec  `yaml:"package"`
	Module       *NameSpec    `yaml:"module,omitempty"`
	Clause       *ClauseSpec  `yaml:"clause,omitempty"`
	Uses         []NestedSpec `yaml:"uses,omitempty"`
	ColonColon   *SpanSpec    `yaml:"colon_colon,omitempty"`
	OpeningBrace *SpanSpec    `yaml:"opening_brace,omitempty"`
}

type NestedSpec struct {
	Module NameSpec    `yaml:"module"`
	Clause *ClauseSpec `yaml:"clause,omitempty"`
}

// ClauseSpec describes what follows the module of a use declaration.
type ClauseSpec struct {
	// Kind is one of alias, members or partial.
	Kind         string       `yaml:"kind"`
	Alias        *NameSpec    `yaml:"alias,omitempty"`
	Members      []ImportSpec `yaml:"members,omitempty"`
	Group        *SpanSpec    `yaml:"group,omitempty"`
	ColonColon   *SpanSpec    `yaml:"colon_colon,omitempty"`
	OpeningBrace *SpanSpec    `yaml:"opening_brace,omitempty"`
}

type ImportSpec struct {
	Name  NameSpec  `yaml:"name"`
	Alias *NameSpec `yaml:"alias,omitempty"`
}
