package symbols

import (
	"fmt"
	"sort"
	"strings"
)

// Separator delimits the components of a module path.
const Separator = "::"

// ModuleIdent names a module within a package.
type ModuleIdent struct {
	Address Address
	Module  string
}

// NewModuleIdent constructs a new ModuleIdent.
func NewModuleIdent(addr Address, module string) ModuleIdent {
	return ModuleIdent{Address: addr, Module: module}
}

// Key returns the canonical identity of the module, "addr::module".
func (m ModuleIdent) Key() string {
	return m.Address.Key() + Separator + m.Module
}

// Equal reports whether both identifiers resolve to the same module.
func (m ModuleIdent) Equal(other ModuleIdent) bool {
	return m.Key() == other.Key()
}

// SamePackage reports whether both identifiers live in the same package.
func (m ModuleIdent) SamePackage(other ModuleIdent) bool {
	return m.Address.Key() == other.Address.Key()
}

// String implements fmt.Stringer
func (m ModuleIdent) String() string {
	return m.Address.String() + Separator + m.Module
}

// Visibility is the access level of a function.
type Visibility int

const (
	// Internal members are visible only within their declaring module.
	Internal Visibility = iota
	// Package members are visible within the declaring package.
	Package
	// Public members are visible everywhere.
	Public
)

// String implements fmt.Stringer
func (v Visibility) String() string {
	switch v {
	case Internal:
		return "internal"
	case Package:
		return "package"
	case Public:
		return "public"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Param is a named, typed function parameter.
type Param struct {
	Name string
	Type string
}

// FunctionDef describes a module function.
type FunctionDef struct {
	Name       string
	Loc        Loc
	Visibility Visibility
	Macro      bool
	TypeParams []string
	Params     []Param
	Return     string
}

// Signature renders the function type, for example "fun <T>(x: u64): bool".
func (f *FunctionDef) Signature() string {
	var buf strings.Builder
	buf.WriteString("fun ")
	if len(f.TypeParams) > 0 {
		buf.WriteString("<" + strings.Join(f.TypeParams, ", ") + ">")
	}
	buf.WriteRune('(')
	for i, p := range f.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name + ": " + p.Type)
	}
	buf.WriteRune(')')
	if f.Return != "" && f.Return != "()" {
		buf.WriteString(": " + f.Return)
	}
	return buf.String()
}

// Fields is the ordered field list of a struct or enum variant.
type Fields struct {
	Names      []string
	Positional bool
}

// StructDef describes a module struct.
type StructDef struct {
	Name   string
	Loc    Loc
	Fields Fields
}

// VariantDef describes one constructor of an enum.
type VariantDef struct {
	Name   string
	Loc    Loc
	Fields Fields
}

// EnumDef describes a module enum.  Variants are kept in declaration order.
type EnumDef struct {
	Name     string
	Loc      Loc
	Variants []*VariantDef
}

// ConstantDef describes a module constant.
type ConstantDef struct {
	Name string
	Loc  Loc
}

// ModuleDefs holds the member tables of a single module.
type ModuleDefs struct {
	Ident     ModuleIdent
	Loc       Loc
	Functions map[string]*FunctionDef
	Structs   map[string]*StructDef
	Enums     map[string]*EnumDef
	Constants map[string]*ConstantDef
}

// NewModuleDefs constructs an empty ModuleDefs for the given module.
func NewModuleDefs(ident ModuleIdent) *ModuleDefs {
	return &ModuleDefs{
		Ident:     ident,
		Functions: make(map[string]*FunctionDef),
		Structs:   make(map[string]*StructDef),
		Enums:     make(map[string]*EnumDef),
		Constants: make(map[string]*ConstantDef),
	}
}

// HasMember reports whether the module declares a function, datatype or
// constant with the given name.
func (m *ModuleDefs) HasMember(name string) bool {
	if _, ok := m.Functions[name]; ok {
		return true
	}
	if _, ok := m.Structs[name]; ok {
		return true
	}
	if _, ok := m.Enums[name]; ok {
		return true
	}
	_, ok := m.Constants[name]
	return ok
}

// FunctionNames returns the function names in sorted order.
func (m *ModuleDefs) FunctionNames() []string {
	return sortedKeys(m.Functions)
}

// StructNames returns the struct names in sorted order.
func (m *ModuleDefs) StructNames() []string {
	return sortedKeys(m.Structs)
}

// EnumNames returns the enum names in sorted order.
func (m *ModuleDefs) EnumNames() []string {
	return sortedKeys(m.Enums)
}

// ConstantNames returns the constant names in sorted order.
func (m *ModuleDefs) ConstantNames() []string {
	return sortedKeys(m.Constants)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
