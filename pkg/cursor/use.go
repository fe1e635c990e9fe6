package cursor

import "github.com/drogan2233/movecomplete/pkg/symbols"

// UseDecl is one of ModuleUse, NestedModuleUses, FunUse or PartialUse.
type UseDecl interface {
	isUseDecl()
}

// ModuleUseClause is one of ModuleAliasClause, MembersClause or
// PartialMembersClause.
type ModuleUseClause interface {
	isModuleUseClause()
}

// ModuleUse is `use pkg::mod...;`.
type ModuleUse struct {
	Package LeadingName
	Module  Name
	Clause  ModuleUseClause
}

// NestedModule is one `mod...` entry of a NestedModuleUses group.
type NestedModule struct {
	Module Name
	Clause ModuleUseClause
}

// NestedModuleUses is `use pkg::{mod_a..., mod_b...};`.
type NestedModuleUses struct {
	Package LeadingName
	Uses    []NestedModule
}

// FunUse is `use fun path as Type.method;`.  Its target is handled as a name
// chain.
type FunUse struct{}

// PartialUse is an unterminated `use pkg`, `use pkg::` or `use pkg::{`.
type PartialUse struct {
	Package LeadingName
	// ColonColon is the location of the `::` after the package, if typed.
	ColonColon *symbols.Loc
	// OpeningBrace is the location of the `{` after `::`, if typed.
	OpeningBrace *symbols.Loc
}

// ModuleAliasClause is a plain module import, optionally aliased:
// `use pkg::mod;` or `use pkg::mod as m;`.
type ModuleAliasClause struct {
	Alias *Name
}

// MemberImport is one member of a MembersClause.
type MemberImport struct {
	Name  Name
	Alias *Name
}

// MembersClause is `use pkg::mod::member;` or `use pkg::mod::{a, b as c};`.
type MembersClause struct {
	Members []MemberImport
	// Group spans the braces when present.
	Group *symbols.Loc
}

// PartialMembersClause is an unterminated `use pkg::mod::` or
// `use pkg::mod::{`.
type PartialMembersClause struct {
	ColonColon   *symbols.Loc
	OpeningBrace *symbols.Loc
}

func (*ModuleUse) isUseDecl()        {}
func (*NestedModuleUses) isUseDecl() {}
func (*FunUse) isUseDecl()           {}
func (*PartialUse) isUseDecl()       {}

func (*ModuleAliasClause) isModuleUseClause()    {}
func (*MembersClause) isModuleUseClause()        {}
func (*PartialMembersClause) isModuleUseClause() {}
