package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/scope"
	"github.com/drogan2233/movecomplete/pkg/symbols"
	"github.com/drogan2233/movecomplete/pkg/testutil"
)

const file = "sources/a.move"

const chainRequest = `
modules:
  - address: "0x0001"
    package: P
    name: m
    functions:
      - name: f
        visibility: public
        params:
          - {name: x, type: u64}
        return: bool
    structs:
      - {name: S, fields: [a, b, c]}
    enums:
      - name: E
        variants:
          - {name: A}
          - {name: B, fields: ["0"], positional: true}
    constants: [MAX]
  - package: Q
    name: ext
aliases:
  - root: {start: 0, end: 1}
    addresses: {P: "0x1"}
    modules: {m: "P::m"}
    members:
      - {alias: Opt, module: "0x1::m", member: E}
    type_params: [T]
cursor:
  file: sources/a.move
  offset: 3
  module: "Q::ext"
  colon_colon: true
  chain:
    purpose: type
    leading: {value: m, start: 0, end: 1}
`

func loc(start, end uint32) symbols.Loc {
	return symbols.NewLoc(file, start, end)
}

func locPtr(start, end uint32) *symbols.Loc {
	l := loc(start, end)
	return &l
}

func TestReadFile(t *testing.T) {
	dir, _, cleanup := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "request.yaml", Content: chainRequest},
	})
	defer cleanup()

	snap, err := ReadFile(filepath.Join(dir, "request.yaml"))
	require.NoError(t, err)
	in, err := snap.Inputs()
	require.NoError(t, err)

	p := symbols.NumericalAddressOf("0x1", "P")
	m := symbols.NewModuleIdent(p, "m")
	ext := symbols.NewModuleIdent(symbols.NamedAddressOf("Q"), "ext")

	require.Equal(t, 2, in.Index.Len())
	defs, ok := in.Index.Module(m)
	require.True(t, ok)
	require.Equal(t, "fun (x: u64): bool", defs.Functions["f"].Signature())
	require.Equal(t, []string{"a", "b", "c"}, defs.Structs["S"].Fields.Names)
	require.True(t, defs.Enums["E"].Variants[1].Fields.Positional)
	require.True(t, defs.HasMember("MAX"))

	wantScope := scope.New()
	wantScope.Addresses["P"] = "0x1"
	wantScope.Modules["m"] = m
	wantScope.AddMember(scope.MemberAlias{Alias: "Opt", Module: m, Member: "E"})
	wantScope.TypeParams = []string{"T"}
	if diff := cmp.Diff(scope.Table{loc(0, 1): wantScope}, in.Aliases); diff != "" {
		t.Errorf("aliases (-want +got):\n%s", diff)
	}

	wantCursor := &cursor.Context{
		Module: &ext,
		Loc:    loc(3, 3),
		Chain: &cursor.ChainInfo{
			Chain:   cursor.NameChain{Leading: cursor.NewPlainName("m", loc(0, 1))},
			Purpose: cursor.PurposeType,
		},
		ColonColonTriggered: true,
	}
	if diff := cmp.Diff(wantCursor, in.Cursor); diff != "" {
		t.Errorf("cursor (-want +got):\n%s", diff)
	}
}

func TestUseInputs(t *testing.T) {
	for name, tc := range map[string]struct {
		use  string
		want cursor.UseDecl
	}{
		"members": {
			use: `
    kind: module
    package: {kind: address, value: "0x1", start: 4, end: 7}
    module: {value: m, start: 9, end: 10}
    clause:
      kind: members
      group: {start: 12, end: 22}
      members:
        - name: {value: f, start: 13, end: 14}
        - name: {value: S, start: 16, end: 17}
          alias: {value: T, start: 21, end: 22}
`,
			want: &cursor.ModuleUse{
				Package: cursor.NewNumericAddress("0x1", loc(4, 7)),
				Module:  cursor.Name{Value: "m", Loc: loc(9, 10)},
				Clause: &cursor.MembersClause{
					Members: []cursor.MemberImport{
						{Name: cursor.Name{Value: "f", Loc: loc(13, 14)}},
						{Name: cursor.Name{Value: "S", Loc: loc(16, 17)}, Alias: &cursor.Name{Value: "T", Loc: loc(21, 22)}},
					},
					Group: locPtr(12, 22),
				},
			},
		},
		"plain module": {
			use: `
    kind: module
    package: {value: P, start: 4, end: 5}
    module: {value: m, start: 7, end: 8}
`,
			want: &cursor.ModuleUse{
				Package: cursor.NewPlainName("P", loc(4, 5)),
				Module:  cursor.Name{Value: "m", Loc: loc(7, 8)},
				Clause:  &cursor.ModuleAliasClause{},
			},
		},
		"nested": {
			use: `
    kind: nested
    package: {value: P, start: 4, end: 5}
    uses:
      - module: {value: m, start: 8, end: 9}
        clause: {kind: partial, colon_colon: {start: 9, end: 11}}
      - module: {value: n, start: 13, end: 14}
        clause: {kind: alias, alias: {value: nn, start: 18, end: 20}}
`,
			want: &cursor.NestedModuleUses{
				Package: cursor.NewPlainName("P", loc(4, 5)),
				Uses: []cursor.NestedModule{
					{
						Module: cursor.Name{Value: "m", Loc: loc(8, 9)},
						Clause: &cursor.PartialMembersClause{ColonColon: locPtr(9, 11)},
					},
					{
						Module: cursor.Name{Value: "n", Loc: loc(13, 14)},
						Clause: &cursor.ModuleAliasClause{Alias: &cursor.Name{Value: "nn", Loc: loc(18, 20)}},
					},
				},
			},
		},
		"partial": {
			use: `
    kind: partial
    package: {kind: global, value: P, start: 4, end: 7}
    colon_colon: {start: 7, end: 9}
    opening_brace: {start: 9, end: 10}
`,
			want: &cursor.PartialUse{
				Package:      cursor.NewGlobalName("P", loc(4, 7)),
				ColonColon:   locPtr(7, 9),
				OpeningBrace: locPtr(9, 10),
			},
		},
		"use fun": {
			use:  "\n    kind: fun\n",
			want: &cursor.FunUse{},
		},
	} {
		t.Run(name, func(t *testing.T) {
			doc := "cursor:\n  file: " + file + "\n  offset: 5\n  use:" + tc.use
			snap, err := Parse([]byte(doc))
			require.NoError(t, err)
			in, err := snap.Inputs()
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, in.Cursor.Use); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputsErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		doc     string
		wantErr string
	}{
		"unknown key": {
			doc:     "cursor: {file: a.move, offst: 1}\n",
			wantErr: "unmarshal",
		},
		"module without address": {
			doc:     "modules: [{name: m}]\n",
			wantErr: `modules[0]: module "m" has neither address nor package`,
		},
		"bad address": {
			doc:     "modules: [{address: 0xzz, name: m}]\n",
			wantErr: `modules[0]: invalid address literal "0xzz"`,
		},
		"duplicate module": {
			doc:     "modules: [{package: P, name: m}, {package: P, name: m}]\n",
			wantErr: "modules[1]: duplicate module: P::m",
		},
		"duplicate member": {
			doc:     "modules: [{package: P, name: m, functions: [{name: x}], constants: [x]}]\n",
			wantErr: `modules[0]: P::m: duplicate member "x"`,
		},
		"unknown visibility": {
			doc:     "modules: [{package: P, name: m, functions: [{name: x, visibility: secret}]}]\n",
			wantErr: `modules[0]: P::m::x: unknown visibility "secret"`,
		},
		"malformed module alias": {
			doc:     "aliases: [{root: {start: 0, end: 1}, modules: {m: nope}}]\n",
			wantErr: `aliases[0]: module alias m: malformed module reference "nope"`,
		},
		"unknown purpose": {
			doc:     "cursor: {file: a.move, chain: {purpose: any, leading: {value: m}}}\n",
			wantErr: `cursor: chain: unknown purpose "any"`,
		},
		"overlapping entries": {
			doc:     "cursor: {file: a.move, chain: {leading: {value: m, start: 0, end: 3}, entries: [{value: f, start: 2, end: 3}]}}\n",
			wantErr: "overlaps the previous component",
		},
		"unknown use": {
			doc:     "cursor: {file: a.move, use: {kind: all, package: {value: P}}}\n",
			wantErr: `cursor: use: unknown use kind "all"`,
		},
		"unknown clause": {
			doc:     "cursor: {file: a.move, use: {kind: module, package: {value: P}, module: {value: m}, clause: {kind: glob}}}\n",
			wantErr: `cursor: use: unknown clause kind "glob"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			snap, err := Parse([]byte(tc.doc))
			if err == nil {
				_, err = snap.Inputs()
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
