package completion

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/scope"
	"github.com/drogan2233/movecomplete/pkg/symbols"
	"github.com/drogan2233/movecomplete/pkg/symbols/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewEngine(t *testing.T) {
	for name, tc := range map[string]struct {
		options []EngineOption
		wantErr string
	}{
		"defaults": {},
		"hidden modules": {
			options: []EngineOption{WithHiddenModules([]string{"0x1::*", "std::**"})},
		},
		"negative max chain length": {
			options: []EngineOption{WithMaxChainLength(-1)},
			wantErr: "max chain length must not be negative: -1",
		},
		"bad pattern": {
			options: []EngineOption{WithHiddenModules([]string{"0x1::[a"})},
			wantErr: `invalid hidden module pattern: "0x1::[a"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			e, err := NewEngine(tc.options...)
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				require.Nil(t, e)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, e)
		})
	}
}

// TestModuleMemberScenario completes `m::` where m aliases P::m.
func TestModuleMemberScenario(t *testing.T) {
	m := symbols.NewModuleDefs(modM)
	m.Functions["f"] = fun("f", symbols.Public, "bool", symbols.Param{Name: "x", Type: "u64"})
	m.Structs["S"] = &symbols.StructDef{Name: "S", Fields: symbols.Fields{Names: []string{"a", "b", "c"}}}
	ix := mustIndex(t, m)

	aliases := scope.New()
	aliases.Addresses["P"] = "0x1"
	aliases.Modules["m"] = modM

	// m::|
	info := &cursor.ChainInfo{
		Chain: cursor.NameChain{Leading: cursor.NewPlainName("m", loc(0, 1))},
	}
	table := scope.Table{loc(0, 1): aliases}

	call := Candidate{
		Label:  "f",
		Kind:   KindFunction,
		Detail: "fun (x: u64): bool",
		Snippet: &Snippet{
			Template:     "f(${1:x})",
			Placeholders: []Placeholder{{Index: 1, Default: "x"}},
		},
	}
	literal := Candidate{
		Label: "S{..}",
		Kind:  KindStruct,
		Snippet: &Snippet{
			Template:     "S {\n\ta: ${1},\n\tb: ${2},\n\tc: ${3},\n}",
			Placeholders: []Placeholder{{Index: 1}, {Index: 2}, {Index: 3}},
		},
	}

	for name, tc := range map[string]struct {
		from symbols.ModuleIdent
		want []Candidate
	}{
		"from another module": {
			from: modExt,
			want: []Candidate{NewCandidate("S", KindStruct), call},
		},
		"from the defining module": {
			from: modM,
			want: []Candidate{NewCandidate("S", KindStruct), literal, call},
		},
	} {
		t.Run(name, func(t *testing.T) {
			from := tc.from
			cur := &cursor.Context{
				Module:              &from,
				Loc:                 loc(3, 3),
				Chain:               info,
				ColonColonTriggered: true,
			}
			got := mustEngine(t).Complete(ix, table, cur)
			want := Result{Candidates: tc.want, Finalized: true}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

// TestImportScenario completes the package of `use 0x1::m::{f};`.
func TestImportScenario(t *testing.T) {
	m := symbols.NewModuleDefs(modM)
	m.Functions["f"] = fun("f", symbols.Public, "")
	ix := mustIndex(t, m)

	from := modExt
	cur := &cursor.Context{
		Module: &from,
		Loc:    loc(5, 5),
		Use: &cursor.ModuleUse{
			Package: cursor.NewNumericAddress("0x1", loc(4, 7)),
			Module:  cursor.Name{Value: "m", Loc: loc(9, 10)},
			Clause: &cursor.MembersClause{
				Members: []cursor.MemberImport{{Name: cursor.Name{Value: "f", Loc: loc(13, 14)}}},
				Group:   locPtr(12, 15),
			},
		},
	}

	got := mustEngine(t).Complete(ix, nil, cur)
	want := Result{
		Candidates: []Candidate{NewCandidate("0x1", KindPackage), NewCandidate("P", KindPackage)},
		Finalized:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCompleteFinalized(t *testing.T) {
	info, at, _ := chainAt("P::m::|", cursor.PurposeAll)
	use := &cursor.PartialUse{
		Package:    cursor.NewPlainName("P", loc(4, 5)),
		ColonColon: locPtr(5, 7),
	}
	from := modExt

	for name, tc := range map[string]struct {
		cur           *cursor.Context
		wantFinalized bool
		wantLabels    []string
	}{
		"nil cursor": {},
		"neither chain nor use": {
			cur: &cursor.Context{Module: &from, Loc: at},
		},
		"chain without candidates": {
			cur:           &cursor.Context{Module: &from, Loc: at, Chain: info},
			wantFinalized: true,
		},
		"chain wins over use": {
			cur: &cursor.Context{
				Module:              &from,
				Loc:                 at,
				Chain:               info,
				Use:                 use,
				ColonColonTriggered: true,
			},
			wantFinalized: true,
			wantLabels:    []string{"E<enum>", "S<struct>", "f<function>"},
		},
		"use": {
			cur:           &cursor.Context{Module: &from, Loc: loc(4, 4), Use: use},
			wantFinalized: true,
			wantLabels:    []string{"0x1<package>", "0x2<package>", "P<package>", "Q<package>"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := mustEngine(t).Complete(testIndex(t), nil, tc.cur)
			if got.Finalized != tc.wantFinalized {
				t.Errorf("finalized: want %t, got %t", tc.wantFinalized, got.Finalized)
			}
			if diff := cmp.Diff(tc.wantLabels, summarize(got.Candidates)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompleteIsRepeatable(t *testing.T) {
	e := mustEngine(t)
	ix := testIndex(t)
	info, at, triggered := chainAt("m::|", cursor.PurposeAll)
	aliases := scope.Table{info.Chain.Leading.Loc: testAliases()}
	from := modM
	cur := &cursor.Context{Module: &from, Loc: at, Chain: info, ColonColonTriggered: triggered}

	first := e.Complete(ix, aliases, cur)
	require.True(t, first.Finalized)
	require.NotEmpty(t, first.Candidates)
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, e.Complete(ix, aliases, cur)); diff != "" {
			t.Fatalf("call %d (-first +got):\n%s", i, diff)
		}
	}
}

func TestCompleteMissingModule(t *testing.T) {
	ix := mocks.NewIndex(t)
	ix.On("Modules").Return([]*symbols.ModuleDefs(nil)).Once()
	ix.On("Module", modM).Return(nil, false).Once()

	info, at, triggered := chainAt("P::m::|", cursor.PurposeAll)
	aliases := scope.Table{info.Chain.Leading.Loc: testAliases()}
	from := modExt
	cur := &cursor.Context{Module: &from, Loc: at, Chain: info, ColonColonTriggered: triggered}

	got := mustEngine(t).Complete(ix, aliases, cur)
	require.True(t, got.Finalized)
	require.Empty(t, got.Candidates)
}

func TestCompleteConcurrently(t *testing.T) {
	e := mustEngine(t)
	ix := testIndex(t)
	aliases := scope.Table{}

	texts := []string{"m|", "P::|", "m::|", "Opt::|", "0x2::ext::|", "P::m::E::|"}
	want := make([]Result, len(texts))
	contexts := make([]*cursor.Context, len(texts))
	for i, text := range texts {
		info, at, triggered := chainAt(text, cursor.PurposeAll)
		aliases[info.Chain.Leading.Loc] = testAliases()
		from := modM
		contexts[i] = &cursor.Context{Module: &from, Loc: at, Chain: info, ColonColonTriggered: triggered}
	}
	for i, cur := range contexts {
		want[i] = e.Complete(ix, aliases, cur)
	}

	var g errgroup.Group
	for n := 0; n < 8; n++ {
		for i, cur := range contexts {
			g.Go(func() error {
				got := e.Complete(ix, aliases, cur)
				if diff := cmp.Diff(want[i], got); diff != "" {
					return fmt.Errorf("%s (-want +got):\n%s", texts[i], diff)
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())
}
