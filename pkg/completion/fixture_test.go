package completion

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/scope"
	"github.com/drogan2233/movecomplete/pkg/symbols"
	"github.com/drogan2233/movecomplete/pkg/testutil"
)

const testFile = "sources/test.move"

var (
	addrP = symbols.NumericalAddressOf(symbols.MustParseNumericalAddress("0x1"), "P")
	addrQ = symbols.NumericalAddressOf(symbols.MustParseNumericalAddress("0x2"), "Q")

	modM     = symbols.NewModuleIdent(addrP, "m")
	modOther = symbols.NewModuleIdent(addrP, "other")
	modExt   = symbols.NewModuleIdent(addrQ, "ext")
)

func loc(start, end int) symbols.Loc {
	return symbols.NewLoc(testFile, uint32(start), uint32(end))
}

func locPtr(start, end int) *symbols.Loc {
	l := loc(start, end)
	return &l
}

func fun(name string, vis symbols.Visibility, ret string, params ...symbols.Param) *symbols.FunctionDef {
	return &symbols.FunctionDef{Name: name, Visibility: vis, Params: params, Return: ret}
}

// testIndex returns two packages: P (0x1) with modules m and other, and Q
// (0x2) with module ext.
func testIndex(t *testing.T) *symbols.TrieIndex {
	m := symbols.NewModuleDefs(modM)
	m.Functions["f"] = fun("f", symbols.Public, "bool", symbols.Param{Name: "x", Type: "u64"})
	m.Functions["g"] = fun("g", symbols.Package, "")
	m.Functions["h"] = fun("h", symbols.Internal, "")
	m.Structs["S"] = &symbols.StructDef{Name: "S", Fields: symbols.Fields{Names: []string{"a", "b", "c"}}}
	m.Enums["E"] = &symbols.EnumDef{
		Name: "E",
		Variants: []*symbols.VariantDef{
			{Name: "A"},
			{Name: "B", Fields: symbols.Fields{Names: []string{"0"}, Positional: true}},
			{Name: "C", Fields: symbols.Fields{Names: []string{"x", "y"}}},
		},
	}
	m.Constants["MAX"] = &symbols.ConstantDef{Name: "MAX"}

	other := symbols.NewModuleDefs(modOther)
	other.Functions["o"] = fun("o", symbols.Public, "")
	other.Structs["T"] = &symbols.StructDef{Name: "T", Fields: symbols.Fields{Names: []string{"v"}}}

	ext := symbols.NewModuleDefs(modExt)
	ext.Functions["e"] = fun("e", symbols.Public, "")

	return mustIndex(t, m, other, ext)
}

func mustIndex(t *testing.T, modules ...*symbols.ModuleDefs) *symbols.TrieIndex {
	ix := symbols.NewTrieIndex()
	for _, defs := range modules {
		if err := ix.AddModule(defs); err != nil {
			t.Fatal(err)
		}
	}
	return ix
}

func testAliases() *scope.AliasScope {
	s := scope.New()
	s.Addresses["P"] = "0x1"
	s.Addresses["Q"] = "0x2"
	s.Modules["m"] = modM
	s.Modules["mm"] = modM
	s.AddMember(scope.MemberAlias{Alias: "Opt", Module: modM, Member: "E"})
	s.AddMember(scope.MemberAlias{Alias: "fun_f", Module: modM, Member: "f"})
	s.AddMember(scope.MemberAlias{Alias: "Str", Module: modM, Member: "S"})
	s.AddMember(scope.MemberAlias{Alias: "Max", Module: modM, Member: "MAX"})
	s.TypeParams = []string{"T"}
	return s
}

// chainAt lays out a chain written as text, with '|' marking the cursor.
// A leading "::" makes a global name and a leading digit an address.  The
// trigger flag is set when the text before the cursor ends with "::".
func chainAt(text string, purpose cursor.Purpose) (*cursor.ChainInfo, symbols.Loc, bool) {
	c := strings.Index(text, "|")
	body := text[:c] + text[c+1:]
	triggered := strings.HasSuffix(text[:c], "::")

	var names []cursor.Name
	global := false
	offset := 0
	for i, part := range strings.Split(body, "::") {
		if i == 0 && part == "" {
			global = true
		} else if part != "" {
			names = append(names, cursor.Name{Value: part, Loc: loc(offset, offset+len(part))})
		}
		offset += len(part) + len("::")
	}

	lead := names[0]
	var leading cursor.LeadingName
	switch {
	case global:
		leading = cursor.NewGlobalName(lead.Value, lead.Loc)
	case lead.Value[0] >= '0' && lead.Value[0] <= '9':
		leading = cursor.NewNumericAddress(symbols.MustParseNumericalAddress(lead.Value), lead.Loc)
	default:
		leading = cursor.NewPlainName(lead.Value, lead.Loc)
	}

	return &cursor.ChainInfo{
		Chain:   cursor.NameChain{Leading: leading, Entries: names[1:]},
		Purpose: purpose,
	}, loc(c, c), triggered
}

// summarize renders candidates as "label<kind>".
func summarize(candidates []Candidate) []string {
	var got []string
	for _, c := range candidates {
		got = append(got, c.Label+"<"+c.Kind.String()+">")
	}
	return got
}

// mustEngine builds an engine that traces to the test log.
func mustEngine(t *testing.T, options ...EngineOption) *Engine {
	logger := testutil.TestLogger(t, zerolog.TraceLevel)
	e, err := NewEngine(append([]EngineOption{WithLogger(logger)}, options...)...)
	if err != nil {
		t.Fatal(err)
	}
	return e
}
