package completion

import (
	"fmt"
	"sort"
)

// Kind classifies a completion candidate.
type Kind int

const (
	KindPackage Kind = iota
	KindModule
	KindFunction
	KindStruct
	KindEnum
	KindEnumVariant
	KindConstant
	KindTypeParameter
	KindPrimitiveType
)

var kindNames = map[Kind]string{
	KindPackage:       "package",
	KindModule:        "module",
	KindFunction:      "function",
	KindStruct:        "struct",
	KindEnum:          "enum",
	KindEnumVariant:   "enum-variant",
	KindConstant:      "constant",
	KindTypeParameter: "type-parameter",
	KindPrimitiveType: "primitive-type",
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Placeholder is an editable region of a snippet, `${Index}` or
// `${Index:Default}`.
type Placeholder struct {
	Index   int    `yaml:"index"`
	Default string `yaml:"default,omitempty"`
}

// String renders the placeholder in snippet syntax.
func (p Placeholder) String() string {
	if p.Default == "" {
		return fmt.Sprintf("${%d}", p.Index)
	}
	return fmt.Sprintf("${%d:%s}", p.Index, p.Default)
}

// Snippet is a template for the text inserted when a candidate is accepted.
type Snippet struct {
	Template     string        `yaml:"template"`
	Placeholders []Placeholder `yaml:"placeholders,omitempty"`
}

// Candidate is a single completion suggestion.
type Candidate struct {
	Label   string   `yaml:"label"`
	Kind    Kind     `yaml:"kind"`
	Detail  string   `yaml:"detail,omitempty"`
	Snippet *Snippet `yaml:"snippet,omitempty"`
}

// NewCandidate constructs a candidate without a snippet.
func NewCandidate(label string, kind Kind) Candidate {
	return Candidate{Label: label, Kind: kind}
}

func (c Candidate) template() string {
	if c.Snippet == nil {
		return ""
	}
	return c.Snippet.Template
}

// String implements fmt.Stringer
func (c Candidate) String() string {
	if c.Snippet != nil {
		return fmt.Sprintf("%s<%v> %q", c.Label, c.Kind, c.Snippet.Template)
	}
	return fmt.Sprintf("%s<%v>", c.Label, c.Kind)
}

// Result is the outcome of a completion request.
type Result struct {
	Candidates []Candidate `yaml:"candidates"`
	// Finalized is set whenever a name chain or use declaration was
	// recognized at the cursor, even if no candidates were found, and means
	// generic identifier completions must not be added.
	Finalized bool `yaml:"finalized"`
}

// normalize sorts candidates by label, kind, template and detail, and drops
// exact duplicates.
func normalize(candidates []Candidate) []Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.template() != b.template() {
			return a.template() < b.template()
		}
		return a.Detail < b.Detail
	})
	out := candidates[:0]
	for i, c := range candidates {
		if i > 0 {
			prev := out[len(out)-1]
			if prev.Label == c.Label && prev.Kind == c.Kind && prev.template() == c.template() && prev.Detail == c.Detail {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
