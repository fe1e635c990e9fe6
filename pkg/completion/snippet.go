package completion

import (
	"strings"

	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// namedFieldsInlineLimit is the largest number of named fields rendered on a
// single line.
const namedFieldsInlineLimit = 2

// datatypeCandidates returns the candidates for a struct or enum variant: the
// bare name, and a literal-construction snippet when the datatype has fields
// and is declared in the module enclosing the cursor.
func datatypeCandidates(cur cursorModule, defining symbols.ModuleIdent, name string, kind Kind, fields symbols.Fields) []Candidate {
	candidates := []Candidate{NewCandidate(name, kind)}
	if len(fields.Names) == 0 || !cur.InModule(defining) {
		return candidates
	}
	return append(candidates, fieldsSnippetCandidate(name, kind, fields))
}

// cursorModule is the part of the cursor context the snippet gate needs.
type cursorModule interface {
	InModule(ident symbols.ModuleIdent) bool
}

// fieldsSnippetCandidate builds the literal-construction candidate for a
// non-empty field list.
func fieldsSnippetCandidate(name string, kind Kind, fields symbols.Fields) Candidate {
	placeholders := make([]Placeholder, len(fields.Names))
	for i := range fields.Names {
		placeholders[i] = Placeholder{Index: i + 1}
	}

	var label, template string
	switch {
	case fields.Positional:
		args := make([]string, len(placeholders))
		for i, p := range placeholders {
			args[i] = p.String()
		}
		label = name + "(..)"
		template = name + "(" + strings.Join(args, ", ") + ")"
	case len(fields.Names) > namedFieldsInlineLimit:
		var buf strings.Builder
		buf.WriteString(name + " {\n")
		for i, field := range fields.Names {
			buf.WriteString("\t" + field + ": " + placeholders[i].String() + ",\n")
		}
		buf.WriteString("}")
		label = name + "{..}"
		template = buf.String()
	default:
		pairs := make([]string, len(fields.Names))
		for i, field := range fields.Names {
			pairs[i] = field + ": " + placeholders[i].String()
		}
		label = name + "{..}"
		template = name + " { " + strings.Join(pairs, ", ") + " }"
	}

	return Candidate{
		Label: label,
		Kind:  kind,
		Snippet: &Snippet{
			Template:     template,
			Placeholders: placeholders,
		},
	}
}

// callCandidate returns the candidate for a function.  Outside of use
// declarations it carries a call snippet with one placeholder per parameter.
func callCandidate(alias string, fn *symbols.FunctionDef, insideUse bool) Candidate {
	label := alias
	if fn.Macro {
		label += "!"
	}
	c := Candidate{
		Label:  label,
		Kind:   KindFunction,
		Detail: fn.Signature(),
	}
	if insideUse {
		return c
	}

	var placeholders []Placeholder
	args := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		placeholders = append(placeholders, Placeholder{Index: i + 1, Default: p.Name})
		args[i] = placeholders[i].String()
	}
	c.Snippet = &Snippet{
		Template:     label + "(" + strings.Join(args, ", ") + ")",
		Placeholders: placeholders,
	}
	return c
}
