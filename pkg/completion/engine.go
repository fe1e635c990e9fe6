package completion

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/drogan2233/movecomplete/pkg/cursor"
	"github.com/drogan2233/movecomplete/pkg/scope"
	"github.com/drogan2233/movecomplete/pkg/symbols"
)

// DefaultMaxChainLength bounds the number of entries following the leading
// segment of a chain.
const DefaultMaxChainLength = 32

// DefaultPrimitiveTypes are offered at the first position of a chain in type
// position.
var DefaultPrimitiveTypes = []string{
	"address",
	"bool",
	"signer",
	"u8",
	"u16",
	"u32",
	"u64",
	"u128",
	"u256",
	"vector",
}

type EngineOption func(*Engine) *Engine

func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) *Engine {
		e.logger = logger
		return e
	}
}

func WithMaxChainLength(n int) EngineOption {
	return func(e *Engine) *Engine {
		e.maxChainLength = n
		return e
	}
}

func WithPrimitiveTypes(types []string) EngineOption {
	return func(e *Engine) *Engine {
		e.primitiveTypes = types
		return e
	}
}

// WithHiddenModules excludes modules whose "addr::module" key or display name
// matches one of the given doublestar patterns.
func WithHiddenModules(patterns []string) EngineOption {
	return func(e *Engine) *Engine {
		e.hiddenModules = patterns
		return e
	}
}

var defaultOptions = []EngineOption{
	WithLogger(zerolog.Nop()),
	WithMaxChainLength(DefaultMaxChainLength),
	WithPrimitiveTypes(DefaultPrimitiveTypes),
}

// Engine computes completions for name chains and use declarations.  It holds
// no per-request state and is safe for concurrent use.
type Engine struct {
	logger         zerolog.Logger
	maxChainLength int
	primitiveTypes []string
	hiddenModules  []string
}

// NewEngine constructs a new Engine.  It fails if a hidden module pattern is
// malformed.
func NewEngine(options ...EngineOption) (*Engine, error) {
	e := &Engine{}
	for _, opt := range append(defaultOptions, options...) {
		e = opt(e)
	}
	if e.maxChainLength < 0 {
		return nil, fmt.Errorf("max chain length must not be negative: %d", e.maxChainLength)
	}
	for _, pattern := range e.hiddenModules {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid hidden module pattern: %q", pattern)
		}
	}
	return e, nil
}

// request carries the inputs of a single completion call.
type request struct {
	*Engine
	index   symbols.Index
	aliases *scope.AliasScope
	cursor  *cursor.Context
	modules []*symbols.ModuleDefs
}

func (e *Engine) newRequest(ix symbols.Index, aliases *scope.AliasScope, cur *cursor.Context) *request {
	if ix == nil {
		ix = symbols.NewTrieIndex()
	}
	if aliases == nil {
		aliases = scope.New()
	}
	return &request{
		Engine:  e,
		index:   ix,
		aliases: aliases,
		cursor:  cur,
	}
}

// visible reports whether the module is not hidden.
func (e *Engine) visible(ident symbols.ModuleIdent) bool {
	for _, pattern := range e.hiddenModules {
		for _, name := range []string{ident.Key(), ident.String()} {
			if ok, _ := doublestar.Match(pattern, name); ok {
				return false
			}
		}
	}
	return true
}

// Complete computes completions at the cursor.  Name chains take precedence
// over use declarations.
func (e *Engine) Complete(ix symbols.Index, aliases scope.Provider, cur *cursor.Context) Result {
	if cur == nil {
		return Result{}
	}
	if cur.Chain != nil {
		return e.CompleteChain(ix, aliases, cur)
	}
	if cur.Use != nil {
		return e.CompleteUse(ix, cur)
	}
	return Result{}
}

// CompleteChain computes completions for the name chain enclosing the cursor.
// The alias snapshot is looked up by the location of the chain's leading
// segment.
func (e *Engine) CompleteChain(ix symbols.Index, aliases scope.Provider, cur *cursor.Context) Result {
	if cur == nil || cur.Chain == nil {
		e.logger.Trace().Msg("no access chain")
		return Result{}
	}
	info := cur.Chain
	// chains starting with a numeric address may have no snapshot
	snapshot := scope.Lookup(aliases, info.Chain.Leading.Loc)

	e.logger.Debug().
		Str("chain", info.Chain.String()).
		Int("addresses", len(snapshot.Addresses)).
		Int("modules", len(snapshot.Modules)).
		Int("members", len(snapshot.Members)).
		Int("tparams", len(snapshot.TypeParams)).
		Msg("found access chain")

	r := e.newRequest(ix, snapshot, cur)
	candidates := normalize(r.chainCandidates(info))

	e.logger.Debug().Int("candidates", len(candidates)).Msg("access chain completions")

	return Result{Candidates: candidates, Finalized: true}
}

// CompleteUse computes completions for the use declaration enclosing the
// cursor.
func (e *Engine) CompleteUse(ix symbols.Index, cur *cursor.Context) Result {
	if cur == nil || cur.Use == nil {
		e.logger.Trace().Msg("no use declaration")
		return Result{}
	}
	e.logger.Debug().Str("use", fmt.Sprintf("%T", cur.Use)).Msg("found use declaration")

	// the front end computes no alias snapshot for use declarations
	r := e.newRequest(ix, scope.New(), cur)
	candidates := normalize(r.useCandidates(cur.Use))

	e.logger.Debug().Int("candidates", len(candidates)).Msg("use declaration completions")

	return Result{Candidates: candidates, Finalized: true}
}
