package symbols

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dghubble/trie"
)

var moduleTrieConfig = &trie.PathTrieConfig{
	Segmenter: moduleSegmenter,
}

// TrieIndex implements Index using a trie keyed by "addr::module".  It must
// not be modified once handed to a completion request.
type TrieIndex struct {
	modules *trie.PathTrie
	size    int
}

// NewTrieIndex constructs a new TrieIndex.
func NewTrieIndex() *TrieIndex {
	return &TrieIndex{
		modules: trie.NewPathTrieWithConfig(moduleTrieConfig),
	}
}

// AddModule registers the given module.  It is an error to register the
// same module twice.
func (r *TrieIndex) AddModule(defs *ModuleDefs) error {
	if defs == nil {
		return fmt.Errorf("nil module definitions")
	}
	if defs.Ident.Module == "" {
		return fmt.Errorf("module without a name at %v", defs.Loc)
	}
	key := defs.Ident.Key()
	if r.modules.Get(key) != nil {
		return fmt.Errorf("duplicate module: %s", key)
	}
	r.modules.Put(key, defs)
	r.size++
	return nil
}

// Module implements part of the Index interface.
func (r *TrieIndex) Module(ident ModuleIdent) (*ModuleDefs, bool) {
	value := r.modules.Get(ident.Key())
	if value == nil {
		return nil, false
	}
	return value.(*ModuleDefs), true
}

// Modules implements part of the Index interface.
func (r *TrieIndex) Modules() []*ModuleDefs {
	modules := make([]*ModuleDefs, 0, r.size)
	r.modules.Walk(func(key string, value interface{}) error {
		modules = append(modules, value.(*ModuleDefs))
		return nil
	})
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Ident.Key() < modules[j].Ident.Key()
	})
	return modules
}

// Len returns the number of registered modules.
func (r *TrieIndex) Len() int {
	return r.size
}

// moduleSegmenter segments string key paths by "::" separators. For example,
// "0x1::m::f" -> ("0x1", 3), ("::m", 6), ("::f", -1) in successive calls.
func moduleSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.Index(path[start+1:], Separator)
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
