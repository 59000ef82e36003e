package semantic

import "github.com/Itshossein128/akbarLangCompiler/internal/ast"

// Symbol records the declared type and initialization state of one name.
// AkbarLang has a single flat scope (§3 of the specification): block
// statements do not introduce nested scopes, so a SymbolTable never chains
// to an outer table the way a block-scoped language's would.
type Symbol struct {
	Type        ast.DeclType
	Initialized bool
}

// SymbolTable is a flat map from declared name to its Symbol.
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Declare adds a new symbol. The caller must have already checked Has(name)
// returns false; Declare itself does not guard against redeclaration so the
// analyzer can report the precise "already declared" diagnostic itself.
func (st *SymbolTable) Declare(name string, typ ast.DeclType, initialized bool) {
	st.symbols[name] = &Symbol{Type: typ, Initialized: initialized}
}

// Has reports whether name has been declared.
func (st *SymbolTable) Has(name string) bool {
	_, ok := st.symbols[name]
	return ok
}

// Lookup returns the symbol for name, or nil if undeclared.
func (st *SymbolTable) Lookup(name string) *Symbol {
	return st.symbols[name]
}

// MarkInitialized flags name as initialized. The caller must have already
// confirmed name is declared.
func (st *SymbolTable) MarkInitialized(name string) {
	if sym, ok := st.symbols[name]; ok {
		sym.Initialized = true
	}
}

// Names returns every declared name, in no particular order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.symbols))
	for n := range st.symbols {
		names = append(names, n)
	}
	return names
}
