package parser

import "sort"

// Operator precedence tiers, loosest to tightest. All binary operators are
// left-associative except the power tier, which is right-associative.
const (
	TierPipe = iota + 1
	TierOr
	TierAnd
	TierCompare
	TierSum
	TierProduct
	TierPow
)

// Operator binds an operator symbol to its canonical function name and
// precedence tier.
type Operator struct {
	Name string
	Tier int
}

// Table maps operator symbols to operators. A table is consulted by both
// the parser (to recognize infix operators) and the stringifier (to render
// function calls back into infix form).
type Table struct {
	ops     map[string]Operator
	symbols []string          // all symbols, longest first, for maximal munch
	names   map[string]string // canonical name -> preferred symbol
}

// DefaultTable returns a table holding the built-in operators.
func DefaultTable() *Table {
	t := &Table{
		ops:   make(map[string]Operator),
		names: make(map[string]string),
	}
	t.add("|", "pipe", TierPipe)
	t.add("or", "or", TierOr)
	t.add("and", "and", TierAnd)
	t.add("in", "in", TierCompare)
	t.add("not in", "not in", TierCompare)
	t.add("==", "eq", TierCompare)
	t.add("!=", "ne", TierCompare)
	t.add("<=", "lte", TierCompare)
	t.add("<", "lt", TierCompare)
	t.add(">=", "gte", TierCompare)
	t.add(">", "gt", TierCompare)
	t.add("+", "add", TierSum)
	t.add("-", "subtract", TierSum)
	t.add("*", "multiply", TierProduct)
	t.add("/", "divide", TierProduct)
	t.add("%", "mod", TierProduct)
	t.add("^", "pow", TierPow)

	return t
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	clone := &Table{
		ops:     make(map[string]Operator, len(t.ops)),
		symbols: append([]string(nil), t.symbols...),
		names:   make(map[string]string, len(t.names)),
	}
	for sym, op := range t.ops {
		clone.ops[sym] = op
	}
	for name, sym := range t.names {
		clone.names[name] = sym
	}

	return clone
}

// Add registers a new operator symbol bound to a canonical function name.
// The symbol's precedence follows the canonical name: arithmetic names keep
// their arithmetic tier, pipe, or and and keep their own tiers, and every
// other name parses at the comparison tier.
func (t *Table) Add(symbol, name string) {
	t.add(symbol, name, tierForName(name))
}

func (t *Table) add(symbol string, name string, tier int) {
	if _, exists := t.ops[symbol]; !exists {
		t.symbols = append(t.symbols, symbol)
		sort.SliceStable(t.symbols, func(i, j int) bool {
			return len(t.symbols[i]) > len(t.symbols[j])
		})
	}
	t.ops[symbol] = Operator{Name: name, Tier: tier}
	if _, exists := t.names[name]; !exists {
		t.names[name] = symbol
	}
}

// SymbolFor returns the preferred symbol for a canonical function name.
func (t *Table) SymbolFor(name string) (string, Operator, bool) {
	sym, ok := t.names[name]
	if !ok {
		return "", Operator{}, false
	}

	return sym, t.ops[sym], true
}

func tierForName(name string) int {
	switch name {
	case "pipe":
		return TierPipe
	case "or":
		return TierOr
	case "and":
		return TierAnd
	case "add", "subtract":
		return TierSum
	case "multiply", "divide", "mod":
		return TierProduct
	case "pow":
		return TierPow
	default:
		return TierCompare
	}
}
