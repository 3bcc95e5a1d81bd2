package parser

import (
	"strings"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// atomTier is the binding strength of expressions that never need
// parentheses: literals, property chains, calls, and object/array
// construction.
const atomTier = 1 << 30

// Stringify renders a query back into canonical text form: minimal
// whitespace, operator syntax for the functions the table maps to
// symbols, and parentheses only where precedence requires them. The
// result parses back to the same abstract form. A nil table means the
// default operators.
func Stringify(e types.Expr, table *Table) string {
	if table == nil {
		table = DefaultTable()
	}

	var sb strings.Builder
	render(&sb, e, table, 0)

	return sb.String()
}

func render(sb *strings.Builder, e types.Expr, table *Table, minTier int) {
	if tierOf(e, table) < minTier {
		sb.WriteByte('(')
		render(sb, e, table, 0)
		sb.WriteByte(')')

		return
	}

	switch e := e.(type) {
	case *types.LiteralExpr:
		sb.WriteString(e.Value.String())

	case *types.PipeExpr:
		renderPipe(sb, e.Parts, table)

	case *types.FuncExpr:
		if e.Name == "pipe" {
			renderPipe(sb, e.Args, table)

			return
		}
		if e.Name == "get" {
			if renderPropertyChain(sb, e.Args) {
				return
			}
		}
		if sym, op, ok := table.SymbolFor(e.Name); ok && len(e.Args) == 2 {
			renderInfix(sb, e, sym, op, table)

			return
		}
		renderCall(sb, e.Name, e.Args, table)

	case *types.ObjectExpr:
		sb.WriteByte('{')
		for i, entry := range e.Entries {
			if i > 0 {
				sb.WriteByte(',')
			}
			if isSafeIdent(entry.Key) {
				sb.WriteString(entry.Key)
			} else {
				sb.WriteString(value.String(entry.Key).String())
			}
			sb.WriteByte(':')
			render(sb, entry.Value, table, 0)
		}
		sb.WriteByte('}')

	case *types.ArrayExpr:
		sb.WriteByte('[')
		for i, elem := range e.Elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			render(sb, elem, table, 0)
		}
		sb.WriteByte(']')
	}
}

func renderPipe(sb *strings.Builder, parts []types.Expr, table *Table) {
	if len(parts) == 0 {
		sb.WriteString("get()")

		return
	}
	for i, part := range parts {
		if i > 0 {
			sb.WriteByte('|')
		}
		render(sb, part, table, TierPipe+1)
	}
}

func renderInfix(sb *strings.Builder, e *types.FuncExpr, sym string, op Operator, table *Table) {
	leftTier, rightTier := op.Tier, op.Tier+1
	if op.Tier == TierPow {
		// Right-associative.
		leftTier, rightTier = op.Tier+1, op.Tier
	}

	render(sb, e.Args[0], table, leftTier)
	if isIdentStart(sym[0]) {
		sb.WriteByte(' ')
		sb.WriteString(sym)
		sb.WriteByte(' ')
	} else {
		sb.WriteString(sym)
	}
	render(sb, e.Args[1], table, rightTier)
}

func renderCall(sb *strings.Builder, name string, args []types.Expr, table *Table) {
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		render(sb, arg, table, 0)
	}
	sb.WriteByte(')')
}

// renderPropertyChain writes a get over literal string keys as a dot
// chain. It reports false when the arguments do not fit that shape and
// the call form must be used instead.
func renderPropertyChain(sb *strings.Builder, args []types.Expr) bool {
	if len(args) == 0 {
		sb.WriteString("get()")

		return true
	}

	keys := make([]string, len(args))
	for i, arg := range args {
		lit, ok := arg.(*types.LiteralExpr)
		if !ok {
			return false
		}
		s, ok := lit.Value.(value.String)
		if !ok {
			return false
		}
		keys[i] = string(s)
	}

	for _, k := range keys {
		sb.WriteByte('.')
		if isSafeIdent(k) {
			sb.WriteString(k)
		} else {
			sb.WriteString(value.String(k).String())
		}
	}

	return true
}

func tierOf(e types.Expr, table *Table) int {
	switch e := e.(type) {
	case *types.PipeExpr:
		return TierPipe
	case *types.FuncExpr:
		if e.Name == "pipe" {
			return TierPipe
		}
		if e.Name == "get" {
			return atomTier
		}
		if _, op, ok := table.SymbolFor(e.Name); ok && len(e.Args) == 2 {
			return op.Tier
		}
	}

	return atomTier
}

func isSafeIdent(s string) bool {
	if s == "" || s == "true" || s == "false" || s == "null" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 0 && !isIdentStart(s[i]) {
			return false
		}
		if i > 0 && !isIdentChar(s[i]) {
			return false
		}
	}

	return true
}
