package compile

import (
	"math"

	"github.com/seijihariki/jsonquery/internal/value"
)

// coreFuncs is the standard library: the function table every compile
// context starts from. User extensions shadow these entries by name.
var coreFuncs = map[string]Builder{
	// Structural
	"pipe":  buildPipe,
	"array": buildArrayElems,
	"get":   buildGet,

	// Collection
	"map":     buildMap,
	"filter":  buildFilter,
	"sort":    buildSort,
	"reverse": buildReverse,
	"pick":    buildPick,
	"groupBy": buildGroupBy,
	"keyBy":   buildKeyBy,
	"flatten": buildFlatten,
	"join":    buildJoin,
	"uniq":    buildUniq,
	"uniqBy":  buildUniqBy,
	"limit":   buildLimit,
	"size":    buildSize,
	"keys":    buildKeys,
	"values":  buildValues,

	// Numeric folds
	"sum":     buildFold("sum", value.Number(0), foldSum),
	"prod":    buildFold("prod", value.Number(1), foldProd),
	"average": buildFold("average", nil, foldAverage),
	"min":     buildFold("min", nil, foldMin),
	"max":     buildFold("max", nil, foldMax),

	// String
	"split":     buildSplit,
	"substring": buildSubstring,

	// Arithmetic
	"add":      buildAdd,
	"subtract": buildBinaryNumber("subtract", func(a, b float64) float64 { return a - b }),
	"multiply": buildBinaryNumber("multiply", func(a, b float64) float64 { return a * b }),
	"divide":   buildBinaryNumber("divide", func(a, b float64) float64 { return a / b }),
	"pow":      buildBinaryNumber("pow", math.Pow),
	"mod":      buildBinaryNumber("mod", math.Mod),
	"abs":      buildAbs,
	"round":    buildRound,

	// Comparison and logic
	"eq":  buildCompare("eq", compareEq),
	"ne":  buildCompare("ne", compareNe),
	"gt":  buildCompare("gt", compareGt),
	"gte": buildCompare("gte", compareGte),
	"lt":  buildCompare("lt", compareLt),
	"lte": buildCompare("lte", compareLte),
	"and": buildAnd,
	"or":  buildOr,
	"not": buildNot,

	// Conditional, membership, regex
	"if":     buildIf,
	"exists": buildExists,
	"in":     buildIn("in", false),
	"not in": buildIn("not in", true),
	"regex":  buildRegex,

	// Conversion
	"number": buildNumber,
	"string": buildString,
}
