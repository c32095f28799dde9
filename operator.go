// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

// Operator describes the native operations of the apply engine. The set is
// closed: every other Boolean connective is derived from these together with
// complement edges (see Or, Imp, Equiv in set.go), so the apply cache only
// ever has to distinguish these seven entries.
type Operator int

const (
	OPand      Operator = iota // Boolean conjunction
	OPxor                      // Exclusive or
	OPite                      // If-then-else
	OPrestrict                 // Restriction by a cube of literals
	OPforall                   // Universal quantification
	OPexist                    // Existential quantification
	OPunique                   // Unique (parity) quantification
)

// _OPCOUNT is the number of native operators; counters and dispatch tables
// are indexed by Operator.
const _OPCOUNT = 7

var opnames = [_OPCOUNT]string{
	OPand:      "and",
	OPxor:      "xor",
	OPite:      "ite",
	OPrestrict: "restrict",
	OPforall:   "forall",
	OPexist:    "exist",
	OPunique:   "unique",
}

// oparity gives the number of edge operands expected by Apply for each
// operator.
var oparity = [_OPCOUNT]int{
	OPand:      2,
	OPxor:      2,
	OPite:      3,
	OPrestrict: 2,
	OPforall:   2,
	OPexist:    2,
	OPunique:   2,
}

func (op Operator) String() string {
	if op < 0 || int(op) >= _OPCOUNT {
		return "unknown"
	}
	return opnames[op]
}
