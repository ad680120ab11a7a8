package spec

import "strings"

// PartialIdentifiers returns the keywords that can contribute to identifying
// a vector, i.e. the ids for which Identifies may return non-zero.
func PartialIdentifiers() []string {
	return []string{kwWGNames, kwNums, kwLgrs, kwNumlx, kwNumly, kwNumlz}
}

// Identifies reports whether a vector mnemonic depends on the given companion
// keyword to be fully specified, and if so, how many identifiers are needed
// in total.
//
// Most mnemonics need additional data before their column is meaningful: well
// keywords (WOPR, WWCT, ...) need a WGNAMES entry, completions need both a
// well name and a NUMS index, local-grid vectors need the LGR name and
// sub-grid coordinates. Field-level mnemonics are complete on their own.
// Specifications also routinely contain garbage columns, flagged by a blank
// or BlankEntity entry in one of these identifiers, so this ruleset doubles
// as a predicate for whether a column is worth reading at all.
//
// For example, Identifies("WGNAMES", "WOPR") returns 1: a well name fully
// identifies the vector. Identifies("NUMS", "COFR") returns 2: a completion
// needs both the well name and the cell index.
//
// Both arguments may carry trailing padding. A zero return means the id does
// not contribute to the mnemonic's identity.
func Identifies(id, keyword string) int {
	id = trimPadding(id)
	key := trimPadding(keyword)
	if key == "" {
		return 0
	}

	switch key[0] {
	// Aquifer and block data are indexed by NUMS alone.
	case 'A', 'B':
		return ifMatch(id == kwNums, 1)

	// Completion or connection data.
	case 'C':
		return ifMatch(id == kwWGNames || id == kwNums, 2)

	// Group data. The GM mnemonics are reserved for other uses and are not
	// parametrised.
	case 'G':
		if len(key) > 1 && key[1] == 'M' {
			return 0
		}
		return ifMatch(id == kwWGNames, 1)

	// Well data. WM is reserved like GM, and of course WNEWTON is also a
	// thing.
	case 'W':
		if len(key) > 1 && key[1] == 'M' {
			return 0
		}
		if key == "WNEWTON" {
			return 0
		}
		return ifMatch(id == kwWGNames, 1)

	case 'P':
		return ifMatch(id == kwWGNames, 1)

	// Region data.
	case 'R':
		return ifMatch(id == kwNums, 1)

	case 'L':
		return identifiesLGR(id, key)

	case 'N':
		switch key {
		case "NEWTON", "NAIMFRAC", "NLINEARS", "NLINSMIN", "NLINSMAX":
			return 0
		}
		return ifMatch(id == kwWGNames, 1)

	case 'S':
		if key == "STEPTYPE" {
			return 0
		}
		switch {
		case strings.HasPrefix(key, "SGAS"),
			strings.HasPrefix(key, "SOIL"),
			strings.HasPrefix(key, "SWAT"):
			return 0
		}
		return ifMatch(id == kwWGNames || id == kwNums, 2)

	default:
		return 0
	}
}

// identifiesLGR handles the local-grid mnemonics: LB (block), LC (completion)
// and LW (well) each need the LGR name plus their own coordinate set.
func identifiesLGR(id, key string) int {
	if len(key) < 2 {
		return 0
	}

	switch key[1] {
	case 'B':
		return ifMatch(id == kwLgrs || id == kwNumlx || id == kwNumly || id == kwNumlz, 4)
	case 'C':
		return ifMatch(id == kwLgrs || id == kwWGNames || id == kwNumlx || id == kwNumly || id == kwNumlz, 4)
	case 'W':
		return ifMatch(id == kwLgrs || id == kwWGNames, 2)
	default:
		return 0
	}
}

func ifMatch(ok bool, n int) int {
	if ok {
		return n
	}

	return 0
}
