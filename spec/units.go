package spec

// UnitSystem is the unit convention a summary was produced under, from the
// first INTEHEAD integer.
type UnitSystem int32

const (
	Metric UnitSystem = 1
	Field  UnitSystem = 2
	Lab    UnitSystem = 3
	PVTM   UnitSystem = 4
)

func (u UnitSystem) String() string {
	switch u {
	case Metric:
		return "METRIC"
	case Field:
		return "FIELD"
	case Lab:
		return "LAB"
	case PVTM:
		return "PVT-M"
	default:
		return "Unknown"
	}
}

// Simulator identifies the program that produced a summary, from the second
// INTEHEAD integer. The thermal variant of ECLIPSE 300 carries its own,
// higher code.
type Simulator int32

const (
	Eclipse100        Simulator = 100
	Eclipse300        Simulator = 300
	Eclipse300Thermal Simulator = 500
	Intersect         Simulator = 700
	FrontSim          Simulator = 800
)

func (s Simulator) String() string {
	switch s {
	case Eclipse100:
		return "ECLIPSE 100"
	case Eclipse300:
		return "ECLIPSE 300"
	case Eclipse300Thermal:
		return "ECLIPSE 300 (thermal option)"
	case Intersect:
		return "INTERSECT"
	case FrontSim:
		return "FrontSim"
	default:
		return "Unknown"
	}
}

// LookupUnitSystem resolves an INTEHEAD unit-system code against the closed
// enumeration. The second return is false for codes outside the known set.
func LookupUnitSystem(code int32) (UnitSystem, bool) {
	switch u := UnitSystem(code); u {
	case Metric, Field, Lab, PVTM:
		return u, true
	default:
		return 0, false
	}
}

// LookupSimulator resolves an INTEHEAD simulator code against the closed
// enumeration. The second return is false for codes outside the known set.
func LookupSimulator(code int32) (Simulator, bool) {
	switch s := Simulator(code); s {
	case Eclipse100, Eclipse300, Eclipse300Thermal, Intersect, FrontSim:
		return s, true
	default:
		return 0, false
	}
}
