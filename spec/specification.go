package spec

import (
	"fmt"
	"time"

	"github.com/subsurfio/smspec/errs"
	"github.com/subsurfio/smspec/format"
	"github.com/subsurfio/smspec/layout"
)

// BlankEntity is the reserved owner-name value denoting "no owning entity".
// A vector whose owner equals this sentinel carries no data in the companion
// summary file and is excluded from the derived column layout.
const BlankEntity = ":+:+:+:+"

// DefaultSeparator joins keyword and owner name in derived column names.
const DefaultSeparator = "."

// Names of the two fixed leading columns of every record layout.
const (
	ReportStepColumn = "REPORTSTEP"
	MiniStepColumn   = "MINISTEP"
)

// Specification is the decoded summary specification header.
//
// Required attributes are plain values; optional attributes are pointers or
// nil-able slices, where nil means the source keyword was absent. Absence is
// a first-class state: callers must check before use rather than rely on zero
// values.
//
// A Specification is read-only after Parse except for Separator. Dtype and
// Pos are derived views recomputed on every call so they always reflect the
// current Separator.
type Specification struct {
	// Nlist is the number of time-series vectors, from DIMENS.
	Nlist int

	// Nx, Ny, Nz are the main grid extents, from DIMENS.
	Nx int
	Ny int
	Nz int

	// Keywords, WGNames, Units and Nums are the required parallel per-vector
	// arrays: mnemonic, owning entity name, unit string, and the auxiliary
	// numeric qualifier (region/completion index; meaning depends on the
	// mnemonic).
	Keywords []string
	WGNames  []string
	Units    []string
	Nums     []int32

	// Measurements are the human-readable descriptions, one per vector,
	// rebuilt from the split MEASRMNT slots.
	Measurements []string

	// StartDate is the simulation start, from the packed STARTDAT array.
	// Seconds arrive encoded as microseconds; see the decoder for the
	// overflow rule.
	StartDate time.Time

	// UnitSystem and Simulator come from INTEHEAD. Either stays nil when the
	// code is missing or outside the known enumeration.
	UnitSystem *UnitSystem
	Simulator  *Simulator

	// Local-grid-refinement block: per-vector LGR names and sub-grid extents.
	Lgrs  []string
	Numlx []int32
	Numly []int32
	Numlz []int32

	// Lengths and LenUnits describe per-vector lengths and their common unit.
	Lengths  []float32
	LenUnits *string

	// LGR name table block.
	LgrNames []string
	LgrVec   []int32
	LgrTimes []int32

	// RuntimeMonitor is the optional run-time monitoring block, assembled
	// from RUNTIMEI and RUNTIMED.
	RuntimeMonitor *RuntimeMonitor

	// Independent optional extensions.
	StepReason *string
	Xcoord     []float32
	Ycoord     []float32
	Timestamp  *time.Time
	Restart    *string

	// Separator is used when deriving column names; mutable, defaults to ".".
	Separator string

	// Diagnostics collects the non-fatal messages emitted while decoding,
	// one per unresolved enumeration code.
	Diagnostics []string

	seen map[string]bool
}

func newSpecification() *Specification {
	return &Specification{
		Separator: DefaultSeparator,
		seen:      make(map[string]bool),
	}
}

// GridShape returns the main grid extents from DIMENS.
func (s *Specification) GridShape() (nx, ny, nz int) {
	return s.Nx, s.Ny, s.Nz
}

// ensureMonitor returns the run-time monitor block, allocating it on first
// use so RUNTIMEI and RUNTIMED can arrive in either order.
func (s *Specification) ensureMonitor() *RuntimeMonitor {
	if s.RuntimeMonitor == nil {
		s.RuntimeMonitor = &RuntimeMonitor{}
	}

	return s.RuntimeMonitor
}

// CheckIntegrity verifies the cross-field consistency rules:
//
//   - DIMENS, KEYWORDS, WGNAMES, UNITS, NUMS, MEASRMNT and STARTDAT are present
//   - the required parallel arrays all have length NLIST; the raw MEASRMNT
//     array has 2*NLIST slots, i.e. NLIST decoded measurements
//   - per-vector optional arrays, when present, have length NLIST
//   - every multi-keyword optional block is fully present or fully absent
//
// A violation is reported as an error wrapping
// errs.ErrInconsistentSpecification and naming the offending attribute.
// CheckIntegrity is deliberately separate from Parse: partial specifications
// are often still usable, so validation is the caller's decision.
func (s *Specification) CheckIntegrity() error {
	if !s.seen[kwDimens] {
		return inconsistent("missing required keyword DIMENS")
	}

	required := []struct {
		keyword string
		length  int
	}{
		{kwKeywords, len(s.Keywords)},
		{kwWGNames, len(s.WGNames)},
		{kwUnits, len(s.Units)},
		{kwNums, len(s.Nums)},
		{kwMeasrmnt, len(s.Measurements)},
	}
	for _, req := range required {
		if !s.seen[req.keyword] {
			return inconsistent("missing required keyword %s", req.keyword)
		}
		if req.length != s.Nlist {
			return inconsistent("%s has length %d, expected NLIST=%d", req.keyword, req.length, s.Nlist)
		}
	}

	if !s.seen[kwStartdat] {
		return inconsistent("missing required keyword %s", kwStartdat)
	}

	perVector := []struct {
		keyword string
		length  int
	}{
		{kwLgrs, len(s.Lgrs)},
		{kwNumlx, len(s.Numlx)},
		{kwNumly, len(s.Numly)},
		{kwNumlz, len(s.Numlz)},
		{kwLengths, len(s.Lengths)},
		{kwXcoord, len(s.Xcoord)},
		{kwYcoord, len(s.Ycoord)},
	}
	for _, opt := range perVector {
		if s.seen[opt.keyword] && opt.length != s.Nlist {
			return inconsistent("%s has length %d, expected NLIST=%d", opt.keyword, opt.length, s.Nlist)
		}
	}

	blocks := []struct {
		name    string
		members []string
	}{
		{"local grid refinement", []string{kwLgrs, kwNumlx, kwNumly, kwNumlz}},
		{"LGR names", []string{kwLgrnames, kwLgrvec, kwLgrtimes}},
		{"lengths", []string{kwLengths, kwLenunits}},
		{"run-time monitor", []string{kwRuntimei, kwRuntimed}},
		{"coordinates", []string{kwXcoord, kwYcoord}},
	}
	for _, block := range blocks {
		var missing []string
		for _, member := range block.members {
			if !s.seen[member] {
				missing = append(missing, member)
			}
		}
		if len(missing) > 0 && len(missing) < len(block.members) {
			return inconsistent("optional %s block is partially present, missing %v", block.name, missing)
		}
	}

	return nil
}

// Dtype derives the ordered column layout of one record in the companion
// summary data file: two fixed integer columns (report step and ministep
// counters) followed by one float column per represented vector.
//
// A vector column is named <keyword><Separator><owner>; the owner suffix is
// omitted for field-level vectors, whose owner name is empty. Vectors owned
// by the BlankEntity sentinel carry no data and get no column at all.
//
// The layout is recomputed on every call from the current Separator; it is
// never cached, so changing Separator takes effect immediately.
func (s *Specification) Dtype() []layout.Column {
	columns := make([]layout.Column, 0, 2+len(s.Keywords))
	columns = append(columns,
		layout.Column{Name: ReportStepColumn, Kind: format.KindInte},
		layout.Column{Name: MiniStepColumn, Kind: format.KindInte},
	)

	for i, keyword := range s.Keywords {
		owner := s.owner(i)
		if owner == BlankEntity {
			continue
		}

		name := keyword
		if owner != "" {
			name = keyword + s.Separator + owner
		}
		columns = append(columns, layout.Column{Name: name, Kind: format.KindReal})
	}

	return columns
}

// Pos lists, in column order, the original vector index behind each vector
// column of Dtype. Vectors owned by the BlankEntity sentinel have no column
// and do not appear, so a void vector in the middle leaves a gap in the
// indices; downstream readers use the listed indices to fetch the right slots
// from each data record.
func (s *Specification) Pos() []int {
	pos := make([]int, 0, len(s.Keywords))
	for i := range s.Keywords {
		if s.owner(i) == BlankEntity {
			continue
		}
		pos = append(pos, i)
	}

	return pos
}

// owner returns the owning entity name of vector i, tolerating a WGNames
// array shorter than Keywords so derived views never panic before
// CheckIntegrity has been run.
func (s *Specification) owner(i int) string {
	if i >= len(s.WGNames) {
		return ""
	}

	return s.WGNames[i]
}

func inconsistent(detail string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrInconsistentSpecification, fmt.Sprintf(detail, args...))
}
