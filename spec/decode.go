package spec

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/subsurfio/smspec/errs"
	"github.com/subsurfio/smspec/format"
	"github.com/subsurfio/smspec/internal/options"
)

// ParseOption represents a functional option for configuring a Parse or
// ParseMap call.
type ParseOption = options.Option[*decoder]

// WithLogger routes decoding diagnostics (unresolved INTEHEAD codes) to the
// given logger. The default is a no-op logger; diagnostics are always also
// collected on Specification.Diagnostics.
func WithLogger(logger *zap.Logger) ParseOption {
	return options.NoError(func(d *decoder) {
		d.logger = logger
	})
}

// WithSeparator sets the initial column-name separator of the resulting
// Specification. Equivalent to assigning Specification.Separator afterwards.
func WithSeparator(sep string) ParseOption {
	return options.NoError(func(d *decoder) {
		d.spec.Separator = sep
	})
}

// decoder routes keyword arrays to their field decoders and accumulates the
// Specification under construction.
type decoder struct {
	spec   *Specification
	logger *zap.Logger
}

func newDecoder(opts ...ParseOption) (*decoder, error) {
	d := &decoder{
		spec:   newSpecification(),
		logger: zap.NewNop(),
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Parse decodes an ordered sequence of keyword records into a Specification.
//
// Unknown keywords are silently ignored for forward compatibility with future
// header extensions. A known keyword whose array has the wrong shape or
// scalar kind aborts decoding with an error wrapping
// errs.ErrIllFormedSpecification.
//
// Parse itself imposes no ordering requirement on the records; cross-field
// relationships are validated separately by Specification.CheckIntegrity.
//
// Parameters:
//   - records: Ordered (keyword, array) pairs, e.g. from a header-file reader
//   - opts: Optional configuration (WithLogger, WithSeparator)
//
// Returns:
//   - *Specification: The decoded specification
//   - error: Ill-formed keyword array or invalid option
func Parse(records []Record, opts ...ParseOption) (*Specification, error) {
	d, err := newDecoder(opts...)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if err := d.ingest(rec.Name, rec.Values); err != nil {
			return nil, err
		}
	}

	return d.spec, nil
}

// ParseMap decodes keyword records supplied as a map. It behaves exactly like
// Parse; map iteration order does not matter because no decoder depends on a
// companion keyword at decode time.
func ParseMap(records map[string]Array, opts ...ParseOption) (*Specification, error) {
	d, err := newDecoder(opts...)
	if err != nil {
		return nil, err
	}

	for name, values := range records {
		if err := d.ingest(name, values); err != nil {
			return nil, err
		}
	}

	return d.spec, nil
}

// ingest dispatches one keyword record to its field decoder. Names are
// matched after trailing-padding trim, so padded Fortran names work as-is.
func (d *decoder) ingest(name string, values Array) error {
	s := d.spec
	kw := strings.TrimRight(name, " ")

	var err error
	switch kw {
	case kwDimens:
		err = d.decodeDimens(values)
	case kwKeywords:
		s.Keywords, err = trimmedStrings(kw, values)
	case kwWGNames, kwNames:
		// NAMES is the varchar variant some simulators emit in place of
		// WGNAMES; both populate the owner-name attribute.
		s.WGNames, err = trimmedStrings(kw, values)
		kw = kwWGNames
	case kwUnits:
		s.Units, err = trimmedStrings(kw, values)
	case kwMeasrmnt:
		err = d.decodeMeasurements(values)
	case kwStartdat:
		err = d.decodeStartDate(values)
	case kwIntehead:
		err = d.decodeIntehead(values)
	case kwNums:
		s.Nums, err = intArray(kw, values, -1)
	case kwLgrs:
		s.Lgrs, err = trimmedStrings(kw, values)
	case kwNumlx:
		s.Numlx, err = intArray(kw, values, -1)
	case kwNumly:
		s.Numly, err = intArray(kw, values, -1)
	case kwNumlz:
		s.Numlz, err = intArray(kw, values, -1)
	case kwLengths:
		s.Lengths, err = realArray(kw, values)
	case kwLenunits:
		err = d.decodeLenUnits(values)
	case kwLgrnames:
		s.LgrNames, err = trimmedStrings(kw, values)
	case kwLgrvec:
		s.LgrVec, err = intArray(kw, values, -1)
	case kwLgrtimes:
		s.LgrTimes, err = intArray(kw, values, -1)
	case kwRuntimei:
		err = d.decodeRuntimeInts(values)
	case kwRuntimed:
		err = d.decodeRuntimeDoubles(values)
	case kwStepresn:
		err = d.decodeStepReason(values)
	case kwXcoord:
		s.Xcoord, err = realArray(kw, values)
	case kwYcoord:
		s.Ycoord, err = realArray(kw, values)
	case kwTimestmp:
		err = d.decodeTimestamp(values)
	case kwRestart:
		err = d.decodeRestart(values)
	default:
		// Unknown keyword: ignore.
		return nil
	}

	if err != nil {
		return err
	}

	s.seen[kw] = true

	return nil
}

// decodeDimens decodes the six DIMENS integers: NLIST and the grid extents.
// The last two positions are reserved.
func (d *decoder) decodeDimens(a Array) error {
	v, err := intArray(kwDimens, a, 6)
	if err != nil {
		return err
	}

	d.spec.Nlist = int(v[0])
	d.spec.Nx = int(v[1])
	d.spec.Ny = int(v[2])
	d.spec.Nz = int(v[3])

	return nil
}

// decodeMeasurements rebuilds measurement descriptions from MEASRMNT, which
// stores two consecutive 8-character slots per vector.
func (d *decoder) decodeMeasurements(a Array) error {
	slots, err := charArray(kwMeasrmnt, a, -1)
	if err != nil {
		return err
	}
	if len(slots)%2 != 0 {
		return illFormed(kwMeasrmnt, "expects an even number of slots, got %d", len(slots))
	}

	measurements := make([]string, 0, len(slots)/2)
	for i := 0; i < len(slots); i += 2 {
		measurements = append(measurements, trimPadding(slots[i]+slots[i+1]))
	}
	d.spec.Measurements = measurements

	return nil
}

// decodeStartDate decodes the packed STARTDAT array: day, month, year, hour,
// minute, and a sixth value holding the seconds encoded as microseconds.
// Building the timestamp with zero seconds and adding the sixth value as
// microseconds lets values of 60,000,000 and above overflow into the minute
// field instead of erroring.
func (d *decoder) decodeStartDate(a Array) error {
	v, err := intArray(kwStartdat, a, 6)
	if err != nil {
		return err
	}

	date := time.Date(
		int(v[2]), time.Month(v[1]), int(v[0]),
		int(v[3]), int(v[4]), 0,
		0, time.UTC,
	)
	d.spec.StartDate = date.Add(time.Duration(v[5]) * time.Microsecond)

	return nil
}

// decodeIntehead resolves the unit-system and simulator codes. A code outside
// either enumeration leaves the corresponding attribute unset and emits
// exactly one diagnostic; a miss on one axis never suppresses the other.
func (d *decoder) decodeIntehead(a Array) error {
	v, err := intArray(kwIntehead, a, -1)
	if err != nil {
		return err
	}
	if len(v) < 2 {
		return illFormed(kwIntehead, "expects at least 2 values, got %d", len(v))
	}

	if unit, ok := LookupUnitSystem(v[0]); ok {
		d.spec.UnitSystem = &unit
	} else {
		d.diagnose(fmt.Sprintf("unknown unit system code %d in INTEHEAD", v[0]))
	}

	if sim, ok := LookupSimulator(v[1]); ok {
		d.spec.Simulator = &sim
	} else {
		d.diagnose(fmt.Sprintf("unknown simulator code %d in INTEHEAD", v[1]))
	}

	return nil
}

// decodeRuntimeInts fills the integer side of the run-time monitor block.
// Reserved positions are preserved verbatim in Raw.
func (d *decoder) decodeRuntimeInts(a Array) error {
	v, err := intArray(kwRuntimei, a, -1)
	if err != nil {
		return err
	}
	if len(v) < runtimeiMinLen {
		return illFormed(kwRuntimei, "expects at least %d values, got %d", runtimeiMinLen, len(v))
	}

	m := d.spec.ensureMonitor()
	m.Finished = v[runtimeiFinished] == runtimeiFinishedMarker
	m.InitialReportNo = int(v[runtimeiInitialReport])
	m.CurrentReportNo = int(v[runtimeiCurrentReport])
	m.InitialTimestamp = plainTimestamp(v[runtimeiInitialStamp : runtimeiInitialStamp+6])
	m.CurrentTimestamp = plainTimestamp(v[runtimeiCurrentStamp : runtimeiCurrentStamp+6])
	m.Basic = int(v[runtimeiBasic])
	m.Raw = v

	return nil
}

// decodeRuntimeDoubles stores the RUNTIMED payload verbatim. Both REAL and
// DOUB arrays are accepted; simulators disagree on which they write.
func (d *decoder) decodeRuntimeDoubles(a Array) error {
	var values []float64
	switch a.Kind() {
	case format.KindDoub:
		values = a.doubs
	case format.KindReal:
		values = make([]float64, len(a.reals))
		for i, r := range a.reals {
			values[i] = float64(r)
		}
	default:
		return illFormed(kwRuntimed, "expects %s or %s values, got %s",
			format.KindDoub, format.KindReal, a.Kind())
	}

	d.spec.ensureMonitor().Double = values

	return nil
}

// decodeStepReason keeps the first STEPRESN slot; the remaining slots are
// padding and are discarded.
func (d *decoder) decodeStepReason(a Array) error {
	slots, err := charArray(kwStepresn, a, 1)
	if err != nil {
		return err
	}

	reason := trimPadding(slots[0])
	d.spec.StepReason = &reason

	return nil
}

// decodeLenUnits decodes the single LENUNITS slot.
func (d *decoder) decodeLenUnits(a Array) error {
	slots, err := charArray(kwLenunits, a, 1)
	if err != nil {
		return err
	}

	unit := trimPadding(slots[0])
	d.spec.LenUnits = &unit

	return nil
}

// decodeTimestamp decodes the plain six-integer TIMESTMP array.
func (d *decoder) decodeTimestamp(a Array) error {
	v, err := intArray(kwTimestmp, a, 6)
	if err != nil {
		return err
	}

	stamp := plainTimestamp(v)
	d.spec.Timestamp = &stamp

	return nil
}

// decodeRestart reassembles the restart file root name, which is split across
// all RESTART slots.
func (d *decoder) decodeRestart(a Array) error {
	slots, err := charArray(kwRestart, a, -1)
	if err != nil {
		return err
	}

	restart := trimPadding(strings.Join(slots, ""))
	d.spec.Restart = &restart

	return nil
}

// diagnose records a non-fatal diagnostic on the specification and the
// configured logger.
func (d *decoder) diagnose(msg string) {
	d.spec.Diagnostics = append(d.spec.Diagnostics, msg)
	d.logger.Warn(msg)
}

// illFormed wraps errs.ErrIllFormedSpecification with the offending keyword
// and detail.
func illFormed(kw string, detail string, args ...any) error {
	return fmt.Errorf("%w: %s %s", errs.ErrIllFormedSpecification, kw, fmt.Sprintf(detail, args...))
}

// intArray returns the INTE values of the array, enforcing an exact length
// when want is non-negative.
func intArray(kw string, a Array, want int) ([]int32, error) {
	if a.Kind() != format.KindInte {
		return nil, illFormed(kw, "expects %s values, got %s", format.KindInte, a.Kind())
	}
	if want >= 0 && len(a.ints) != want {
		return nil, illFormed(kw, "expects %d values, got %d", want, len(a.ints))
	}

	return a.ints, nil
}

// realArray returns the REAL values of the array.
func realArray(kw string, a Array) ([]float32, error) {
	if a.Kind() != format.KindReal {
		return nil, illFormed(kw, "expects %s values, got %s", format.KindReal, a.Kind())
	}

	return a.reals, nil
}

// charArray returns the CHAR slots of the array, enforcing a minimum slot
// count when min is non-negative.
func charArray(kw string, a Array, min int) ([]string, error) {
	if a.Kind() != format.KindChar {
		return nil, illFormed(kw, "expects %s values, got %s", format.KindChar, a.Kind())
	}
	if min >= 0 && len(a.chars) < min {
		return nil, illFormed(kw, "expects at least %d slots, got %d", min, len(a.chars))
	}

	return a.chars, nil
}

// trimmedStrings decodes a CHAR array by trimming the trailing padding of
// every slot. Leading whitespace is significant and kept; a slot that trims
// to nothing stays in the result as an empty string.
func trimmedStrings(kw string, a Array) ([]string, error) {
	slots, err := charArray(kw, a, -1)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = trimPadding(slot)
	}

	return out, nil
}

// trimPadding removes the trailing blank padding of a fixed-width slot.
func trimPadding(s string) string {
	return strings.TrimRight(s, " ")
}
