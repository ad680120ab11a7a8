package spec

import "time"

// Fixed positions inside the RUNTIMEI integer array. Positions between the
// named ones are reserved and preserved verbatim in Raw.
const (
	runtimeiFinished       = 0
	runtimeiInitialReport  = 1
	runtimeiCurrentReport  = 2
	runtimeiInitialStamp   = 3  // six integers: year, month, day, hour, minute, second
	runtimeiCurrentStamp   = 9  // six integers, same shape
	runtimeiBasic          = 34 // BASIC mnemonic mode code
	runtimeiMinLen         = runtimeiBasic + 1
	runtimeiFinishedMarker = 2 // value at position 0 once the run has completed
)

// RuntimeMonitor is the optional run-time monitoring block, assembled from
// the RUNTIMEI integer array and the RUNTIMED float payload.
type RuntimeMonitor struct {
	// Finished reports whether the simulation run has completed.
	Finished bool

	// InitialReportNo and CurrentReportNo are the report step numbers at
	// monitoring start and at the latest update.
	InitialReportNo int
	CurrentReportNo int

	// InitialTimestamp and CurrentTimestamp are plain wall-clock date-times
	// (no microsecond packing, unlike STARTDAT).
	InitialTimestamp time.Time
	CurrentTimestamp time.Time

	// Basic is the mode code assigned to the BASIC mnemonic.
	Basic int

	// Double is the RUNTIMED auxiliary numeric payload, stored verbatim.
	Double []float64

	// Raw is the full RUNTIMEI array, including reserved positions.
	Raw []int32
}

// plainTimestamp builds a timestamp from six consecutive integers laid out as
// year, month, day, hour, minute, second.
func plainTimestamp(v []int32) time.Time {
	return time.Date(
		int(v[0]), time.Month(v[1]), int(v[2]),
		int(v[3]), int(v[4]), int(v[5]),
		0, time.UTC,
	)
}
