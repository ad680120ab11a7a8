package spec

// Keyword names recognized in a summary specification header. Input record
// names are matched after trailing-padding trim, so both "DIMENS" and
// "DIMENS  " dispatch to the same decoder.
const (
	kwIntehead = "INTEHEAD"
	kwRestart  = "RESTART"
	kwDimens   = "DIMENS"
	kwKeywords = "KEYWORDS"
	kwWGNames  = "WGNAMES"
	kwNames    = "NAMES"
	kwNums     = "NUMS"
	kwLgrs     = "LGRS"
	kwNumlx    = "NUMLX"
	kwNumly    = "NUMLY"
	kwNumlz    = "NUMLZ"
	kwLengths  = "LENGTHS"
	kwLenunits = "LENUNITS"
	kwMeasrmnt = "MEASRMNT"
	kwUnits    = "UNITS"
	kwStartdat = "STARTDAT"
	kwLgrnames = "LGRNAMES"
	kwLgrvec   = "LGRVEC"
	kwLgrtimes = "LGRTIMES"
	kwRuntimei = "RUNTIMEI"
	kwRuntimed = "RUNTIMED"
	kwStepresn = "STEPRESN"
	kwXcoord   = "XCOORD"
	kwYcoord   = "YCOORD"
	kwTimestmp = "TIMESTMP"
)

// KnownKeywords returns the closed list of specification keywords this
// decoder understands, in their conventional header order.
//
// The intended use case is for callers to figure out whether a keyword found
// in a header file belongs to the summary specification at all.
func KnownKeywords() []string {
	return []string{
		kwIntehead,
		kwRestart,
		kwDimens,
		kwKeywords,
		kwWGNames,
		kwNames,
		kwNums,
		kwLgrs,
		kwNumlx,
		kwNumly,
		kwNumlz,
		kwLengths,
		kwLenunits,
		kwMeasrmnt,
		kwUnits,
		kwStartdat,
		kwLgrnames,
		kwLgrvec,
		kwLgrtimes,
		kwRuntimei,
		kwRuntimed,
		kwStepresn,
		kwXcoord,
		kwYcoord,
		kwTimestmp,
	}
}
