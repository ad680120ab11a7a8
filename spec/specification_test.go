package spec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subsurfio/smspec/errs"
	"github.com/subsurfio/smspec/format"
	"github.com/subsurfio/smspec/layout"
)

func TestCheckIntegrity_Minimal(t *testing.T) {
	s, err := Parse(minimalRecords())
	require.NoError(t, err)
	require.NoError(t, s.CheckIntegrity())
}

func TestCheckIntegrity_WithOptional(t *testing.T) {
	s, err := Parse(append(minimalRecords(), optionalRecords()...))
	require.NoError(t, err)
	require.NoError(t, s.CheckIntegrity())
}

func TestCheckIntegrity_MissingRequired(t *testing.T) {
	for _, keyword := range []string{
		"DIMENS", "KEYWORDS", "WGNAMES", "UNITS", "NUMS", "MEASRMNT", "STARTDAT",
	} {
		t.Run("without "+keyword, func(t *testing.T) {
			records := make([]Record, 0, len(minimalRecords()))
			for _, rec := range minimalRecords() {
				if rec.Name != keyword {
					records = append(records, rec)
				}
			}

			s, err := Parse(records)
			require.NoError(t, err)

			err = s.CheckIntegrity()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInconsistentSpecification)
			require.Contains(t, err.Error(), keyword)
		})
	}
}

func TestCheckIntegrity_LengthMismatch(t *testing.T) {
	cases := []struct {
		name   string
		record Record
	}{
		{"WGNAMES", Record{Name: "WGNAMES", Values: Chars("W1      ")}},
		{"UNITS", Record{Name: "UNITS", Values: Chars("SM3/DAY ", "SM3     ", "SM3     ")}},
		{"NUMS", Record{Name: "NUMS", Values: Ints(1)}},
		{"MEASRMNT", Record{Name: "MEASRMNT", Values: Chars("O:FLOWRA", "TE      ")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := minimalRecords()
			for i := range records {
				if records[i].Name == tc.name {
					records[i] = tc.record
				}
			}

			s, err := Parse(records)
			require.NoError(t, err)

			err = s.CheckIntegrity()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInconsistentSpecification)
			require.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestCheckIntegrity_OptionalVectorLengthMismatch(t *testing.T) {
	records := append(minimalRecords(),
		Record{Name: "XCOORD", Values: Reals(2.1)},
		Record{Name: "YCOORD", Values: Reals(8.2, 0.0)},
	)

	s, err := Parse(records)
	require.NoError(t, err)

	err = s.CheckIntegrity()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInconsistentSpecification)
	require.Contains(t, err.Error(), "XCOORD")
}

func TestCheckIntegrity_PartialBlocks(t *testing.T) {
	cases := []struct {
		name    string
		records []Record
	}{
		{
			"LGR without NUMLZ",
			[]Record{
				{Name: "LGRS", Values: Chars("LGR1    ", "LGR2    ")},
				{Name: "NUMLX", Values: Ints(1, 7)},
				{Name: "NUMLY", Values: Ints(2, 11)},
			},
		},
		{
			"LENGTHS without LENUNITS",
			[]Record{
				{Name: "LENGTHS", Values: Reals(1.2, 2.9)},
			},
		},
		{
			"RUNTIMEI without RUNTIMED",
			[]Record{
				{Name: "RUNTIMEI", Values: Ints(make([]int32, 50)...)},
			},
		},
		{
			"XCOORD without YCOORD",
			[]Record{
				{Name: "XCOORD", Values: Reals(2.1, 9.3)},
			},
		},
		{
			"LGRNAMES without LGRVEC and LGRTIMES",
			[]Record{
				{Name: "LGRNAMES", Values: Chars("LGRID   ")},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse(append(minimalRecords(), tc.records...))
			require.NoError(t, err)

			err = s.CheckIntegrity()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInconsistentSpecification)
		})
	}
}

func TestDtype_Minimal(t *testing.T) {
	s, err := Parse(minimalRecords())
	require.NoError(t, err)

	require.Equal(t, []layout.Column{
		{Name: "REPORTSTEP", Kind: format.KindInte},
		{Name: "MINISTEP", Kind: format.KindInte},
		{Name: "WOPR.W1", Kind: format.KindReal},
		{Name: "WOPT.W2", Kind: format.KindReal},
	}, s.Dtype())
	require.Equal(t, []int{0, 1}, s.Pos())
}

func TestDtype_CustomSeparator(t *testing.T) {
	s, err := Parse(minimalRecords())
	require.NoError(t, err)

	s.Separator = "-"
	require.Equal(t, []layout.Column{
		{Name: "REPORTSTEP", Kind: format.KindInte},
		{Name: "MINISTEP", Kind: format.KindInte},
		{Name: "WOPR-W1", Kind: format.KindReal},
		{Name: "WOPT-W2", Kind: format.KindReal},
	}, s.Dtype())
}

func TestDtype_FieldVector(t *testing.T) {
	// A field-level vector has an empty owner and is named by its keyword
	// alone, with no separator.
	records := minimalRecords()
	for i := range records {
		switch records[i].Name {
		case "KEYWORDS":
			records[i].Values = Chars("FOPR    ", "WOPT    ")
		case "WGNAMES":
			records[i].Values = Chars("        ", "W2      ")
		}
	}

	s, err := Parse(records)
	require.NoError(t, err)

	require.Equal(t, []layout.Column{
		{Name: "REPORTSTEP", Kind: format.KindInte},
		{Name: "MINISTEP", Kind: format.KindInte},
		{Name: "FOPR", Kind: format.KindReal},
		{Name: "WOPT.W2", Kind: format.KindReal},
	}, s.Dtype())
	require.Equal(t, []int{0, 1}, s.Pos())
}

func TestDtype_BlankEntity(t *testing.T) {
	// The :+:+:+:+ sentinel marks a vector that carries no data at all; it
	// gets no column, and Pos keeps the original indices of the surviving
	// vectors so the one in the middle leaves a gap.
	records := []Record{
		{Name: "DIMENS", Values: Ints(3, 1, 1, 1, 0, 0)},
		{Name: "KEYWORDS", Values: Chars("WOPR    ", "TIME    ", "WOPT    ")},
		{Name: "WGNAMES", Values: Chars("W1      ", ":+:+:+:+", "W2      ")},
		{Name: "UNITS", Values: Chars("SM3/DAY ", "DAYS    ", "SM3     ")},
		{Name: "STARTDAT", Values: Ints(5, 3, 1971, 9, 37, 14917)},
		{Name: "NUMS", Values: Ints(1, 0, 1)},
		{Name: "MEASRMNT", Values: Chars("O:FLOWRA", "TE      ", "TIME    ", "        ", "O:FLOWVO", "LUME    ")},
	}

	s, err := Parse(records)
	require.NoError(t, err)
	require.NoError(t, s.CheckIntegrity())

	require.Equal(t, []layout.Column{
		{Name: "REPORTSTEP", Kind: format.KindInte},
		{Name: "MINISTEP", Kind: format.KindInte},
		{Name: "WOPR.W1", Kind: format.KindReal},
		{Name: "WOPT.W2", Kind: format.KindReal},
	}, s.Dtype())
	require.Equal(t, []int{0, 2}, s.Pos())
}

func TestDtype_SeparatorDoesNotAffectPos(t *testing.T) {
	s, err := Parse(minimalRecords())
	require.NoError(t, err)

	before := s.Pos()
	s.Separator = "::"
	require.Equal(t, before, s.Pos())
}

func TestGridShape(t *testing.T) {
	s, err := Parse([]Record{
		{Name: "DIMENS", Values: Ints(10, 20, 30, 40, 0, 0)},
	})
	require.NoError(t, err)

	nx, ny, nz := s.GridShape()
	require.Equal(t, 20, nx)
	require.Equal(t, 30, ny)
	require.Equal(t, 40, nz)
}
