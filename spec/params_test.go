package spec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifies(t *testing.T) {
	cases := []struct {
		id      string
		keyword string
		want    int
	}{
		// Aquifers and blocks are indexed by NUMS alone.
		{"NUMS", "AAQR", 1},
		{"NUMS", "BPR", 1},
		{"WGNAMES", "AAQR", 0},
		{"WGNAMES", "BPR", 0},

		// Completions need both the well name and the cell index.
		{"WGNAMES", "COFR", 2},
		{"NUMS", "COFR", 2},
		{"LGRS", "COFR", 0},

		// Groups and wells need an owner name.
		{"WGNAMES", "GOPR", 1},
		{"NUMS", "GOPR", 0},
		{"WGNAMES", "WOPR", 1},
		{"WGNAMES", "WWCT", 1},
		{"NUMS", "WWCT", 0},
		{"WGNAMES", "PSTAT", 1},

		// The *M mnemonics are reserved, and WNEWTON is well data in name
		// only.
		{"WGNAMES", "GMCTP", 0},
		{"WGNAMES", "WMCTL", 0},
		{"WGNAMES", "WNEWTON", 0},

		// Regions.
		{"NUMS", "RPR", 1},
		{"WGNAMES", "RPR", 0},

		// Local grid blocks, completions and wells.
		{"LGRS", "LBPR", 4},
		{"NUMLX", "LBPR", 4},
		{"NUMLY", "LBPR", 4},
		{"NUMLZ", "LBPR", 4},
		{"WGNAMES", "LBPR", 0},
		{"LGRS", "LCOFR", 4},
		{"WGNAMES", "LCOFR", 4},
		{"NUMLX", "LCOFR", 4},
		{"LGRS", "LWOPR", 2},
		{"WGNAMES", "LWOPR", 2},
		{"NUMLX", "LWOPR", 0},
		{"LGRS", "L", 0},

		// Network data, minus the solver diagnostics that happen to start
		// with N.
		{"WGNAMES", "NOPR", 1},
		{"WGNAMES", "NEWTON", 0},
		{"WGNAMES", "NAIMFRAC", 0},
		{"WGNAMES", "NLINEARS", 0},
		{"WGNAMES", "NLINSMIN", 0},
		{"WGNAMES", "NLINSMAX", 0},

		// Segments, minus saturation averages and STEPTYPE.
		{"WGNAMES", "SOFR", 2},
		{"NUMS", "SOFR", 2},
		{"WGNAMES", "STEPTYPE", 0},
		{"WGNAMES", "SGAS", 0},
		{"WGNAMES", "SOIL22", 0},
		{"WGNAMES", "SWAT", 0},

		// Field-level and miscellaneous mnemonics are complete on their own.
		{"WGNAMES", "FOPR", 0},
		{"WGNAMES", "TIME", 0},
		{"WGNAMES", "YEARS", 0},
		{"NUMS", "TCPU", 0},
		{"WGNAMES", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.id+"/"+tc.keyword, func(t *testing.T) {
			require.Equal(t, tc.want, Identifies(tc.id, tc.keyword))
		})
	}
}

func TestIdentifies_TrimsPadding(t *testing.T) {
	require.Equal(t, 1, Identifies("WGNAMES ", "WOPR    "))
	require.Equal(t, 2, Identifies("NUMS    ", "COFR    "))
}

func TestPartialIdentifiers(t *testing.T) {
	ids := PartialIdentifiers()
	require.Equal(t, []string{"WGNAMES", "NUMS", "LGRS", "NUMLX", "NUMLY", "NUMLZ"}, ids)

	// Every listed id actually identifies at least one mnemonic.
	samples := []string{"WOPR", "COFR", "LBPR", "LCOFR", "LWOPR", "RPR"}
	for _, id := range ids {
		found := false
		for _, keyword := range samples {
			if Identifies(id, keyword) > 0 {
				found = true
				break
			}
		}
		require.True(t, found, "id %s identifies nothing", id)
	}
}
