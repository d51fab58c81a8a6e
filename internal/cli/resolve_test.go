package cli

import (
	"testing"

	"github.com/lvanderveer/tally/internal/domain"
	"github.com/lvanderveer/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"6", 6, false},
		{"Mon", 0, false},
		{"wed", 2, false},
		{"Sunday", 6, false},
		{"thu", 3, false},
		{"7", 0, true},
		{"-1", 0, true},
		{"noday", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDay(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestResolveRowID_ByPosition(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("client-alpha", "cla-dev"),
		testutil.WithRow("internal", "int-mtg"),
		testutil.WithRow("client-alpha", "cla-tst"),
	)

	// Grid positions follow the grouped display order, where the two
	// client-alpha rows sit together.
	display := displayRows(ts)
	for pos := 1; pos <= 3; pos++ {
		id, err := resolveRowID(ts, string(rune('0'+pos)))
		require.NoError(t, err)
		assert.Equal(t, display[pos-1].RowID, id)
	}
	assert.Equal(t, "cla-tst", display[1].SubProjectID)

	_, err := resolveRowID(ts, "4")
	assert.Error(t, err)
	_, err = resolveRowID(ts, "0")
	assert.Error(t, err)
}

func TestResolveRowID_ByPrefix(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm"),
	)
	rowID := ts.Rows[0].RowID

	id, err := resolveRowID(ts, rowID[:8])
	require.NoError(t, err)
	assert.Equal(t, rowID, id)

	_, err = resolveRowID(ts, "zzz")
	assert.Error(t, err)
}

func TestResolveSheetRef(t *testing.T) {
	a := testutil.NewTestTimesheet("u1", testutil.WithStatus(domain.StatusSubmitted))
	b := testutil.NewTestTimesheet("u2", testutil.WithStatus(domain.StatusSubmitted))
	pending := []*domain.Timesheet{a, b}

	id, err := resolveSheetRef(pending, "2")
	require.NoError(t, err)
	assert.Equal(t, b.ID, id)

	id, err = resolveSheetRef(pending, a.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	_, err = resolveSheetRef(pending, "3")
	assert.Error(t, err)
	_, err = resolveSheetRef(pending, "nope")
	assert.Error(t, err)
}
