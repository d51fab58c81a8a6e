package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekStart_Monday(t *testing.T) {
	week, err := ParseWeekStart("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, week.Weekday())
}

func TestParseWeekStart_NotMonday(t *testing.T) {
	_, err := ParseWeekStart("2026-09-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseWeekStart_Malformed(t *testing.T) {
	for _, s := range []string{"", "31/08/2026", "2026-13-01"} {
		_, err := ParseWeekStart(s)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", s)
	}
}

func TestMondayOf(t *testing.T) {
	cases := map[string]string{
		"2026-08-31": "2026-08-31", // Monday maps to itself
		"2026-09-01": "2026-08-31",
		"2026-09-06": "2026-08-31", // Sunday belongs to the preceding Monday
		"2026-09-07": "2026-09-07",
	}
	for in, want := range cases {
		day, err := time.Parse(WeekLayout, in)
		require.NoError(t, err)
		assert.Equal(t, want, MondayOf(day).Format(WeekLayout), "input %s", in)
	}
}

func TestGroupRowsByProject(t *testing.T) {
	ts := draftSheet(t)

	r1, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)
	r2, err := ts.AddRow("P2", "S2")
	require.NoError(t, err)
	r3, err := ts.AddRow("P1", "S3")
	require.NoError(t, err)

	groups := GroupRowsByProject(ts)
	require.Len(t, groups, 2)
	assert.Equal(t, "P1", groups[0].ProjectID)
	assert.Equal(t, []*AssignmentRow{r1, r3}, groups[0].Rows)
	assert.Equal(t, "P2", groups[1].ProjectID)
	assert.Equal(t, []*AssignmentRow{r2}, groups[1].Rows)

	// Grouping is a projection: the underlying order is untouched.
	assert.Equal(t, []*AssignmentRow{r1, r2, r3}, ts.Rows)
}

func TestNameIndex_UnknownFallback(t *testing.T) {
	ix := BuildNameIndex([]*Project{
		{ID: "p1", Name: "Client Alpha", SubProjects: []SubProject{{ID: "s1", Name: "Development"}}},
	})

	assert.Equal(t, "Client Alpha", ix.ProjectName("p1"))
	assert.Equal(t, "Development", ix.SubProjectName("s1"))
	assert.Equal(t, UnknownName, ix.ProjectName("missing"))
	assert.Equal(t, UnknownName, ix.SubProjectName("missing"))
}

func TestUserCanReview(t *testing.T) {
	assert.False(t, (&User{Role: RoleEmployee}).CanReview())
	assert.True(t, (&User{Role: RoleManager}).CanReview())
	assert.True(t, (&User{Role: RoleAdmin}).CanReview())
}
