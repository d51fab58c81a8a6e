package repository

import (
	"context"
	"testing"

	"github.com/lvanderveer/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_SeededCatalog(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)

	byCode := make(map[string]int)
	for _, p := range projects {
		byCode[p.Code] = len(p.SubProjects)
	}
	assert.Equal(t, 3, byCode["INT-001"])
	assert.Equal(t, 3, byCode["CL-A"])
	assert.Equal(t, 3, byCode["TO"])
}

func TestProjectRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("Client Beta", "CL-B",
		testutil.WithSubProject("Discovery", "DISC"),
		testutil.WithSubProject("Delivery", "DEL"),
	)
	require.NoError(t, repo.Create(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Client Beta", fetched.Name)
	require.Len(t, fetched.SubProjects, 2)
	// Sub-projects come back ordered by code.
	assert.Equal(t, "DEL", fetched.SubProjects[0].Code)
	assert.Equal(t, "DISC", fetched.SubProjects[1].Code)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_DuplicateCode(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("One", "DUP-1")))
	err := repo.Create(ctx, testutil.NewTestProject("Two", "DUP-1"))
	assert.Error(t, err)
}
