package postgres

import (
	"context"
	"testing"

	"quorum/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB opens a dialect-only GORM instance that builds SQL without
// touching a database, and records the statement text of every query finisher.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	queries := &[]string{}
	err = db.Callback().Query().After("gorm:query").Register("capture_query_sql", func(tx *gorm.DB) {
		*queries = append(*queries, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return db, queries
}

func TestUserFindAndCount_CountDoesNotLeakIntoPageQuery(t *testing.T) {
	db, queries := newDryRunDB(t)
	repo := NewUserRepository(db)

	limit, offset := 10, 20
	_, _, err := repo.FindAndCount(context.Background(), repository.UserFilter{
		Page:      repository.Page{Limit: &limit, Offset: &offset},
		FirstName: "ada",
	})
	require.NoError(t, err)

	require.Len(t, *queries, 2)

	countSQL, pageSQL := (*queries)[0], (*queries)[1]

	// The total is a distinct count over the filtered set, without the window.
	assert.Contains(t, countSQL, "COUNT")
	assert.Contains(t, countSQL, "ILIKE")
	assert.NotContains(t, countSQL, "LIMIT")

	// The page query selects rows; the count finisher must not bleed into it.
	assert.NotContains(t, pageSQL, "COUNT")
	assert.Contains(t, pageSQL, "SELECT *")
	assert.Contains(t, pageSQL, "ILIKE")
	assert.Contains(t, pageSQL, "LIMIT")
}

func TestUserFindAndCount_WindowBindsOnlyWhenComplete(t *testing.T) {
	db, queries := newDryRunDB(t)
	repo := NewUserRepository(db)

	limit := 5
	_, _, err := repo.FindAndCount(context.Background(), repository.UserFilter{
		Page: repository.Page{Limit: &limit},
	})
	require.NoError(t, err)

	require.Len(t, *queries, 2)

	// Limit alone does not bound the page.
	pageSQL := (*queries)[1]
	assert.Contains(t, pageSQL, "SELECT *")
	assert.NotContains(t, pageSQL, "LIMIT")
	assert.NotContains(t, pageSQL, "OFFSET")
}

func TestCityFindAndCount_CountDoesNotLeakIntoPageQuery(t *testing.T) {
	db, queries := newDryRunDB(t)
	repo := NewCityRepository(db)

	limit, offset := 3, 0
	_, _, err := repo.FindAndCount(context.Background(), repository.CityFilter{
		Page: repository.Page{Limit: &limit, Offset: &offset},
		Name: "spring",
	})
	require.NoError(t, err)

	require.Len(t, *queries, 2)
	assert.Contains(t, (*queries)[0], "COUNT")
	assert.NotContains(t, (*queries)[1], "COUNT")
	assert.Contains(t, (*queries)[1], "SELECT *")
	assert.Contains(t, (*queries)[1], "LIMIT")
}

func TestVoteFindAndCount_CountDoesNotLeakIntoPageQuery(t *testing.T) {
	db, queries := newDryRunDB(t)
	repo := NewVoteRepository(db)

	userID := uuid.New()
	limit, offset := 3, 6
	_, _, err := repo.FindAndCount(context.Background(), repository.VoteFilter{
		Page:   repository.Page{Limit: &limit, Offset: &offset},
		UserID: &userID,
	})
	require.NoError(t, err)

	require.Len(t, *queries, 2)
	assert.Contains(t, (*queries)[0], "COUNT")
	assert.Contains(t, (*queries)[0], "user_id")
	assert.NotContains(t, (*queries)[1], "COUNT")
	assert.Contains(t, (*queries)[1], "SELECT *")
	assert.Contains(t, (*queries)[1], "user_id")
	assert.Contains(t, (*queries)[1], "LIMIT")
}
