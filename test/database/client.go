package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/database"
	"github.com/opencane/edged/test/util"
)

// NewTestClient returns a database client bound to a per-test schema. CI
// points at an external server via EDGED_TEST_DATABASE_URL; local runs share
// one testcontainer. Cleanup is handled by util.SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	return database.NewClientFromEnt(entClient, db)
}
