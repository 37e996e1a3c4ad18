// Package database provides test database clients backed by per-test
// PostgreSQL schemas.
package database

import (
	"testing"

	"github.com/cucinellclark/bvbrc-copilot/pkg/database"
	"github.com/cucinellclark/bvbrc-copilot/test/util"
)

// NewTestClient creates a test database client with migrations applied.
// In CI (CI_DATABASE_URL set) it connects to the external PostgreSQL
// service; locally it uses a shared testcontainer. Cleanup drops the
// per-test schema.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
