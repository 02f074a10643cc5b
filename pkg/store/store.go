// Package store is the Ent-backed persistence layer. It maps plain record
// structs used by the runtime onto the generated entity clients so callers
// never hold Ent types.
package store

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent"
)

// Store bundles all persistence operations over one Ent client.
type Store struct {
	client *ent.Client
}

// New creates a store over an Ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

func nowMS() int64 {
	return time.Now().UnixMilli()
}

func orderDesc() sql.OrderTermOption {
	return sql.OrderDesc()
}

func isEntNotFound(err error) bool {
	return ent.IsNotFound(err)
}

func entCount() ent.AggregateFunc {
	return ent.Count()
}
