package events

import (
	"database/sql"
	"testing"

	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
)

// PublishTx hands a transaction to the same constructor the pool uses.
var (
	_ watermillsql.ContextExecutor = (*sql.DB)(nil)
	_ watermillsql.ContextExecutor = (*sql.Tx)(nil)
)

func TestNewSQLPublisher_withoutSchemaInit(t *testing.T) {
	// sql.Open does not dial, and skipping schema init keeps the
	// constructor off the network.
	db, err := sql.Open("pgx", "postgres://wardrobe@127.0.0.1:1/wardrobe")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close() //nolint:errcheck

	pub, err := newSQLPublisher(db, false, newLogAdapter(nopLogger()))
	if err != nil {
		t.Fatalf("newSQLPublisher: %v", err)
	}
	if pub == nil {
		t.Fatal("expected a publisher")
	}
}

func TestOutboxed(t *testing.T) {
	db, err := sql.Open("pgx", "postgres://wardrobe@127.0.0.1:1/wardrobe")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close() //nolint:errcheck

	pub, err := newSQLPublisher(db, false, newLogAdapter(nopLogger()))
	if err != nil {
		t.Fatalf("newSQLPublisher: %v", err)
	}
	if got := outboxed(pub, false); got != pub {
		t.Error("outboxed(pub, false) should return pub unchanged")
	}
	if got := outboxed(pub, true); got == pub {
		t.Error("outboxed(pub, true) should wrap pub in a forwarder publisher")
	}
}
