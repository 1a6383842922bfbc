package database

import (
	"context"
	"database/sql"
)

// DB is the read surface the analytics engine needs from the entity store,
// plus the stdlib handle the migration runner works against. The engine
// itself never writes; Exec exists for the migration and seeding path.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
