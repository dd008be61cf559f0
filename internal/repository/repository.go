// Package repository handles all interactions with the database.
//
// It contains the registry's hand-written SQL and the methods that run
// it, keeping SQL out of the service layer. Every query is read-only.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the handle repositories query through.
//
// It is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx, so callers
// decide where the connection comes from and the repository holds it
// for its lifetime.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBTX = (*pgxpool.Pool)(nil)
	_ DBTX = (*pgx.Conn)(nil)
	_ DBTX = (pgx.Tx)(nil)
)
