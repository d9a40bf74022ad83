package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction bound to the context when present,
// otherwise the pool. Repositories route every query through it.
func GetQuerier(ctx context.Context, pool database.Pool) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return pool
}
