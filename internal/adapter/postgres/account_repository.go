package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository implements port.AccountDirectory over the
// user_accounts link table.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// LinkedAccounts returns the external account ids linked to a user.
func (r *AccountRepository) LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT account_id FROM user_accounts WHERE user_id = $1 ORDER BY account_id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// LinkAccount links an account to a user. Linking twice is a no-op.
func (r *AccountRepository) LinkAccount(ctx context.Context, userID uuid.UUID, accountID int64) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO user_accounts (user_id, account_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, accountID)
	return err
}
