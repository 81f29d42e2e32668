package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/userdesk/backend/internal/model"
)

// PgMessageRepository は MessageRepository の PostgreSQL 実装
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository は PgMessageRepository を生成する
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

var (
	pgInsertMessage = Rebind(insertMessageSQL + ` RETURNING id, created_at`)
	pgCountMessages = Rebind(countMessagesSQL)
)

// Save はメッセージを保存し、RETURNING で ID と作成日時を書き戻す
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx, pgInsertMessage,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// Count は保存済みメッセージの件数を返す
func (r *PgMessageRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, pgCountMessages).Scan(&n)
	return n, err
}

// NewPgStore は pool 上に PostgreSQL 版リポジトリ一式を組み立てる
func NewPgStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:    NewPgUserRepository(pool),
		Messages: NewPgMessageRepository(pool),
		DB:       pool,
		driver:   DriverPostgres,
		schema:   dialectFor(DriverPostgres).schema,
		exec: func(ctx context.Context, stmt string) error {
			_, err := pool.Exec(ctx, stmt)
			return err
		},
		version: func(ctx context.Context) (string, error) {
			var v string
			err := pool.QueryRow(ctx, dialectFor(DriverPostgres).versionSQL).Scan(&v)
			return v, err
		},
		close: pool.Close,
	}
}
