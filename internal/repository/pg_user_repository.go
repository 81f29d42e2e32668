package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/userdesk/backend/internal/model"
)

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

// 共通 SQL を PostgreSQL 形式 ($n) に変換したもの。起動時に一度だけ変換する
var (
	pgListUsers        = Rebind(listUsersSQL)
	pgInsertUser       = Rebind(insertUserSQL + ` RETURNING id, COALESCE(role, 'User'), COALESCE(status, 'active'), created_at`)
	pgUpdateUserStatus = Rebind(updateUserStatusSQL)
	pgDeleteUser       = Rebind(deleteUserSQL)
)

func scanUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// List は全ユーザーを ID 順に返す
func (r *PgUserRepository) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.pool.Query(ctx, pgListUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create はユーザーを作成し、ID・ロール・ステータス・作成日時を書き戻す。
// email 重複は ErrDuplicateEmail
func (r *PgUserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.pool.QueryRow(ctx, pgInsertUser, user.Name, user.Email, user.Role).
		Scan(&user.ID, &user.Role, &user.Status, &user.CreatedAt)
	if isPgUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

// UpdateStatus はユーザーのステータスを更新する。該当行がなければ ErrNotFound
func (r *PgUserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.pool.Exec(ctx, pgUpdateUserStatus, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はユーザーを削除する。該当行がなければ ErrNotFound
func (r *PgUserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, pgDeleteUser, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count は filter に一致するユーザー数を返す
func (r *PgUserRepository) Count(ctx context.Context, filter model.UserFilter) (int, error) {
	query, args := countUsersQuery(filter)
	var n int
	err := r.pool.QueryRow(ctx, Rebind(query), args...).Scan(&n)
	return n, err
}
