package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/userdesk/backend/internal/model"
)

// SQLUserRepository implements UserRepository on database/sql for the
// MySQL and SQLite drivers. Both bind "?" natively.
type SQLUserRepository struct {
	db      *sql.DB
	dialect dialect
}

// NewSQLUserRepository creates a SQLUserRepository for driver.
func NewSQLUserRepository(db *sql.DB, driver Driver) *SQLUserRepository {
	return &SQLUserRepository{db: db, dialect: dialectFor(driver)}
}

var _ UserRepository = (*SQLUserRepository)(nil)

func scanSQLUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, timeScanner{&u.CreatedAt}); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SQLUserRepository) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u, err := scanSQLUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts the row, then reads it back for the defaults the store
// assigned, since MySQL has no RETURNING clause.
func (r *SQLUserRepository) Create(ctx context.Context, user *model.User) error {
	res, err := r.db.ExecContext(ctx, insertUserSQL, user.Name, user.Email, user.Role)
	if err != nil {
		if r.dialect.isDuplicate(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	saved, err := scanSQLUser(r.db.QueryRowContext(ctx, findUserSQL, id).Scan)
	if err != nil {
		return fmt.Errorf("read back user %d: %w", id, err)
	}
	*user = *saved
	return nil
}

func (r *SQLUserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, updateUserStatusSQL, status, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *SQLUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *SQLUserRepository) Count(ctx context.Context, filter model.UserFilter) (int, error) {
	query, args := countUsersQuery(filter)
	var n int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

// requireAffected maps a zero-row UPDATE/DELETE to ErrNotFound.
// MySQL connections are opened with ClientFoundRows so an UPDATE that sets
// the current value still reports the matched row.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SQLMessageRepository implements MessageRepository on database/sql.
type SQLMessageRepository struct {
	db *sql.DB
}

// NewSQLMessageRepository creates a SQLMessageRepository.
func NewSQLMessageRepository(db *sql.DB) *SQLMessageRepository {
	return &SQLMessageRepository{db: db}
}

var _ MessageRepository = (*SQLMessageRepository)(nil)

func (r *SQLMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	res, err := r.db.ExecContext(ctx, insertMessageSQL, msg.Name, msg.Email, msg.Subject, msg.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	msg.ID = id
	return r.db.QueryRowContext(ctx, findMessageAtSQL, id).Scan(timeScanner{&msg.CreatedAt})
}

func (r *SQLMessageRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countMessagesSQL).Scan(&n)
	return n, err
}

// NewSQLStore wires the database/sql repositories around db.
func NewSQLStore(db *sql.DB, driver Driver) *Store {
	return &Store{
		Users:    NewSQLUserRepository(db, driver),
		Messages: NewSQLMessageRepository(db),
		DB:       sqlPinger{db},
		driver:   driver,
		schema:   dialectFor(driver).schema,
		exec: func(ctx context.Context, stmt string) error {
			_, err := db.ExecContext(ctx, stmt)
			return err
		},
		version: func(ctx context.Context) (string, error) {
			var v string
			err := db.QueryRowContext(ctx, dialectFor(driver).versionSQL).Scan(&v)
			return v, err
		},
		close: func() { _ = db.Close() },
	}
}

type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// timeScanner reads a timestamp column whether the driver hands back a
// time.Time (MySQL with parseTime, some SQLite columns) or text.
type timeScanner struct {
	t *time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.t = time.Time{}
		return nil
	case time.Time:
		*s.t = v
		return nil
	case []byte:
		return s.parse(string(v))
	case string:
		return s.parse(v)
	}
	return fmt.Errorf("timestamp: unsupported type %T", src)
}

func (s timeScanner) parse(v string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.t = t
			return nil
		}
	}
	return errors.New("timestamp: unrecognized format " + v)
}
