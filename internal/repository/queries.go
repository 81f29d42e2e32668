package repository

import (
	"strings"

	"github.com/userdesk/backend/internal/model"
)

const userSelectCols = `id, name, email, COALESCE(role, 'User'), COALESCE(status, 'active'), created_at`

const (
	listUsersSQL        = `SELECT ` + userSelectCols + ` FROM users ORDER BY id`
	findUserSQL         = `SELECT ` + userSelectCols + ` FROM users WHERE id = ?`
	insertUserSQL       = `INSERT INTO users (name, email, role) VALUES (?, ?, ?)`
	updateUserStatusSQL = `UPDATE users SET status = ? WHERE id = ?`
	deleteUserSQL       = `DELETE FROM users WHERE id = ?`

	insertMessageSQL  = `INSERT INTO messages (name, email, subject, message) VALUES (?, ?, ?, ?)`
	findMessageAtSQL  = `SELECT created_at FROM messages WHERE id = ?`
	countMessagesSQL  = `SELECT COUNT(*) FROM messages`
	countUsersBaseSQL = `SELECT COUNT(*) FROM users`
)

// countUsersQuery builds the COUNT query for filter. CURRENT_DATE is
// understood by all three SQL dialects.
func countUsersQuery(filter model.UserFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.CreatedToday {
		conditions = append(conditions, "DATE(created_at) = CURRENT_DATE")
	}

	if len(conditions) == 0 {
		return countUsersBaseSQL, args
	}
	return countUsersBaseSQL + " WHERE " + strings.Join(conditions, " AND "), args
}
