package repository

import (
	"testing"

	"github.com/userdesk/backend/internal/model"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"no placeholders", "SELECT COUNT(*) FROM users", "SELECT COUNT(*) FROM users"},
		{"in order", "UPDATE users SET status = ? WHERE id = ?", "UPDATE users SET status = $1 WHERE id = $2"},
		{"single quoted literal", "SELECT '?' AS q, ? FROM t", "SELECT '?' AS q, $1 FROM t"},
		{"escaped quote", "SELECT 'it''s ?', ?", "SELECT 'it''s ?', $1"},
		{"quoted identifier", `SELECT "odd?col" FROM t WHERE x = ?`, `SELECT "odd?col" FROM t WHERE x = $1`},
		{"backtick identifier", "SELECT `a?b` FROM t WHERE x = ?", "SELECT `a?b` FROM t WHERE x = $1"},
		{"line comment", "-- why?\nSELECT ?", "-- why?\nSELECT $1"},
		{"block comment", "/* ? */ SELECT ?, ?", "/* ? */ SELECT $1, $2"},
		{"dollar quoted", "SELECT $$ ? $$, ?", "SELECT $$ ? $$, $1"},
		{"tagged dollar quoted", "SELECT $fn$ a?b $fn$, ?", "SELECT $fn$ a?b $fn$, $1"},
		{"cast", "SELECT ?::int", "SELECT $1::int"},
		{"escape string", `SELECT E'it\'s ?', ?`, `SELECT E'it\'s ?', $1`},
		{"escape string lowercase", `SELECT e'a\\', ?`, `SELECT e'a\\', $1`},
		{"escape string doubled quote", `SELECT E'x''?', ?`, `SELECT E'x''?', $1`},
		{"identifier ending in e", "SELECT name FROM t WHERE type = ? AND note='?'", "SELECT name FROM t WHERE type = $1 AND note='?'"},
		{"unterminated literal", "SELECT ?, 'abc?", "SELECT $1, 'abc?"},
		{"many", "VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rebind(tt.query); got != tt.want {
				t.Errorf("Rebind(%q)\n got  %q\n want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestCountUsersQuery(t *testing.T) {
	q, args := countUsersQuery(model.UserFilter{})
	if q != "SELECT COUNT(*) FROM users" || len(args) != 0 {
		t.Errorf("unfiltered: got %q %v", q, args)
	}

	q, args = countUsersQuery(model.UserFilter{Status: "active", CreatedToday: true})
	want := "SELECT COUNT(*) FROM users WHERE status = ? AND DATE(created_at) = CURRENT_DATE"
	if q != want {
		t.Errorf("got %q, want %q", q, want)
	}
	if len(args) != 1 || args[0] != "active" {
		t.Errorf("expected args [active], got %v", args)
	}
	if got := Rebind(q); got != "SELECT COUNT(*) FROM users WHERE status = $1 AND DATE(created_at) = CURRENT_DATE" {
		t.Errorf("rebound: got %q", got)
	}
}
