// Package database manages the PostgreSQL side of a Django deployment:
// admin connections, role and database creation, and inventory of
// existing databases.
package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/muurk/djanbee/internal/logging"
)

// Credentials describe a PostgreSQL connection.
type Credentials struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// ConnString renders a pgx-compatible connection URL. Defaults:
// localhost:5432, database "postgres".
func (c Credentials) ConnString() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	port := c.Port
	if port == 0 {
		port = 5432
	}
	db := c.Database
	if db == "" {
		db = "postgres"
	}

	var b strings.Builder
	b.WriteString("postgres://")
	b.WriteString(escapeURLPart(c.User))
	if c.Password != "" {
		b.WriteString(":")
		b.WriteString(escapeURLPart(c.Password))
	}
	fmt.Fprintf(&b, "@%s:%d/%s", host, port, db)
	return b.String()
}

// escapeURLPart percent-encodes the characters that break URL userinfo.
func escapeURLPart(s string) string {
	replacer := strings.NewReplacer(
		"%", "%25",
		":", "%3A",
		"@", "%40",
		"/", "%2F",
	)
	return replacer.Replace(s)
}

// querier is the subset of *pgx.Conn the admin operations need.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Admin performs administrative operations over one connection.
type Admin struct {
	conn  querier
	close func(context.Context) error
}

// Connect opens and pings an admin connection.
func Connect(ctx context.Context, creds Credentials) (*Admin, error) {
	conn, err := pgx.Connect(ctx, creds.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	logging.Debug("postgres admin connection established",
		zap.String("host", creds.Host),
		zap.String("user", creds.User),
	)
	return &Admin{conn: conn, close: conn.Close}, nil
}

// Close releases the connection.
func (a *Admin) Close(ctx context.Context) error {
	if a.close == nil {
		return nil
	}
	return a.close(ctx)
}

// DatabaseExists reports whether a database with the given name exists.
func (a *Admin) DatabaseExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := a.conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking database %s: %w", name, err)
	}
	return exists, nil
}

// CreateDatabase creates a database if it does not already exist.
// Returns true when a database was actually created.
func (a *Admin) CreateDatabase(ctx context.Context, name string) (bool, error) {
	exists, err := a.DatabaseExists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	// CREATE DATABASE does not take bind parameters; the identifier is
	// sanitized instead.
	sql := "CREATE DATABASE " + pgx.Identifier{name}.Sanitize()
	if _, err := a.conn.Exec(ctx, sql); err != nil {
		return false, fmt.Errorf("creating database %s: %w", name, err)
	}
	return true, nil
}

// RoleExists reports whether a role with the given name exists.
func (a *Admin) RoleExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := a.conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_roles WHERE rolname = $1)", name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking role %s: %w", name, err)
	}
	return exists, nil
}

// CreateRole creates a login role with the given password if it does
// not already exist. Returns true when a role was actually created.
func (a *Admin) CreateRole(ctx context.Context, name, password string) (bool, error) {
	exists, err := a.RoleExists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	sql := fmt.Sprintf("CREATE ROLE %s LOGIN PASSWORD %s",
		pgx.Identifier{name}.Sanitize(),
		quoteLiteral(password),
	)
	if _, err := a.conn.Exec(ctx, sql); err != nil {
		return false, fmt.Errorf("creating role %s: %w", name, err)
	}
	return true, nil
}

// GrantDatabase grants all privileges on a database to a role.
func (a *Admin) GrantDatabase(ctx context.Context, database, role string) error {
	sql := fmt.Sprintf("GRANT ALL PRIVILEGES ON DATABASE %s TO %s",
		pgx.Identifier{database}.Sanitize(),
		pgx.Identifier{role}.Sanitize(),
	)
	if _, err := a.conn.Exec(ctx, sql); err != nil {
		return fmt.Errorf("granting %s to %s: %w", database, role, err)
	}
	return nil
}

// ListDatabases returns all non-template database names, sorted.
func (a *Admin) ListDatabases(ctx context.Context) ([]string, error) {
	rows, err := a.conn.Query(ctx,
		"SELECT datname FROM pg_database WHERE datistemplate = false ORDER BY datname")
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning database name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}
	return names, nil
}

// quoteLiteral renders a string as a safely quoted SQL literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
