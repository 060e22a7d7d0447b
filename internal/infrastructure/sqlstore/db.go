package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Options selects the backing store. Path is used by SQLite, DSN by the
// network drivers.
type Options struct {
	Driver string
	DSN    string
	Path   string
}

type DB struct {
	*sqlx.DB
	dialect dialect

	// now stamps created_at columns; replaced in tests.
	now func() time.Time
}

// New opens an SQLite database at dbPath (":memory:" for tests) and applies
// all migrations.
func New(dbPath string) (*DB, error) {
	db, err := Open(context.Background(), Options{Driver: DriverSQLite, Path: dbPath})
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Open connects to the configured store without migrating it.
func Open(ctx context.Context, opts Options) (*DB, error) {
	d, err := dialectFor(opts.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := buildDSN(d, opts)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if d.name == DriverSQLite {
		// Every connection to ":memory:" is a separate database; a file
		// database gains nothing from more than one writer either.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	} else {
		conn.SetConnMaxLifetime(30 * time.Minute)
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", classify(err))
	}

	if d.name == DriverSQLite {
		// Enable WAL mode for better concurrency (allows concurrent reads/writes)
		if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return &DB{DB: conn, dialect: d, now: defaultNow}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// Driver reports which store this DB talks to.
func (db *DB) Driver() string {
	return db.dialect.name
}

// Ping reports whether the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// SetClock replaces the timestamp source used for created_at.
func (db *DB) SetClock(now func() time.Time) {
	db.now = func() time.Time { return truncate(now()) }
}

// insert runs an INSERT written with ? placeholders and returns the new id.
func (db *DB) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	query = db.Rebind(query)

	if db.dialect.returning {
		var id int64
		if err := db.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// Timestamps are UTC and truncated to microseconds, the finest resolution
// PostgreSQL and MySQL DATETIME(6) keep, so a created row reads back equal.
func defaultNow() time.Time {
	return truncate(time.Now())
}

func truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func buildDSN(d dialect, opts Options) (string, error) {
	switch d.name {
	case DriverSQLite:
		path := opts.Path
		if path == "" {
			path = opts.DSN
		}
		if path == "" {
			return "", fmt.Errorf("sqlite requires a database path")
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		// Set busy timeout to handle concurrent access from the CLI and the server
		return path + sep + "_pragma=busy_timeout(5000)&_time_format=sqlite", nil

	case DriverMySQL:
		cfg, err := mysql.ParseDSN(opts.DSN)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		return cfg.FormatDSN(), nil

	default:
		if opts.DSN == "" {
			return "", fmt.Errorf("%s requires a dsn", d.name)
		}
		return opts.DSN, nil
	}
}
