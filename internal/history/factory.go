package history

import (
	"fmt"
	"strings"
)

// Backends accepted in the history.type setting.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// DefaultSQLitePath is where runs are recorded when history.dsn is empty.
const DefaultSQLitePath = "data/history.db"

// Options select the database that benchmark runs are recorded in.
type Options struct {
	Backend string // history.type; empty means sqlite
	DSN     string // database file for sqlite, connection URL for postgres
}

func (o Options) backend() (string, error) {
	switch strings.ToLower(strings.TrimSpace(o.Backend)) {
	case "", BackendSQLite, "sqlite3":
		return BackendSQLite, nil
	case BackendPostgres, "postgresql":
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("unknown history backend %q (want %s or %s)", o.Backend, BackendSQLite, BackendPostgres)
	}
}

// Open connects to the run history described by opts and prepares its schema.
func Open(opts Options) (Store, error) {
	backend, err := opts.backend()
	if err != nil {
		return nil, err
	}

	var store Store
	switch backend {
	case BackendPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres history needs history.dsn to be set")
		}
		store, err = NewPostgresStore(opts.DSN)
	default:
		path := opts.DSN
		if path == "" {
			path = DefaultSQLitePath
		}
		store, err = NewSQLiteStore(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s history: %w", backend, err)
	}
	return store, nil
}
