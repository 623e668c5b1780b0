package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/bizmetrics-api/internal/config"
	_ "modernc.org/sqlite"
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Connection struct {
	*sql.DB
	Driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite aceita um único escritor por vez
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao testar conexão %s: %w", cfg.Driver, err)
	}

	return &Connection{DB: db, Driver: cfg.Driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Placeholder retorna o formato de parâmetros do driver para o squirrel
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	return PlaceholderFor(c.Driver)
}

func PlaceholderFor(driver string) squirrel.PlaceholderFormat {
	if driver == config.DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}
