package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o que os repositórios enxergam do banco: tanto *sql.DB
// quanto *sql.Tx satisfazem a interface, então a mesma consulta roda
// dentro ou fora de transação
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
