package utils

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Код SQLSTATE "undefined_table".
const pgUndefinedTableCode = "42P01"

// IsUndefinedTable сообщает, что запрос упал из-за отсутствующей таблицы.
// По этому признаку обработчики переключаются на виртуальную таблицу
// поверх журнала аудита.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTableCode
}
