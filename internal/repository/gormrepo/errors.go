package gormrepo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// pgForeignKeyViolation - код ошибки PostgreSQL foreign_key_violation
const pgForeignKeyViolation = "23503"

// isForeignKeyViolation проверяет, нарушено ли ограничение внешнего ключа (postgres или sqlite)
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}

// escapeLike экранирует спецсимволы шаблона LIKE, чтобы поиск шел по буквальной подстроке
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
