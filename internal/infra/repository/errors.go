package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// SQLSTATE unique_violation
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// lookupErr separa "não encontrado" de falha de acesso.
func lookupErr(op, entity string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFound(entity, id)
	}
	return httperr.DataAccess(op, err)
}
