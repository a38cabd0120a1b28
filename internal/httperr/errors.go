package httperr

import (
	"errors"
	"fmt"
)

// ===============================
// Domain errors
// ===============================

// InvalidRangeError indica configuração inválida do gerador de horários.
type InvalidRangeError struct {
	Reason string
}

func (e InvalidRangeError) Error() string {
	return "invalid range: " + e.Reason
}

func InvalidRange(reason string) error {
	return InvalidRangeError{Reason: reason}
}

// DataAccessError envolve qualquer falha da camada de persistência.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed (%s): %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// DataAccess embrulha err uma única vez; erros tipados passam direto.
func DataAccess(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		de *DataAccessError
		nf NotFoundError
		db DuplicateBookingError
		be BusinessError
		ir InvalidRangeError
	)
	if errors.As(err, &de) || errors.As(err, &nf) || errors.As(err, &db) ||
		errors.As(err, &be) || errors.As(err, &ir) {
		return err
	}

	return &DataAccessError{Op: op, Err: err}
}

type DuplicateBookingError struct {
	BarberID uint
	Date     string
	TimeSlot string
}

func (e DuplicateBookingError) Error() string {
	return fmt.Sprintf(
		"barber %d already booked on %s at %s",
		e.BarberID, e.Date, e.TimeSlot,
	)
}

type NotFoundError struct {
	Entity string
	ID     any
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func NotFound(entity string, id any) error {
	return NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsDuplicateBooking(err error) bool {
	var db DuplicateBookingError
	return errors.As(err, &db)
}

func IsDataAccess(err error) bool {
	var de *DataAccessError
	return errors.As(err, &de)
}
