package httperr

import "errors"

// BusinessError é uma regra de negócio violada pela requisição; Code vira
// o error_code da resposta 400.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Is permite errors.Is(err, ErrBusiness("invalid_slot")).
func (e BusinessError) Is(target error) bool {
	var be BusinessError
	return errors.As(target, &be) && be.Code == e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
