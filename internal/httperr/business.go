package httperr

import "errors"

// BusinessError is a rule violation the caller can fix; handlers answer 400.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	got, ok := BusinessCode(err)
	return ok && got == code
}

// BusinessCode unwraps err to its business code.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
