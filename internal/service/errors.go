package service

import "fmt"

// ValidationError сообщает о нарушении предусловия на данных, пришедших от
// вызывающей стороны. Такие ошибки не ретраятся и всегда отдаются наружу;
// HTTP-слой превращает их в 400 Bad Request через errors.As.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
