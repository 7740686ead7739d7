package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Коды ошибок, которые видит клиент.
const (
	CodeValidation   = "VALIDATION"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации и нарушений бизнес-правил.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrUnauthorized — нет сессии, она недействительна или роли не хватает прав.
func ErrUnauthorized(msg string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: msg,
		Status:  http.StatusUnauthorized,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrConflict — операция противоречит текущему состоянию (например, удаление лидера).
func ErrConflict(msg string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: msg,
		Status:  http.StatusConflict,
	}
}

// ErrInternal оборачивает сбой хранилища. Клиент видит только msg, детали уходят в лог.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// AsAppError достаёт AppError из цепочки; всё остальное превращается во внутреннюю ошибку.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal("internal error", err)
}

// fromTx разбирает ошибку RunInTransaction: доменные ошибки из замыкания
// возвращаются как есть, прочие становятся INTERNAL с сообщением msg.
func fromTx(err error, msg string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal(msg, err)
}
