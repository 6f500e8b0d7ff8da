package validator

import (
	"daily/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	bodyField = "body"
)

var validate *val.Validate

// Error is a rejected request payload. It unwraps to a 400 Failure and keeps
// the per-field messages for the problem response.
type Error struct {
	Fields map[string][]string
	cause  error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(msg string, fieldErrors map[string][]string) *Error {
	return &Error{
		Fields: fieldErrors,
		cause:  failure.BadRequestFromString(msg),
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an *Error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		msg := fmt.Sprintf("failed to decode request body: %v", err)

		return newError(msg, map[string][]string{bodyField: {msg}})
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return newError(message(err), fields(err))
	}

	return nil
}

// FieldError rejects a single request field, such as a malformed query parameter.
func FieldError(field string, err error) error {
	return newError(err.Error(), map[string][]string{field: {err.Error()}})
}

// QueryInt reads an integer query parameter. A missing parameter is 0; a
// malformed one is rejected as invalid under the parameter's name.
func QueryInt(r *http.Request, name string, invalid error) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, FieldError(name, invalid)
	}

	return value, nil
}
