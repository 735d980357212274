package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Reportar os campos pelo nome da tag json, não pelo nome Go
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// MissingFieldsError indica campos obrigatórios ausentes no payload
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Required fields: " + strings.Join(e.Fields, ", ")
}

// EnumError indica um valor fora do conjunto permitido para o campo
type EnumError struct {
	Field   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("Invalid %s: must be one of %s", e.Field, strings.Join(e.Allowed, ", "))
}

// Payload valida um payload de requisição contra as tags `validate`.
// Campos obrigatórios ausentes têm precedência sobre erros de enum.
func Payload(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing []string
	var enumErr *EnumError

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "oneof":
			if enumErr == nil {
				enumErr = &EnumError{Field: fe.Field(), Allowed: strings.Fields(fe.Param())}
			}
		default:
			missing = append(missing, fe.Field())
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	if enumErr != nil {
		return enumErr
	}
	return err
}
