package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError descreve um campo rejeitado na validação da requisição
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors agrega os campos inválidos de uma requisição
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validação falhou: " + strings.Join(parts, "; ")
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Nomes de campo iguais aos do JSON
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// decimal é validado como número (gte, lte...)
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			switch v := field.Interface().(type) {
			case decimal.Decimal:
				f, _ := v.Float64()
				return f
			case decimal.NullDecimal:
				if !v.Valid {
					return nil
				}
				f, _ := v.Decimal.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{}, decimal.NullDecimal{})
	})

	return validate
}

// Struct valida a struct e retorna Errors com os campos inválidos
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	result := make(Errors, 0, len(validationErrors))
	for _, e := range validationErrors {
		result = append(result, FieldError{
			Field:   e.Field(),
			Message: message(e),
		})
	}
	return result
}

// Var valida um valor isolado com as tags informadas
func Var(value any, tag string) error {
	return instance().Var(value, tag)
}

// Field cria um erro de validação para um único campo
func Field(field, msg string) error {
	return Errors{{Field: field, Message: msg}}
}

func message(e validator.FieldError) string {
	isString := e.Kind() == reflect.String

	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		if isString {
			return "deve ter pelo menos " + e.Param() + " caracteres"
		}
		return "deve ser no mínimo " + e.Param()
	case "max":
		if isString {
			return "deve ter no máximo " + e.Param() + " caracteres"
		}
		return "deve ser no máximo " + e.Param()
	case "len":
		return "deve ter exatamente " + e.Param() + " caracteres"
	case "uuid":
		return "UUID inválido"
	case "oneof":
		return "deve ser um de: " + e.Param()
	case "gte":
		return "deve ser maior ou igual a " + e.Param()
	case "lte":
		return "deve ser menor ou igual a " + e.Param()
	case "gtefield":
		return "deve ser maior ou igual a " + e.Param()
	case "url":
		return "URL inválida"
	case "alpha":
		return "deve conter apenas letras"
	case "dive":
		return "itens inválidos"
	default:
		return "valor inválido"
	}
}
