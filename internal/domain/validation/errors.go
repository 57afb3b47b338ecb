package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GeneralField agrupa mensagens que não pertencem a um campo específico
const GeneralField = "general"

var cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// Error representa um erro de validação com mensagens por campo
type Error struct {
	Fields map[string][]string `json:"errors"`
}

// NewError cria um erro de validação vazio
func NewError() *Error {
	return &Error{Fields: make(map[string][]string)}
}

// FieldError cria um erro de validação com uma única mensagem
func FieldError(field, message string) *Error {
	return NewError().Add(field, message)
}

// Add acrescenta uma mensagem ao campo informado
func (e *Error) Add(field, message string) *Error {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// HasErrors indica se alguma mensagem foi registrada
func (e *Error) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil retorna nil quando não há mensagens registradas
func (e *Error) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

// Messages retorna as mensagens de um campo
func (e *Error) Messages(field string) []string {
	return e.Fields[field]
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], ", ")))
	}
	return "erro de validação: " + strings.Join(parts, "; ")
}

// As extrai um *Error da cadeia de erros
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return cnpjPattern.MatchString(fl.Field().String())
	})
	return v
}

// Struct valida uma struct pelas tags `validate` e traduz as falhas
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return FieldError(GeneralField, "Erro de validação desconhecido")
	}

	verr := NewError()
	for _, fe := range fieldErrs {
		verr.Add(fieldName(fe), translate(fe))
	}
	return verr
}

// fieldName remove o índice de elementos de slice, como em "packageIds[0]"
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.Index(name, "["); i > 0 {
		name = name[:i]
	}
	return name
}

func translate(fe validator.FieldError) string {
	kind := fe.Kind()
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "min":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("Deve ter pelo menos %s caracteres", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("Selecione pelo menos %s item(ns)", fe.Param())
		default:
			return fmt.Sprintf("Deve ser maior ou igual a %s", fe.Param())
		}
	case "max":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("Deve ter no máximo %s caracteres", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("Selecione no máximo %s item(ns)", fe.Param())
		default:
			return fmt.Sprintf("Deve ser menor ou igual a %s", fe.Param())
		}
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s", fe.Param())
	case "uuid", "uuid4":
		return "Deve ser um UUID válido"
	case "oneof":
		return fmt.Sprintf("Deve ser um dos valores: %s", fe.Param())
	case "cnpj":
		return "CNPJ deve ter o formato XX.XXX.XXX/XXXX-XX"
	default:
		return "Valor inválido"
	}
}
