// Package validation checks admin form payloads and reports pt-BR messages keyed by JSON field name.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field path to its message.
type FieldErrors map[string]string

// Error implements error so a failed form can travel through service layers.
func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	return "invalid form: " + strings.Join(keys, ", ")
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates a form and returns FieldErrors when any rule fails.
func Struct(form any) error {
	err := instance().Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return FieldErrors{"_": "Formulário inválido."}
	}
	out := FieldErrors{}
	for _, fe := range ve {
		out[fieldKey(fe.Namespace())] = messageForTag(fe.Tag(), fe.Param())
	}
	return out
}

// As extracts FieldErrors from an error chain.
func As(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// fieldKey drops the root struct name: "BannerForm.banners[0].title" -> "banners[0].title".
func fieldKey(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "Este campo é obrigatório."
	case "email":
		return "Informe um e-mail válido."
	case "url":
		return "Informe uma URL válida."
	case "min":
		return "Deve ter no mínimo " + param + "."
	case "max":
		return "Deve ter no máximo " + param + "."
	case "gt":
		return "Deve ser maior que " + param + "."
	case "gte":
		return "Deve ser maior ou igual a " + param + "."
	case "lte":
		return "Deve ser menor ou igual a " + param + "."
	case "oneof":
		return "Valor deve ser um de: " + param + "."
	case "len":
		return "Deve ter exatamente " + param + " caracteres."
	case "numeric":
		return "Use apenas números."
	default:
		return "Valor inválido."
	}
}
