package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida (thread-safe, cachea metadatos de structs).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate`. Devuelve nil si es válido.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors devuelve los campos inválidos en formato "campo: regla" para
// incluir en el mensaje de la respuesta 400.
func FieldErrors(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+": "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
