package validators

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
)

// Tags backed by the domain rules, so request binding and the use cases
// never disagree. Swap request bodies are not tag-validated: their rule set
// runs in the use case and reports every violated field together.
var tags = map[string]validator.Func{
	"swap_status": func(fl validator.FieldLevel) bool {
		return swaprequest.Status(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
	},
	"weekday": func(fl validator.FieldLevel) bool {
		return settings.Weekday(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
	},
	"user_role": func(fl validator.FieldLevel) bool {
		return user.Role(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
	},
	"login_identifier": func(fl validator.FieldLevel) bool {
		return user.ValidLogin(user.NormalizeLogin(fl.Field().String()))
	},
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom tags on gin's validator. Safe to call more
// than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected gin validator engine")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// FromBindError turns a ShouldBind error into field issues. Malformed
// bodies are reported on the "body" field.
func FromBindError(err error) *httperr.ValidationError {
	ve := httperr.NewValidation()

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("body", "Corpo da requisição inválido.")
		return ve
	}

	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), message(fe))
	}
	return ve
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "min":
		return "Valor abaixo do mínimo (" + fe.Param() + ")."
	case "max":
		return "Valor acima do máximo (" + fe.Param() + ")."
	case "swap_status":
		return "Status inválido."
	case "weekday":
		return "Dia da semana inválido."
	case "user_role":
		return "Perfil inválido."
	case "login_identifier":
		return "Login deve ter de 3 a 50 caracteres (letras, números, ponto, hífen ou sublinhado)."
	default:
		return "Valor inválido."
	}
}
