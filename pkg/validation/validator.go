package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLen is enforced at registration only; login never re-checks
// the length of what the caller typed.
const MinPasswordLen = 6

var (
	// Same shape the legacy backend accepted: non-whitespace around '@'
	// and at least one '.' in the domain part.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Agent codes are exactly five decimal digits.
	agentCodeRe = regexp.MustCompile(`^[0-9]{5}$`)
)

// IsValidEmail reports whether v looks like local@domain.tld.
func IsValidEmail(v string) bool {
	return emailRe.MatchString(strings.ToLower(v))
}

// IsValidAgentCode reports whether v is exactly 5 decimal digits.
func IsValidAgentCode(v string) bool {
	return agentCodeRe.MatchString(v)
}

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for this API's semantics.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=6") // password minimum length
		v.RegisterAlias("usertype", "oneof=standard agent")
	}
}

// ToDetails converts binding errors into a map[field]message suitable for
// the error body's details field.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "numeric":
		return "must be numeric"
	case "len":
		return "must be exactly " + param + " characters long"
	case "min", "pwd":
		if tag == "pwd" {
			param = "6"
		}
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "oneof", "usertype":
		if tag == "usertype" {
			param = "standard agent"
		}
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "eqfield":
		return "must be equal to " + param + " field"
	default:
		if param != "" {
			return "validation failed for '" + tag + "' with parameter '" + param + "'"
		}
		return "validation failed for '" + tag + "'"
	}
}
