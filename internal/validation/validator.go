package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	TagRequired    = "required"
	TagSimpleEmail = "simpleemail"
)

// emailSpace is every whitespace rune: RE2's \s is ASCII-only, so vertical
// tab, Unicode separators (NBSP, U+2000..U+200A, U+3000, ...) and the BOM are
// listed explicitly.
const emailSpace = `\s\v\p{Z}\x{FEFF}`

// simpleEmailRegex accepts local@domain.tld where no part contains whitespace
// or '@'. It is deliberately looser than RFC 5322.
var simpleEmailRegex = regexp.MustCompile(`^[^` + emailSpace + `@]+@[^` + emailSpace + `@]+\.[^` + emailSpace + `@]+$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterValidation(TagSimpleEmail, func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return IsSimpleEmail(value)
	})

	return &Validator{v: v}
}

func IsSimpleEmail(value string) bool {
	return simpleEmailRegex.MatchString(value)
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// HasTag reports whether any failed field failed on tag.
func HasTag(errs validator.ValidationErrors, tag string) bool {
	for _, fe := range errs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
