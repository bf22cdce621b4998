// Package validation holds the input rules applied to users and contacts
// before anything is written to the store.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// PasswordMinLength is counted in characters, not bytes.
	PasswordMinLength = 8

	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	passwordMessage = "password must be at least 8 characters long and contain an uppercase letter, a lowercase letter, a digit and a punctuation character"
	phoneMessage    = "phone number must be in the format '+38(099)123-45-78'"
	emailMessage    = "must be a valid email address"
)

var phonePattern = regexp.MustCompile(`^\+38\(0\d{2}\)\d{3}-\d{2}-\d{2}$`)

// digitNumerals are the non-decimal characters that still carry a digit value,
// such as superscripts and circled digits.
var digitNumerals = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

var validate = New()

// Error is a rejected input field.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects every rejected field of one request.
type Errors []*Error

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fieldErr := range e {
		parts = append(parts, fieldErr.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidatePassword checks length and that every required character class is present.
func ValidatePassword(value string) (string, error) {
	var hasUpper, hasLower, hasDigit, hasPunct bool

	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r), unicode.Is(digitNumerals, r):
			hasDigit = true
		case strings.ContainsRune(punctuation, r):
			hasPunct = true
		}

		if hasUpper && hasLower && hasDigit && hasPunct {
			break
		}
	}

	if utf8.RuneCountInString(value) < PasswordMinLength || !(hasUpper && hasLower && hasDigit && hasPunct) {
		return "", &Error{Field: "password", Message: passwordMessage}
	}

	return value, nil
}

// ValidatePhone accepts nil and the empty string as "no phone".
func ValidatePhone(value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	if !phonePattern.MatchString(*value) {
		return nil, &Error{Field: "phone_number", Message: phoneMessage}
	}

	return value, nil
}

// ValidateEmail accepts nil; anything else must be a local@domain address.
func ValidateEmail(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	if err := validate.Var(*value, "required,email"); err != nil {
		return nil, &Error{Field: "email", Message: emailMessage}
	}

	return value, nil
}

// New returns a validator with the "password" and "phone" tags registered and
// field names reported by their json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		_, err := ValidatePassword(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		_, err := ValidatePhone(&phone)
		return err == nil
	})

	return v
}

// FromValidator converts validator.ValidationErrors into Errors. Any other
// error is returned unchanged.
func FromValidator(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	result := make(Errors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		result = append(result, &Error{Field: fe.Field(), Message: message(fe)})
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "password":
		return passwordMessage
	case "phone":
		return phoneMessage
	case "email":
		return emailMessage
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
