package employee

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateDraft checks that every required field is filled and every choice
// group holds an allowed value.
func ValidateDraft(d Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Issues: make([]FieldIssue, 0, len(verrs))}
	seen := map[string]bool{}
	for _, fe := range verrs {
		field := baseField(fe.Field())
		if seen[field] {
			continue
		}
		seen[field] = true
		out.Issues = append(out.Issues, FieldIssue{
			Field:  field,
			Label:  FieldLabel(field),
			Reason: issueReason(fe),
		})
	}
	return out
}

func issueReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "number":
		return "must contain digits only"
	case "max":
		return "accepts a single choice"
	case "oneof":
		if value, ok := fe.Value().(string); ok && (value == "" || value == MaritalSelect) {
			return "is required"
		}
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

func baseField(name string) string {
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		return name[:idx]
	}
	return name
}

// Blank reports whether s holds nothing but white space, the same rule the
// notblank check applies to name fields.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FieldLabel turns a field name such as "phoneNumber" into "Phone Number".
func FieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English).String(b.String())
}

// OptionLabel is the display text for a choice value, e.g. "female" becomes
// "Female".
func OptionLabel(value string) string {
	return cases.Title(language.English).String(value)
}
