package invoice

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a draft field name to a human-readable message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}

	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, v[f])
	}

	return "invalid invoice: " + strings.Join(parts, "; ")
}

var messages = map[string]map[string]string{
	"billedTo": {
		"required": "select a client to bill",
		"notblank": "the selected client has no name",
	},
	"issueDate": {
		"required": "date of issue is required",
	},
	"dueDate": {
		"required": "due date is required",
		"gtefield": "due date must not precede issue date",
	},
	"invoiceNumber": {
		"notblank": "invoice number is required",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Validate checks the draft against the invoice schema. It returns nil or a ValidationErrors
// holding one message per offending field.
func Validate(d Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating draft: %w", err)
	}

	out := make(ValidationErrors, len(verrs))

	for _, fe := range verrs {
		field := topLevelField(fe.Namespace())
		if _, seen := out[field]; seen {
			continue
		}

		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %q check", fe.Tag())
		}

		out[field] = msg
	}

	return out
}

// topLevelField turns "Draft.billedTo.label" into "billedTo".
func topLevelField(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) < 2 {
		return ns
	}

	return parts[1]
}
