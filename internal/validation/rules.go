// Package validation checks request bodies against declarative per-resource
// rule sets and reports human-readable messages. It never rejects a request
// itself; handlers decide what to do with the collected messages.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind selects how a rule is evaluated.
type Kind int

const (
	// Required fails when the field is missing or blank.
	Required Kind = iota
	// Email implies Required and additionally checks email syntax.
	Email
	// Pattern checks a non-blank value against a regexp. Blank values are
	// left to a Required rule on the same field.
	Pattern
)

// Rule is one check on one body field. Label is the human-facing field name
// used in messages ("first name" for firstName).
type Rule struct {
	Field   string
	Label   string
	Kind    Kind
	Pattern *regexp.Regexp
}

var lettersOnly = regexp.MustCompile(`^[a-zA-Z]+$`)

// ruleSets is keyed by resource kind, not by body shape.
var ruleSets = map[string][]Rule{
	"user": {
		{Field: "firstName", Label: "first name", Kind: Required},
		{Field: "firstName", Label: "first name", Kind: Pattern, Pattern: lettersOnly},
		{Field: "lastName", Label: "last name", Kind: Required},
		{Field: "lastName", Label: "last name", Kind: Pattern, Pattern: lettersOnly},
		{Field: "emailAddress", Label: "email address", Kind: Email},
		{Field: "password", Label: "password", Kind: Required},
	},
	"course": {
		{Field: "title", Label: "title", Kind: Required},
		{Field: "description", Label: "description", Kind: Required},
	},
}

var validate = validator.New()

// Check runs the rule set registered for kind against the supplied fields and
// returns one message per failed rule. All rules run; nothing short-circuits.
// An unknown kind has no rules and always passes.
func Check(kind string, fields map[string]string) []string {
	var msgs []string
	for _, r := range ruleSets[kind] {
		value := strings.TrimSpace(fields[r.Field])
		switch r.Kind {
		case Required:
			if value == "" {
				msgs = append(msgs, missingValue(r.Label))
			}
		case Email:
			if value == "" {
				msgs = append(msgs, missingValue(r.Label))
			} else if validate.Var(value, "email") != nil {
				msgs = append(msgs, invalidValue(r.Label))
			}
		case Pattern:
			if value != "" && !r.Pattern.MatchString(value) {
				msgs = append(msgs, invalidValue(r.Label))
			}
		}
	}
	return msgs
}

func missingValue(label string) string {
	return fmt.Sprintf("Please provide a value for %q", label)
}

func invalidValue(label string) string {
	return fmt.Sprintf("Please provide a valid %q", label)
}
