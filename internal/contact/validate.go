// Package contact implements the contact form: field validation, the submit
// lifecycle, and the transports a submission is handed to.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// AllFields lists the form inputs in display order.
var AllFields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// MinMessageLength is the shortest accepted message, counted after trimming.
const MinMessageLength = 10

// Validation messages.
const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgSubjectRequired = "Subject is required"
	MsgMessageRequired = "Message is required"
	MsgMessageTooShort = "Message must be at least 10 characters"
)

// ErrUnknownField is returned when a field name is not one of AllFields.
var ErrUnknownField = errors.New("unknown form field")

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Fields are the values typed into the form.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of f.
func (f Fields) Get(field Field) (string, error) {
	switch field {
	case FieldName:
		return f.Name, nil
	case FieldEmail:
		return f.Email, nil
	case FieldSubject:
		return f.Subject, nil
	case FieldMessage:
		return f.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, string(field))
}

// Set assigns value to field.
func (f *Fields) Set(field Field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return nil
}

// Errors maps a failing field to its message. A field that passes is absent.
type Errors map[Field]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

func (e Errors) clone() Errors {
	if len(e) == 0 {
		return nil
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validate runs every rule against f and returns the failures.
func Validate(f Fields) Errors {
	errs := Errors{}

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(f.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(f.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(f.Subject) == "" {
		errs[FieldSubject] = MsgSubjectRequired
	}

	msg := strings.TrimSpace(f.Message)
	if msg == "" {
		errs[FieldMessage] = MsgMessageRequired
	}
	// Evaluated last: a short message reports the length rule.
	if msg != "" && utf8.RuneCountInString(msg) < MinMessageLength {
		errs[FieldMessage] = MsgMessageTooShort
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
