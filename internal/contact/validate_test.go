package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() Fields {
	return Fields{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "1234567890",
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	assert.Nil(t, Validate(validFields()))
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{FieldName, MsgNameRequired},
		{FieldEmail, MsgEmailRequired},
		{FieldSubject, MsgSubjectRequired},
		{FieldMessage, MsgMessageRequired},
	}

	for _, tt := range tests {
		for _, blank := range []string{"", "   ", "\t\n"} {
			t.Run(string(tt.field), func(t *testing.T) {
				f := validFields()
				require.NoError(t, f.Set(tt.field, blank))

				errs := Validate(f)
				assert.Equal(t, Errors{tt.field: tt.want}, errs)
			})
		}
	}
}

func TestValidateEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.com", true},
		{"jane.doe@mail.example.org", true},
		{"a@b", false},
		{"ab.com", false},
		{"a @b.com", false},
		{"@b.com", false},
		{"a@.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			f := validFields()
			f.Email = tt.email

			errs := Validate(f)
			if tt.ok {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, Errors{FieldEmail: MsgEmailInvalid}, errs)
		})
	}
}

func TestValidateMessageLength(t *testing.T) {
	f := validFields()

	f.Message = "short"
	assert.Equal(t, Errors{FieldMessage: MsgMessageTooShort}, Validate(f))

	f.Message = "  123456789  "
	assert.Equal(t, Errors{FieldMessage: MsgMessageTooShort}, Validate(f))

	f.Message = "  1234567890  "
	assert.Nil(t, Validate(f))

	// Counted in characters, not bytes.
	f.Message = "héllo wörl"
	assert.Nil(t, Validate(f))
	f.Message = "héllo wör"
	assert.Equal(t, Errors{FieldMessage: MsgMessageTooShort}, Validate(f))
}

func TestValidateReportsEveryFailure(t *testing.T) {
	errs := Validate(Fields{Email: "nope", Message: "hey"})
	assert.Equal(t, Errors{
		FieldName:    MsgNameRequired,
		FieldEmail:   MsgEmailInvalid,
		FieldSubject: MsgSubjectRequired,
		FieldMessage: MsgMessageTooShort,
	}, errs)
}

func TestFieldsGetSet(t *testing.T) {
	var f Fields
	for _, field := range AllFields {
		require.NoError(t, f.Set(field, string(field)+"-value"))
	}
	for _, field := range AllFields {
		v, err := f.Get(field)
		require.NoError(t, err)
		assert.Equal(t, string(field)+"-value", v)
	}

	require.ErrorIs(t, f.Set("phone", "555"), ErrUnknownField)
	_, err := f.Get("phone")
	require.ErrorIs(t, err, ErrUnknownField)
}
