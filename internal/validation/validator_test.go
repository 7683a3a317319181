package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSimpleEmail(t *testing.T) {
	accepted := []string{"a@b.co", "john.doe@example.com", "A@B.CO", "x+tag@sub.domain.org"}
	for _, email := range accepted {
		require.True(t, IsSimpleEmail(email), email)
	}

	rejected := []string{"", "not-an-email", "a@b", "a@b.com ", " a@b.com", "a b@c.com", "a@@b.com", "a@b@c.com", "@b.com", "a@.com."}
	for _, email := range rejected {
		require.False(t, IsSimpleEmail(email), email)
	}
}

func TestIsSimpleEmailRejectsUnicodeSpace(t *testing.T) {
	for _, space := range []string{"\v", "\u00a0", "\u1680", "\u2003", "\u2028", "\u202f", "\u3000", "\ufeff"} {
		require.False(t, IsSimpleEmail("a"+space+"b@c.de"), "%q", space)
		require.False(t, IsSimpleEmail("ab@c"+space+".de"), "%q", space)
	}
	require.True(t, IsSimpleEmail("jos\u00e9@caf\u00e9.fr"))
}

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"required,simpleemail"`
}

func TestStructReportsTags(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(sample{Name: "n", Email: "a@b.co"}))

	errs := v.ValidationErrors(v.Struct(sample{Email: "a@b.co"}))
	require.True(t, HasTag(errs, TagRequired))
	require.False(t, HasTag(errs, TagSimpleEmail))

	errs = v.ValidationErrors(v.Struct(sample{Name: "n", Email: "a@b"}))
	require.False(t, HasTag(errs, TagRequired))
	require.True(t, HasTag(errs, TagSimpleEmail))
}

func TestValidationErrorsNil(t *testing.T) {
	v := New()
	require.Nil(t, v.ValidationErrors(nil))
}
