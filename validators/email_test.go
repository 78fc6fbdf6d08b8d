package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailValidator(t *testing.T) {
	t.Parallel()

	require.NoError(t, EmailValidator("a@b.com"))
	require.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	require.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
	require.ErrorIs(t, EmailValidator("a@"+strings.Repeat("b", 260)+".com"), ErrEmailTooLong)
}

func TestPasswordValidator(t *testing.T) {
	t.Parallel()

	require.NoError(t, PasswordValidator("secret1"))
	require.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	require.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	require.ErrorIs(t, PasswordValidator(strings.Repeat("x", 73)), ErrPasswordTooLong)
}
