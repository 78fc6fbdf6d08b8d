package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateContactValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   CreateContactInput
		wantErr string
	}{
		{
			name:  "valid",
			input: CreateContactInput{Name: "Alice", Email: "alice@example.com", Phone: "123"},
		},
		{
			name:    "missing name",
			input:   CreateContactInput{Email: "alice@example.com", Phone: "123"},
			wantErr: `"name" is required`,
		},
		{
			name:    "missing phone",
			input:   CreateContactInput{Name: "Alice", Email: "alice@example.com"},
			wantErr: `"phone" is required`,
		},
		{
			name:    "bad email",
			input:   CreateContactInput{Name: "Alice", Email: "nope", Phone: "123"},
			wantErr: `"email" must be a valid email`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ContactValidator(&tc.input)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestUpdateContactValidator(t *testing.T) {
	t.Parallel()

	// Absent fields are not validated at all
	require.NoError(t, ContactValidator(&UpdateContactInput{Phone: strPtr("999")}))

	err := ContactValidator(&UpdateContactInput{Email: strPtr("nope")})
	require.EqualError(t, err, `"email" must be a valid email`)
}

func TestUpdateContactEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, (&UpdateContactInput{}).Empty())
	require.False(t, (&UpdateContactInput{Name: strPtr("x")}).Empty())

	fav := false
	require.False(t, (&UpdateContactInput{Favorite: &fav}).Empty())
}
