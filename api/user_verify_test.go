package api

import (
	"net/http"
	"testing"

	"goit/contacts-api/internal/model"

	"github.com/stretchr/testify/require"
)

func verificationToken(t *testing.T, a *API, email string) string {
	t.Helper()

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", email).First(&user).Error)
	require.NotNil(t, user.VerificationToken)

	return *user.VerificationToken
}

func TestVerifyUser(t *testing.T) {
	a := newTestAPI(t)

	registerUser(t, a, "a@b.com")
	token := verificationToken(t, a, "a@b.com")

	w := doJSON(t, a, http.MethodGet, "/users/verify/"+token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Verification successful", decodeBody(t, w)["message"])

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@b.com").First(&user).Error)
	require.True(t, user.Verify)
	require.Nil(t, user.VerificationToken)

	// The token is single-use: the second exchange misses
	w = doJSON(t, a, http.MethodGet, "/users/verify/"+token, nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decodeBody(t, w)["message"])
}

func TestVerifyUnknownToken(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/users/verify/does-not-exist", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decodeBody(t, w)["message"])
}

func TestResendVerification(t *testing.T) {
	a := newTestAPI(t)

	registerUser(t, a, "a@b.com")
	before := verificationToken(t, a, "a@b.com")

	w := doJSON(t, a, http.MethodPost, "/users/verify", map[string]string{
		"email": "a@b.com",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Verification email sent", decodeBody(t, w)["message"])

	// Resend reuses the stored token, earlier emails keep working
	require.Equal(t, before, verificationToken(t, a, "a@b.com"))
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	a := newTestAPI(t)

	registerUser(t, a, "a@b.com")
	token := verificationToken(t, a, "a@b.com")

	w := doJSON(t, a, http.MethodGet, "/users/verify/"+token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodPost, "/users/verify", map[string]string{
		"email": "a@b.com",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Verification has already been passed", decodeBody(t, w)["message"])
}

func TestResendVerificationMissingEmail(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/users/verify", map[string]string{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "missing required field email", decodeBody(t, w)["message"])
}

func TestResendVerificationUnknownUser(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/users/verify", map[string]string{
		"email": "nobody@b.com",
	}, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decodeBody(t, w)["message"])
}
