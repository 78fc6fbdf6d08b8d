package api

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"goit/contacts-api/internal/model"

	"github.com/stretchr/testify/require"
)

func pngUpload(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := range 8 {
		for y := range 8 {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), A: 255})
		}
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	require.NoError(t, png.Encode(fw, img))
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func TestUpdateAvatar(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "a@b.com")

	body, contentType := pngUpload(t, "avatar", "me.png")

	req := httptest.NewRequest(http.MethodPatch, "/users/avatars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := serve(a, req)
	require.Equal(t, http.StatusOK, w.Code)

	url, ok := decodeBody(t, w)["avatarURL"].(string)
	require.True(t, ok)
	require.Contains(t, url, "/avatars/")
	require.Contains(t, url, "me.png")

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@b.com").First(&user).Error)
	require.Equal(t, url, user.AvatarURL)
}

func TestUpdateAvatarWritesResizedFile(t *testing.T) {
	a, dir := newTestAPIWithAvatarDir(t)

	token := registerUser(t, a, "a@b.com")

	body, contentType := pngUpload(t, "avatar", "pic.png")

	req := httptest.NewRequest(http.MethodPatch, "/users/avatars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := serve(a, req)
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "exactly the final avatar, no staging leftovers")

	f, err := os.Open(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 250, cfg.Width)
	require.Equal(t, 250, cfg.Height)
}

func TestUpdateAvatarNoFile(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "a@b.com")

	body, contentType := pngUpload(t, "wrong-field", "me.png")

	req := httptest.NewRequest(http.MethodPatch, "/users/avatars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := serve(a, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No file uploaded", decodeBody(t, w)["message"])
}

func TestUpdateAvatarRejectsNonImage(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "a@b.com")

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("avatar", "notes.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("definitely not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/users/avatars", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := serve(a, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAvatarRequiresAuth(t *testing.T) {
	a := newTestAPI(t)

	body, contentType := pngUpload(t, "avatar", "me.png")

	req := httptest.NewRequest(http.MethodPatch, "/users/avatars", body)
	req.Header.Set("Content-Type", contentType)

	w := serve(a, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
