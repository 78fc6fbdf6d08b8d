package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"goit/contacts-api/internal/storage"

	"github.com/disintegration/imaging"
)

// avatarSize is the fixed square resolution every avatar is resized to.
const avatarSize = 250

// ErrUnsupportedImage is returned when the upload isn't a decodable image
// of a known format. Handlers turn it into a 400.
var ErrUnsupportedImage = errors.New("unsupported or corrupted image file")

// AvatarService turns a raw upload into a stored, resized avatar.
type AvatarService struct {
	store storage.Storage
}

func NewAvatarService(store storage.Storage) *AvatarService {
	return &AvatarService{store: store}
}

// Process decodes the uploaded file, resizes it to a fixed square and
// hands it to the storage backend under a name derived from the user ID
// and the original filename. The multipart temp file is managed by
// net/http and released when the request ends, nothing is left staged.
func (s *AvatarService) Process(ctx context.Context, fh *multipart.FileHeader, userID string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", ErrUnsupportedImage
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file, %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return "", ErrUnsupportedImage
	}

	resized := imaging.Resize(img, avatarSize, avatarSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return "", fmt.Errorf("failed to encode avatar, %w", err)
	}

	name := fmt.Sprintf("%s_%s", userID, sanitizeFilename(fh.Filename))

	url, err := s.store.Save(ctx, name, &buf, int64(buf.Len()), contentTypeFor(format))
	if err != nil {
		return "", fmt.Errorf("failed to store avatar, %w", err)
	}

	return url, nil
}

// sanitizeFilename strips any path components and characters that have no
// business in a URL path segment.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}

func contentTypeFor(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	case imaging.BMP:
		return "image/bmp"
	case imaging.TIFF:
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
