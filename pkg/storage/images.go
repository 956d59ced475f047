package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/validation"
)

const (
	PublicPrefix = "/images/"
	sniffLength  = 512
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store persists image objects under keys of the form "<category>/<file>".
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
}

type Images struct {
	store    Store
	maxBytes int64
	logger   *zap.Logger
}

func NewImages(store Store, maxBytes int64, logger *zap.Logger) *Images {
	return &Images{store: store, maxBytes: maxBytes, logger: logger}
}

// MaxBytes is the largest accepted image. Zero means no limit.
func (i *Images) MaxBytes() int64 {
	return i.maxBytes
}

func (i *Images) TooLarge() error {
	return &validation.Error{
		Kind:    validation.ErrOutOfRange,
		Field:   "file",
		Message: fmt.Sprintf("ファイルサイズは %s 以下にしてください", humanize.IBytes(uint64(i.maxBytes))),
	}
}

// Upload stores an image under a fresh name and returns its public path.
func (i *Images) Upload(ctx context.Context, category string, header *multipart.FileHeader) (string, error) {
	if !validation.ImageCategories.Contains(category) {
		return "", validation.InvalidDomainValue("category", validation.ImageCategories)
	}

	if header == nil {
		return "", validation.RequiredFieldMissing("file")
	}

	if i.maxBytes > 0 && header.Size > i.maxBytes {
		return "", i.TooLarge()
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType, body, err := detectContentType(header.Header.Get("Content-Type"), file)
	if err != nil {
		return "", err
	}

	ext, ok := extensions[contentType]
	if !ok {
		return "", validation.InvalidValue("file", "対応していない画像形式です (jpg, png, webp, gif)")
	}

	key := category + "/" + uuid.New().String() + ext

	if err := i.store.Put(ctx, key, body, header.Size, contentType); err != nil {
		i.logger.Error("error storing image", zap.String("key", key), zap.Error(err))

		return "", err
	}

	return PublicPrefix + key, nil
}

// Delete removes a previously uploaded image. Removing an image that no
// longer exists succeeds.
func (i *Images) Delete(ctx context.Context, path string) error {
	key, err := KeyFromPath(path)
	if err != nil {
		return err
	}

	if err := i.store.Remove(ctx, key); err != nil {
		i.logger.Error("error removing image", zap.String("key", key), zap.Error(err))

		return err
	}

	return nil
}

// KeyFromPath turns a public image path into a store key. Only keys shaped
// like the ones Upload hands out, "<category>/<file>", are accepted.
func KeyFromPath(path string) (string, error) {
	invalid := validation.InvalidValue("path", "画像のパスが不正です")

	key, found := strings.CutPrefix(path, PublicPrefix)
	if !found || strings.Contains(key, `\`) {
		return "", invalid
	}

	category, file, found := strings.Cut(key, "/")
	if !found || !validation.ImageCategories.Contains(category) {
		return "", invalid
	}

	if file == "" || file == "." || file == ".." || strings.Contains(file, "/") {
		return "", invalid
	}

	return key, nil
}

// detectContentType trusts the declared type of the part and sniffs the
// leading bytes when none is given.
func detectContentType(declared string, file io.Reader) (string, io.Reader, error) {
	if declared != "" && declared != "application/octet-stream" {
		mediaType, _, err := mime.ParseMediaType(declared)
		if err != nil {
			return "", nil, validation.InvalidValue("file", "Content-Type が不正です")
		}

		return mediaType, file, nil
	}

	head := make([]byte, sniffLength)

	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}

	head = head[:n]

	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), file), nil
}
