package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BrewLog/pkg/storage"
	"droscher.com/BrewLog/pkg/validation"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type ImagesTestSuite struct {
	suite.Suite
	dir    string
	images *storage.Images
}

func TestImagesTestSuite(t *testing.T) {
	suite.Run(t, new(ImagesTestSuite))
}

func (suite *ImagesTestSuite) SetupTest() {
	suite.dir = filepath.Join(suite.T().TempDir(), "images")

	store, err := storage.NewLocalStore(suite.dir)
	suite.Require().NoError(err)

	suite.images = storage.NewImages(store, 1024, zaptest.NewLogger(suite.T()))
}

// fileHeader builds an uploaded file the way a multipart request delivers it.
func (suite *ImagesTestSuite) fileHeader(contentType string, content []byte) *multipart.FileHeader {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo"`)

	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	suite.Require().NoError(err)

	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	suite.Require().NoError(err)

	return form.File["file"][0]
}

func (suite *ImagesTestSuite) TestUpload_StoresDeclaredType() {
	path, err := suite.images.Upload(context.Background(), "beans", suite.fileHeader("image/jpeg", []byte("jpeg-bytes")))

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(path, "/images/beans/"))
	suite.True(strings.HasSuffix(path, ".jpg"))

	stored, err := os.ReadFile(filepath.Join(suite.dir, strings.TrimPrefix(path, "/images/")))
	suite.Require().NoError(err)
	suite.Equal("jpeg-bytes", string(stored))
}

func (suite *ImagesTestSuite) TestUpload_SniffsMissingType() {
	path, err := suite.images.Upload(context.Background(), "tastings", suite.fileHeader("", pngHeader))

	suite.Require().NoError(err)
	suite.True(strings.HasSuffix(path, ".png"))

	stored, err := os.ReadFile(filepath.Join(suite.dir, strings.TrimPrefix(path, "/images/")))
	suite.Require().NoError(err)
	suite.Equal(pngHeader, stored)
}

func (suite *ImagesTestSuite) TestUpload_UniqueNames() {
	first, err := suite.images.Upload(context.Background(), "shops", suite.fileHeader("image/gif", []byte("a")))
	suite.Require().NoError(err)

	second, err := suite.images.Upload(context.Background(), "shops", suite.fileHeader("image/gif", []byte("b")))
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
}

func (suite *ImagesTestSuite) TestUpload_Rejects() {
	_, err := suite.images.Upload(context.Background(), "cats", suite.fileHeader("image/png", pngHeader))
	suite.Require().ErrorIs(err, validation.ErrInvalidValue)
	suite.ErrorContains(err, "beans, drippers, filters, tastings, shops")

	_, err = suite.images.Upload(context.Background(), "beans", suite.fileHeader("text/plain", []byte("hello")))
	suite.Require().ErrorIs(err, validation.ErrInvalidValue)

	_, err = suite.images.Upload(context.Background(), "beans", nil)
	suite.Require().ErrorIs(err, validation.ErrRequiredFieldMissing)

	_, err = suite.images.Upload(context.Background(), "beans", suite.fileHeader("image/png", bytes.Repeat([]byte{1}, 2048)))
	suite.Require().ErrorIs(err, validation.ErrOutOfRange)
	suite.ErrorContains(err, "1.0 KiB")
}

func (suite *ImagesTestSuite) TestDelete_RemovesFile() {
	path, err := suite.images.Upload(context.Background(), "drippers", suite.fileHeader("image/webp", []byte("webp")))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.images.Delete(context.Background(), path))

	_, err = os.Stat(filepath.Join(suite.dir, strings.TrimPrefix(path, "/images/")))
	suite.True(os.IsNotExist(err))

	suite.Require().NoError(suite.images.Delete(context.Background(), path))
}

func (suite *ImagesTestSuite) TestDelete_RejectsTraversal() {
	for _, path := range []string{
		"/images/../configs/config.toml",
		"/images/beans/../../secret",
		"/uploads/beans/a.png",
		`/images/beans\a.png`,
		"/images/",
		"images/beans/a.png",
		"",
		"/images/beans",
		"/images/beans/",
		"/images/beans/sub/a.png",
		"/images/beans/..",
		"/images/cats/a.png",
		"/images/not-a-category.txt",
	} {
		err := suite.images.Delete(context.Background(), path)
		suite.Require().ErrorIs(err, validation.ErrInvalidValue, path)
	}
}

func (suite *ImagesTestSuite) TestDelete_LeavesCategoryDirectory() {
	path, err := suite.images.Upload(context.Background(), "beans", suite.fileHeader("image/png", pngHeader))
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.images.Delete(context.Background(), "/images/beans"), validation.ErrInvalidValue)

	_, err = os.Stat(filepath.Join(suite.dir, strings.TrimPrefix(path, "/images/")))
	suite.Require().NoError(err)
}
