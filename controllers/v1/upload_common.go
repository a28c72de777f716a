package apiv1

import (
	"context"
	"mime/multipart"

	"github.com/pkg/errors"
	filestorage "store-ops-backend/lib/file-storage"
)

const (
	avatarSizeLimit = 2 * 1024 * 1024
	photoSizeLimit  = 5 * 1024 * 1024
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// checkImage validates the upload's declared content type and size and
// returns the file extension to store it under.
func checkImage(fileHeader *multipart.FileHeader, sizeLimit int64, allowWebp bool) (ext string, err error) {
	if fileHeader.Size > sizeLimit {
		return "", errors.Errorf("file %s exceeds the size limit of %d MB", fileHeader.Filename, sizeLimit/1024/1024)
	}
	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := imageExtensions[contentType]
	if !ok || (!allowWebp && ext == "webp") {
		return "", errors.Errorf("file %s has unsupported type %s", fileHeader.Filename, contentType)
	}
	return ext, nil
}

func uploadImage(ctx context.Context, fileHeader *multipart.FileHeader, key string) (fileURL string, err error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()
	return filestorage.Instance.Upload(ctx, key, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
}
