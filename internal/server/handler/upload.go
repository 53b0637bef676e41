package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/shouni/codevision-kit/pkg/domain"
)

// アップロードを受け付ける画像形式（png / jpg / jpeg / webp）
var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

// readImages はアップロードされたファイルを順番どおりに読み込みます。
// 形式はバイト列から判定し、許可されていない形式は ErrInvalidInput です。
func readImages(files []*multipart.FileHeader) ([]domain.ImageInput, error) {
	if len(files) == 0 {
		return nil, nil
	}

	images := make([]domain.ImageInput, 0, len(files))
	for _, fh := range files {
		img, err := readImage(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func readImage(fh *multipart.FileHeader) (domain.ImageInput, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.ImageInput{}, fmt.Errorf("%w: cannot open %s: %v", domain.ErrInvalidInput, fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.ImageInput{}, fmt.Errorf("%w: cannot read %s: %v", domain.ErrInvalidInput, fh.Filename, err)
	}
	if len(data) == 0 {
		return domain.ImageInput{}, fmt.Errorf("%w: %s is empty", domain.ErrInvalidInput, fh.Filename)
	}

	mimeType := http.DetectContentType(data)
	if _, ok := allowedImageTypes[mimeType]; !ok {
		return domain.ImageInput{}, fmt.Errorf("%w: %s is %s, only png/jpeg/webp images are accepted",
			domain.ErrInvalidInput, fh.Filename, mimeType)
	}

	return domain.ImageInput{Name: fh.Filename, MimeType: mimeType, Data: data}, nil
}
