package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG, WebP）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressIfLarger は thresholdBytes を超える画像だけを JPEG に圧縮します。
// 圧縮後の方が大きい場合や、デコードできない場合は元のデータをそのまま返します。
// 2 番目の戻り値は圧縮後のデータを採用したかどうかです。
func CompressIfLarger(data []byte, thresholdBytes, quality int) ([]byte, bool) {
	if thresholdBytes < 0 || len(data) <= thresholdBytes {
		return data, false
	}

	compressed, err := CompressToJPEG(data, quality)
	if err != nil || len(compressed) >= len(data) {
		return data, false
	}
	return compressed, true
}
