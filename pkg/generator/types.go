package generator

const (
	DefaultCompressionQuality     = 75
	DefaultCompressThresholdBytes = 1 << 20
)

// Options は GeminiGenerator の挙動を調整する設定です。
type Options struct {
	// CompressImages が true の場合、しきい値を超える画像を送信前に JPEG へ圧縮します。
	CompressImages         bool
	CompressionQuality     int
	CompressThresholdBytes int
}

// DefaultOptions は圧縮を有効にした既定値を返します。
func DefaultOptions() Options {
	return Options{
		CompressImages:         true,
		CompressionQuality:     DefaultCompressionQuality,
		CompressThresholdBytes: DefaultCompressThresholdBytes,
	}
}

func (o Options) normalized() Options {
	if o.CompressionQuality <= 0 || o.CompressionQuality > 100 {
		o.CompressionQuality = DefaultCompressionQuality
	}
	if o.CompressThresholdBytes < 0 {
		o.CompressThresholdBytes = DefaultCompressThresholdBytes
	}
	return o
}
