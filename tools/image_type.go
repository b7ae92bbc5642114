package tools

import "net/http"

type ImageType string

const (
	ImageTypePNG     ImageType = "png"
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypeWEBP    ImageType = "webp"
	ImageTypeUnknown ImageType = "unknown"
)

func (t ImageType) String() string {
	return string(t)
}

func (t ImageType) ContentType() string {
	switch t {
	case ImageTypePNG:
		return "image/png"
	case ImageTypeJPEG:
		return "image/jpeg"
	case ImageTypeWEBP:
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

func DetectImageType(data []byte) ImageType {
	switch http.DetectContentType(data) {
	case "image/png":
		return ImageTypePNG
	case "image/jpeg":
		return ImageTypeJPEG
	case "image/webp":
		return ImageTypeWEBP
	default:
		return ImageTypeUnknown
	}
}
