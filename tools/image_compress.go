package tools

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/webp"
)

const uploadJPEGQuality = 92

func ConvertAndCompressToJPEG(srcData []byte, quality int) ([]byte, error) {
	imageType := DetectImageType(srcData)
	var img image.Image
	var err error
	switch imageType {
	case ImageTypePNG:
		img, err = png.Decode(bytes.NewReader(srcData))
	case ImageTypeJPEG:
		img, err = jpeg.Decode(bytes.NewReader(srcData))
	case ImageTypeWEBP:
		img, err = webp.Decode(bytes.NewReader(srcData))
	default:
		return nil, fmt.Errorf("unsupported image type: %s", imageType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	options := jpeg.Options{
		Quality: quality,
	}
	ret := new(bytes.Buffer)
	err = jpeg.Encode(ret, img, &options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return ret.Bytes(), nil
}

// NormalizeUpload accepts png, jpeg and webp. The model providers take png and
// jpeg only, so webp is re-encoded as JPEG.
func NormalizeUpload(data []byte) ([]byte, ImageType, error) {
	switch t := DetectImageType(data); t {
	case ImageTypePNG, ImageTypeJPEG:
		return data, t, nil
	case ImageTypeWEBP:
		out, err := ConvertAndCompressToJPEG(data, uploadJPEGQuality)
		if err != nil {
			return nil, t, err
		}
		return out, ImageTypeJPEG, nil
	default:
		return nil, t, fmt.Errorf("unsupported image type: %s, upload png, jpeg or webp", t)
	}
}
