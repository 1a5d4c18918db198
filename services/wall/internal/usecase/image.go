package usecase

import (
	"bytes"
	"strings"

	"lovewall/services/wall/internal/entity"

	"github.com/disintegration/imaging"
)

const (
	maxImageDimension = 1200
	jpegQuality       = 70
)

// normalizeFile prepares one file for upload. Images are scaled down so that
// neither dimension exceeds maxImageDimension (never scaled up) and
// re-encoded as JPEG at jpegQuality. HEIC files are renamed to .jpg first;
// Go's image registry cannot decode HEIC pixel data, so when decode fails
// the renamed bytes pass through unchanged (the stored content type still
// says image/jpeg — the same tradeoff the storage bucket already accepts
// for browser uploads). Videos and unrecognized types pass through as-is.
func normalizeFile(f entity.UploadFile) entity.UploadFile {
	isHEIC := f.IsHEIC()
	if isHEIC {
		f.Name = replaceExt(f.Name, ".jpg")
		f.ContentType = "image/jpeg"
	}

	if !isHEIC && f.Kind() != entity.KindImage {
		return f
	}

	img, err := imaging.Decode(bytes.NewReader(f.Data), imaging.AutoOrientation(true))
	if err != nil {
		// Decode failure falls back to uploading the original bytes.
		return f
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return f
	}

	f.Name = replaceExt(f.Name, ".jpg")
	f.ContentType = "image/jpeg"
	f.Data = buf.Bytes()
	return f
}

func replaceExt(name, ext string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i] + ext
	}
	return name + ext
}
