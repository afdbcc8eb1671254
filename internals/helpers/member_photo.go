package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	photoMaxDim     = 640
	photoQuality    = 80
	photoUploadsDir = "public/uploads/members"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// SaveMemberPhoto decodes an uploaded jpeg/png, downscales it to fit 640x640,
// re-encodes as webp and writes it under public/uploads/members. Returns the
// public URL path of the stored file.
func SaveMemberPhoto(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded photo: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	img = imaging.Fit(img, photoMaxDim, photoMaxDim, imaging.CatmullRom)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: photoQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	if err := os.MkdirAll(photoUploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure uploads dir: %w", err)
	}

	base := GenerateUniqueFilename(fileHeader.Filename)
	name := base[:len(base)-len(filepath.Ext(base))] + ".webp"
	if err := os.WriteFile(filepath.Join(photoUploadsDir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	return "/uploads/members/" + name, nil
}
