package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errTooLarge = errors.New("file too large")

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

// uploadedFile reads the "file" form field, up to max bytes.
func uploadedFile(c *fiber.Ctx, max int64) (*multipart.FileHeader, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return nil, nil, fmt.Errorf("file is required: %w", err)
	}
	if fh.Size > max {
		return fh, nil, errTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return fh, nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()
	data, err := readAtMost(f, max)
	return fh, data, err
}

func readAtMost(f io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, errTooLarge
	}
	return b, nil
}
