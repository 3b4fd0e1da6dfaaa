package media

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrNotDataURI   = errors.New("not a data URI")
	ErrNotBase64    = errors.New("data URI is not base64 encoded")
	ErrEmptyPayload = errors.New("data URI has an empty payload")
)

// DataURI is a decoded "data:<mime>;base64,<payload>" value.
type DataURI struct {
	MIMEType string
	Data     []byte
}

// IsImage reports whether the payload is declared as an image.
func (d DataURI) IsImage() bool { return strings.HasPrefix(d.MIMEType, "image/") }

// Parse decodes a base64 data URI. Only the base64 form is accepted.
func Parse(uri string) (DataURI, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return DataURI{}, ErrNotDataURI
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, ErrNotDataURI
	}
	params := strings.Split(header, ";")
	if params[len(params)-1] != "base64" {
		return DataURI{}, ErrNotBase64
	}
	mime := strings.ToLower(strings.TrimSpace(params[0]))
	if mime == "" || mime == "base64" {
		mime = "text/plain"
	}
	if payload == "" {
		return DataURI{}, ErrEmptyPayload
	}
	data, err := decodeBase64(payload)
	if err != nil {
		return DataURI{}, ErrNotBase64
	}
	return DataURI{MIMEType: mime, Data: data}, nil
}

// decodeBase64 accepts padded and unpadded payloads in the standard or the
// URL-safe alphabet.
func decodeBase64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}
	unpadded := strings.TrimRight(payload, "=")
	if data, err = base64.RawStdEncoding.DecodeString(unpadded); err == nil {
		return data, nil
	}
	return base64.RawURLEncoding.DecodeString(unpadded)
}

// Encode builds a base64 data URI.
func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FromUpload builds a data URI from uploaded bytes. An empty or generic declared
// type is replaced by the sniffed content type.
func FromUpload(declared string, data []byte) string {
	mime := strings.TrimSpace(strings.Split(declared, ";")[0])
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
		mime = strings.TrimSpace(strings.Split(mime, ";")[0])
	}
	return Encode(mime, data)
}
