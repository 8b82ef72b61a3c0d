package response

import "fmt"

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusCreated             StatusCode = 201
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
)

func (s StatusCode) reason() (string, error) {
	switch s {
	case StatusOK:
		return "OK", nil
	case StatusCreated:
		return "Created", nil
	case StatusNotFound:
		return "Not Found", nil
	case StatusInternalServerError:
		return "Internal Server Error", nil
	default:
		return "", fmt.Errorf("unsupported status code: %d", int(s))
	}
}

type ContentType int

const (
	ContentTypeNone ContentType = iota
	ContentTypeTextPlain
	ContentTypeOctetStream
)

func (c ContentType) String() string {
	switch c {
	case ContentTypeTextPlain:
		return "text/plain"
	case ContentTypeOctetStream:
		return "application/octet-stream"
	default:
		return ""
	}
}
