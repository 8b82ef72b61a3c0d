package response

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/nhdewitt/http-from-tcp/internal/headers"
)

// Response is one of a closed set of variants, built only through the
// constructors below:
//
//	OK(body, type)   200 with Content-Type and Content-Length
//	OKNoBody(type)   200 with Content-Type only
//	Empty()          200 with no headers at all
//	Created(type)    201 with Content-Type, never a body
//	NotFound()       404, no headers
//	InternalError()  500, no headers
type Response struct {
	status      StatusCode
	contentType ContentType
	body        []byte
	hasBody     bool
}

func OK(body []byte, ct ContentType) Response {
	return Response{status: StatusOK, contentType: ct, body: body, hasBody: true}
}

func OKString(body string, ct ContentType) Response {
	return OK([]byte(body), ct)
}

func OKNoBody(ct ContentType) Response {
	return Response{status: StatusOK, contentType: ct}
}

func Empty() Response {
	return Response{status: StatusOK}
}

func Created(ct ContentType) Response {
	return Response{status: StatusCreated, contentType: ct}
}

func NotFound() Response {
	return Response{status: StatusNotFound}
}

func InternalError() Response {
	return Response{status: StatusInternalServerError}
}

func (r Response) Status() StatusCode {
	return r.status
}

func (r Response) ContentType() ContentType {
	return r.contentType
}

// Body returns the body and whether the variant carries one. An empty body
// (for example /echo/) is still a body and is sent with Content-Length: 0.
func (r Response) Body() ([]byte, bool) {
	return r.body, r.hasBody
}

// Headers returns the header fields this response puts on the wire.
func (r Response) Headers() headers.Fields {
	h := headers.NewFields()
	switch r.status {
	case StatusNotFound, StatusInternalServerError:
		return h
	}
	if r.contentType != ContentTypeNone {
		h.Set("content-type", r.contentType.String())
	}
	if r.hasBody && r.status == StatusOK {
		h.Set("content-length", strconv.Itoa(len(r.body)))
	}
	return h
}

// Encode writes the full wire form of resp to w.
func Encode(w io.Writer, resp Response) error {
	bw := bufio.NewWriter(w)
	rw := NewWriter(bw)
	if err := rw.WriteResponse(resp); err != nil {
		return err
	}
	return bw.Flush()
}

// Bytes returns the wire form of r.
func (r Response) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
