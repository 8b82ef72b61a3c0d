package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	httperrors "github.com/nhdewitt/http-from-tcp/internal/errors"
	"github.com/nhdewitt/http-from-tcp/internal/headers"
)

type requestState int

const (
	bufferSize     = 1024
	maxHeaderBytes = 64 << 10
	maxBodyBytes   = 64 << 20
)

const (
	stateRequestLine requestState = iota
	stateHeaders
	stateBody
	stateDone
)

func (s requestState) String() string {
	switch s {
	case stateRequestLine:
		return "request line"
	case stateHeaders:
		return "headers"
	case stateBody:
		return "body"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Request struct {
	RequestLine RequestLine
	Headers     headers.Lines
	Body        []byte

	state         requestState
	contentLength int
}

type RequestLine struct {
	HttpVersion   string
	RequestTarget string
	Method        string
}

// RequestFromReader decodes one request from reader, blocking until the
// header block and exactly Content-Length body bytes have arrived.
//
// A stream that closes before sending a request line fails with
// errors.EmptyRequest. A stream that closes mid-request, or sends something
// that is not a request, fails with errors.MalformedRequest. Any other read
// error is reported as errors.IOFailure.
func RequestFromReader(reader io.Reader) (*Request, error) {
	buf := make([]byte, bufferSize)
	readToIndex := 0
	totalRead := 0

	r := Request{
		state: stateRequestLine,
	}

	for r.state != stateDone {
		if readToIndex == len(buf) {
			if r.state != stateBody && len(buf) >= maxHeaderBytes {
				return nil, httperrors.Newf(httperrors.MalformedRequest, "request line or header line exceeds %d bytes", maxHeaderBytes)
			}
			tmpBuf := make([]byte, len(buf)*2)
			copy(tmpBuf, buf[:readToIndex])
			buf = tmpBuf
		}

		n, err := reader.Read(buf[readToIndex:])
		if n > 0 {
			readToIndex += n
			totalRead += n

			bytesParsed, perr := r.parse(buf[:readToIndex])
			if perr != nil {
				return nil, perr
			}

			copy(buf, buf[bytesParsed:readToIndex])
			readToIndex -= bytesParsed
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				if r.state == stateDone {
					break
				}
				if totalRead == 0 {
					return nil, httperrors.New(httperrors.EmptyRequest, nil)
				}
				return nil, httperrors.Newf(httperrors.MalformedRequest, "early EOF while reading %s", r.state)
			}
			return nil, httperrors.New(httperrors.IOFailure, err)
		}
	}

	return &r, nil
}

// parse consumes as much of data as the current state allows.
func (r *Request) parse(data []byte) (int, error) {
	total := 0
	for r.state != stateDone {
		n, err := r.parseSingle(data[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}

func (r *Request) parseSingle(data []byte) (int, error) {
	switch r.state {
	case stateRequestLine:
		parsed, rl, err := parseRequestLine(data)
		if parsed == 0 || err != nil {
			return 0, err
		}
		r.RequestLine = rl
		r.state = stateHeaders
		return parsed, nil
	case stateHeaders:
		parsed, done, err := r.Headers.Parse(data)
		if err != nil {
			return 0, httperrors.New(httperrors.MalformedRequest, err)
		}
		if done {
			r.contentLength = r.Headers.ContentLength()
			if r.contentLength > maxBodyBytes {
				return 0, httperrors.Newf(httperrors.MalformedRequest, "Content-Length %d exceeds %d bytes", r.contentLength, maxBodyBytes)
			}
			if r.contentLength == 0 {
				r.state = stateDone
			} else {
				// Capacity is capped; the body grows as bytes arrive.
				r.Body = make([]byte, 0, min(r.contentLength, bufferSize))
				r.state = stateBody
			}
		}
		return parsed, nil
	case stateBody:
		remaining := r.contentLength - len(r.Body)
		take := min(remaining, len(data))
		r.Body = append(r.Body, data[:take]...)
		if len(r.Body) == r.contentLength {
			r.state = stateDone
		}
		return take, nil
	case stateDone:
		return 0, fmt.Errorf("error: trying to read data in a done state")
	default:
		return 0, fmt.Errorf("error: unknown state")
	}
}

func parseRequestLine(req []byte) (int, RequestLine, error) {
	idx := bytes.IndexByte(req, '\n')
	if idx == -1 {
		return 0, RequestLine{}, nil
	}
	line := string(bytes.TrimSuffix(req[:idx], []byte("\r")))
	consumed := idx + 1

	// A bare terminator where the request line should be means the client
	// sent nothing worth answering.
	if line == "" {
		return 0, RequestLine{}, httperrors.Newf(httperrors.EmptyRequest, "blank request line")
	}

	rl, err := requestLineFromString(line)
	if err != nil {
		return 0, RequestLine{}, httperrors.New(httperrors.MalformedRequest, err)
	}

	return consumed, *rl, nil
}

func requestLineFromString(s string) (*RequestLine, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid request line: %q", s)
	}

	method := parts[0]
	for _, c := range method {
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("invalid method: %s", method)
		}
	}

	target := parts[1]
	if !strings.HasPrefix(target, "/") {
		return nil, fmt.Errorf("invalid request target: %s", target)
	}

	protocol, version, ok := strings.Cut(parts[2], "/")
	if !ok || protocol != "HTTP" || version != "1.1" {
		return nil, fmt.Errorf("invalid HTTP version: %s", parts[2])
	}

	return &RequestLine{
		Method:        method,
		RequestTarget: target,
		HttpVersion:   version,
	}, nil
}
