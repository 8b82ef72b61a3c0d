package response

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhdewitt/http-from-tcp/internal/headers"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "root",
			resp: Empty(),
			want: "HTTP/1.1 200 OK\r\n\r\n",
		},
		{
			name: "ok with body",
			resp: OKString("abc", ContentTypeTextPlain),
			want: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc",
		},
		{
			name: "ok with empty body",
			resp: OKString("", ContentTypeTextPlain),
			want: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 0\r\n\r\n",
		},
		{
			name: "octet stream",
			resp: OK([]byte{0x00, 0xff}, ContentTypeOctetStream),
			want: "HTTP/1.1 200 OK\r\nContent-Type: application/octet-stream\r\nContent-Length: 2\r\n\r\n\x00\xff",
		},
		{
			name: "ok without body",
			resp: OKNoBody(ContentTypeTextPlain),
			want: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\n",
		},
		{
			name: "created",
			resp: Created(ContentTypeTextPlain),
			want: "HTTP/1.1 201 Created\r\nContent-Type: text/plain\r\n\r\n",
		},
		{
			name: "not found",
			resp: NotFound(),
			want: "HTTP/1.1 404 Not Found\r\n\r\n",
		},
		{
			name: "internal error",
			resp: InternalError(),
			want: "HTTP/1.1 500 Internal Server Error\r\n\r\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.resp.Bytes()
			require.NoError(t, err)
			assert.Equal(t, c.want, string(got))
		})
	}
}

func TestContentLengthCountsBytes(t *testing.T) {
	resp := OKString("héllo, 世界", ContentTypeTextPlain)
	v, ok := resp.Headers().Get("Content-Length")
	require.True(t, ok)
	assert.Equal(t, "14", v)
}

func TestWriterStateOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.WriteBody([]byte("x"))
	require.Error(t, err)
	require.Error(t, w.WriteHeaders(headers.NewFields()))

	require.NoError(t, w.WriteStatusLine(StatusOK))
	require.Error(t, w.WriteStatusLine(StatusOK))

	h := headers.NewFields()
	h.Set("x-request-id", "7")
	require.NoError(t, w.WriteHeaders(h))
	n, err := w.WriteBody([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "HTTP/1.1 200 OK\r\nX-Request-Id: 7\r\n\r\nhi", buf.String())
}

func TestUnsupportedStatus(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(&buf).WriteStatusLine(StatusCode(418))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEncodeWriteFailure(t *testing.T) {
	err := Encode(failingWriter{}, OKString("abc", ContentTypeTextPlain))
	require.Error(t, err)
}
