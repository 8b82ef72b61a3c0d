package router

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	httperrors "github.com/nhdewitt/http-from-tcp/internal/errors"
	"github.com/nhdewitt/http-from-tcp/internal/request"
	"github.com/nhdewitt/http-from-tcp/internal/response"
)

const userAgentPrefix = "User-Agent:"

type Router struct {
	files *FileStore
	log   zerolog.Logger
}

// New returns a Router serving file routes from dir. An empty dir disables
// them.
func New(dir string, log zerolog.Logger) *Router {
	return &Router{
		files: NewFileStore(dir),
		log:   log,
	}
}

// Route maps a request to its response. It never fails: every miss is a 404
// and a failed file write is a 500.
func (rt *Router) Route(req *request.Request) response.Response {
	m, rest := Classify(req.RequestLine.RequestTarget)
	switch m {
	case MatchRoot:
		return response.Empty()
	case MatchEcho:
		return response.OKString(rest, response.ContentTypeTextPlain)
	case MatchFiles:
		return rt.file(req, rest)
	case MatchUserAgent:
		return userAgent(req)
	default:
		return response.NotFound()
	}
}

func (rt *Router) file(req *request.Request, name string) response.Response {
	switch req.RequestLine.Method {
	case "GET":
		data, err := rt.files.Read(name)
		if err != nil {
			rt.log.Debug().Err(err).Str("file", name).Msg("file miss")
			return response.NotFound()
		}
		return response.OK(data, response.ContentTypeOctetStream)
	case "POST":
		err := rt.files.Write(name, req.Body)
		switch {
		case err == nil:
			return response.Created(response.ContentTypeTextPlain)
		case errors.Is(err, httperrors.NotFound):
			rt.log.Debug().Err(err).Str("file", name).Msg("file write rejected")
			return response.NotFound()
		default:
			rt.log.Warn().Err(err).Str("file", name).Msg("file write failed")
			return response.InternalError()
		}
	default:
		return response.NotFound()
	}
}

func userAgent(req *request.Request) response.Response {
	line, ok := req.Headers.Find(userAgentPrefix)
	if !ok {
		return response.NotFound()
	}
	value, ok := strings.CutPrefix(line, userAgentPrefix)
	if !ok {
		// Matched as a substring of some other header, e.g. X-User-Agent.
		return response.OKNoBody(response.ContentTypeTextPlain)
	}
	return response.OKString(strings.TrimLeft(value, " \t"), response.ContentTypeTextPlain)
}
