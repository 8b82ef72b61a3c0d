package server

import (
	"github.com/nhdewitt/http-from-tcp/internal/request"
	"github.com/nhdewitt/http-from-tcp/internal/response"
)

// Handler maps a decoded request to the response to send back.
type Handler func(req *request.Request) response.Response
