package response

import (
	"net/http"
)

type Response struct {
	Status int    `json:"status"`
	Kind   string `json:"kind,omitempty"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK = 200
)

// Error kinds returned to clients. Underlying store/fetch errors are logged
// server-side and never serialized into the envelope.
const (
	KindBadRequest = "bad_request"
	KindNotFound   = "not_found"
	KindStore      = "store"
	KindUpstream   = "upstream"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(kind string, msg string, status int) Response {
	if status == 0 {
		status = http.StatusInternalServerError
	}

	return Response{
		Status: status,
		Kind:   kind,
		Error:  msg,
	}
}

func NotFound(msg string) Response {
	return Error(KindNotFound, msg, http.StatusNotFound)
}
