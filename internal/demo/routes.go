package demo

import (
	"fmt"
	"strconv"

	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/mime"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/router/inbuilt"
	json "github.com/json-iterator/go"
)

// Routes returns the router of the demo application. It isn't started yet, so more routes
// and middlewares can be added.
func Routes() *inbuilt.Router {
	return inbuilt.New().
		Get("/health", Health).
		Post("/echo", Echo).
		Get("/items/:id", Item).
		Get("/", Summary).
		Post("/", Summary)
}

func Health(*http.Request, []byte, http.Params) http.Response {
	return http.NewResponse().String("ok\n")
}

type echoPayload struct {
	Value string `json:"value"`
}

// Echo reflects the request body. JSON bodies must be objects with a string field
// called value, which is echoed back. Bodies of any other type are only counted.
func Echo(request *http.Request, body []byte, _ http.Params) http.Response {
	if !mime.Is(mime.JSON, request.ContentType()) {
		return http.NewResponse().String("echo.bytes=" + strconv.Itoa(len(body)) + "\n")
	}

	var payload echoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return http.NewResponse().
			Code(status.BadRequest).
			String("bad json\n")
	}

	return http.NewResponse().String("echo.value=" + payload.Value)
}

func Item(_ *http.Request, _ []byte, params http.Params) http.Response {
	return http.NewResponse().String("item=" + params["id"] + "\n")
}

// Summary describes the request in a single line.
func Summary(request *http.Request, body []byte, _ http.Params) http.Response {
	text := fmt.Sprintf("method=%s, body=%d bytes\n", http.Escape(request.Method), len(body))
	return http.NewResponse().String(text)
}
