package config

import "time"

type (
	Headers struct {
		// MaxSize limits the whole header region (request line and header fields). If the
		// CRLF-CRLF boundary isn't found within this amount of bytes, the exchange fails with
		// status.ErrHeaderTooLarge.
		MaxSize int
	}

	Body struct {
		// MaxSize is the largest Content-Length value accepted. Checked before anything is
		// read, so an oversized declaration fails with status.ErrBodyTooLarge immediately.
		MaxSize int
	}

	NET struct {
		// ReadBufferSize is the size of a single read from the connection. It affects
		// only the efficiency, not the semantics.
		ReadBufferSize int
		// ReadTimeout is applied by the App to every accepted connection before the
		// exchange starts. The exchange itself has no notion of timeouts. Zero disables it.
		ReadTimeout time.Duration `test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}

	Response struct {
		// CloseConnection adds the Connection: close header to every response.
		CloseConnection bool `test:"nullable"`
		// UnknownStatusText is the reason phrase for status codes having none
		// registered.
		UnknownStatusText string
	}

	Errors struct {
		// Respond controls whether the App writes an error response when an exchange fails
		// (malformed request, too large header or body, etc.). The status code is derived
		// from the error. Otherwise the connection is just closed.
		Respond bool `test:"nullable"`
	}
)

// Config holds the limits and policies of a single exchange and of the hosting App.
//
// Always start from Default() and modify the fields you need, instead of initializing
// the struct manually.
type Config struct {
	Headers  Headers
	Body     Body
	NET      NET
	Response Response
	Errors   Errors
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			MaxSize: 64 * 1024,
		},
		Body: Body{
			MaxSize: 1024 * 1024,
		},
		NET: NET{
			ReadBufferSize:            8 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Response: Response{
			CloseConnection:   false,
			UnknownStatusText: "OK",
		},
		Errors: Errors{
			Respond: true,
		},
	}
}
