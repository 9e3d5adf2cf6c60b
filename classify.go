package specwire

import "net/http"

// Classification is the outcome kind derived from an HTTP status code.
type Classification int

const (
	Success Classification = iota
	RateLimited
	ClientError
	ServerError
)

func (c Classification) String() string {
	switch c {
	case Success:
		return "success"
	case RateLimited:
		return "rate limited"
	case ClientError:
		return "client error"
	case ServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// Classify maps an HTTP status code to its Classification. The 429 check
// comes first: it sits inside the 4xx band but must be told apart because
// it is the only status the executor retries.
func Classify(status int) Classification {
	switch {
	case status == http.StatusTooManyRequests:
		return RateLimited
	case status >= 400 && status < 500:
		return ClientError
	case status >= 500 && status < 600:
		return ServerError
	default:
		return Success
	}
}
