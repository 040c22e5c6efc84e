package chaparral

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication problems: timeouts, malformed requests,
// unexpected responses, and auth failures (expired tokens show up here as
// 401 bodies).
//
// Enable with CHAPARRAL_DEBUG=true or DEBUG=true, or explicitly via
// WithDebugLogging. Dumps include full bodies, which may contain the bearer
// token and result data; keep it out of production logging.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// CHAPARRAL_DEBUG targets this client alone; DEBUG is the broader
// development-workflow flag. Either set to "true" turns the dumps on.
func debugLoggingRequested() bool {
	return os.Getenv("CHAPARRAL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
