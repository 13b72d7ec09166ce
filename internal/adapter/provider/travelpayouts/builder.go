package travelpayouts

import (
	"net/url"
	"strings"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

// BuildURL constructs the fully-qualified outbound URL for the given endpoint
// kind and parameter bag. The access token is always the first query
// parameter; only the kind's accepted parameters follow, in catalog order,
// with IATA codes and currency upper-cased. Params must be normalized first.
func BuildURL(kind domain.EndpointKind, p *domain.FlightSearchParams, token string) string {
	ep := Resolve(kind)

	var sb strings.Builder
	sb.WriteString(ep.BaseURL)
	sb.WriteString("?token=")
	sb.WriteString(url.QueryEscape(token))

	for _, name := range ep.Params {
		value, ok := paramValue(p, name)
		if !ok {
			continue
		}
		sb.WriteByte('&')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(value))
	}

	return sb.String()
}

// RedactURL replaces the token value in a built URL so it can be logged.
// The token must never appear in logs or caller-facing output.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("token") {
		q.Set("token", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
