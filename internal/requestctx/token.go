package requestctx

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// FromAuthorization builds a Caller from an Authorization header value. The
// token is not verified here; authentication happens upstream and at the
// backends. Claims are only read to name the requester in logs.
func FromAuthorization(header string) Caller {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return Caller{}
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Caller{}
	}
	return Caller{Token: token, ID: subject(token)}
}

func subject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if name, ok := claims["preferred_username"].(string); ok && name != "" {
		return name
	}
	sub, _ := claims.GetSubject()
	return sub
}
