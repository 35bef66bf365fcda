package httpx

import (
	"context"

	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
)

type ctxKey int

const (
	CtxKeyUserID ctxKey = iota
	CtxKeyClaims
)

// UserIDFromCtx returns the authenticated subject, or "" when the request
// did not pass through AuthnMiddleware.
func UserIDFromCtx(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyUserID).(string)
	return v
}

// ClaimsFromCtx returns the verified session claims.
func ClaimsFromCtx(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
