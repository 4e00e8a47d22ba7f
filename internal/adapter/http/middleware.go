package httpadapter

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"lexiq/internal/app/auth"
)

// sessionMiddleware attaches the bearer token's principal to the request
// context. Missing or invalid tokens continue anonymously.
func sessionMiddleware(verify auth.VerifyUseCase) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		ctx.Next(withSession(c, ctx, verify))
	}
}

func withSession(c context.Context, ctx *app.RequestContext, verify auth.VerifyUseCase) context.Context {
	token, ok := bearerToken(string(ctx.GetHeader("Authorization")))
	if !ok {
		return c
	}
	p, err := verify.Execute(c, auth.VerifyRequest{Token: token})
	if err != nil {
		return c
	}
	return auth.WithPrincipal(c, p)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func accessLogMiddleware(logger *zap.Logger) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		logger.Info("http request",
			zap.String("method", string(ctx.Method())),
			zap.String("path", string(ctx.Path())),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
