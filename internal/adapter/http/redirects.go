package httpadapter

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Redirects maps retired UI routes to their replacements.
var Redirects = map[string]string{
	"/dashboard/analytics":  "/dashboard/insights",
	"/dashboard/ai-advisor": "/dashboard/assistant",
	"/dashboard/checklists": "/dashboard/diligence",
	"/settings/billing":     "/checkout",
}

func registerRedirects(s *server.Hertz) {
	for from, to := range Redirects {
		s.Any(from, permanentRedirect(to))
	}
}

func permanentRedirect(target string) app.HandlerFunc {
	return func(_ context.Context, ctx *app.RequestContext) {
		ctx.Response.Header.Set("Location", target)
		ctx.SetStatusCode(consts.StatusPermanentRedirect)
	}
}
