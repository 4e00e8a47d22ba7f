package httpadapter

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"

	"lexiq/internal/app/auth"
	"lexiq/internal/app/checkout"
	"lexiq/internal/app/companies"
	"lexiq/internal/app/dashboard"
	"lexiq/internal/app/diligence"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/insights"
	"lexiq/internal/app/learn"
	"lexiq/internal/app/lookup"
)

type Handler struct {
	DashboardUC      dashboard.SuggestUseCase
	DiligenceUC      diligence.ChecklistUseCase
	LearnUC          learn.TopicUseCase
	InsightsUC       insights.ReportUseCase
	LookupUC         lookup.CompanyUseCase
	CheckoutBeginUC  checkout.BeginUseCase
	CheckoutSubmitUC checkout.SubmitReferenceUseCase
	CheckoutStatusUC checkout.StatusUseCase
	SaveCompanyUC    companies.SaveUseCase
	ListCompaniesUC  companies.ListUseCase
	SessionUC        auth.VerifyUseCase
	KPI              kpiSnapshotProvider
	Logger           *zap.Logger
	AllowedOrigins   []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(accessLogMiddleware(h.logger()), corsMiddleware(h.AllowedOrigins), sessionMiddleware(h.SessionUC))

	api := s.Group("/api")
	api.POST("/dashboard/suggestions", dispatchAction(h.DashboardUC.Execute, aiRoute, nil))
	api.POST("/diligence/checklist", dispatchAction(h.DiligenceUC.Execute, aiRoute, nil))
	api.POST("/learn/topic", dispatchAction(h.LearnUC.Execute, aiRoute, nil))
	api.POST("/reports/insights", dispatchAction(h.InsightsUC.Execute, aiRoute, nil))
	api.POST("/companies/lookup", dispatchAction(h.LookupUC.Execute, aiRoute, nil))

	api.GET("/companies", h.listCompanies)
	api.POST("/companies", dispatchAction(h.SaveCompanyUC.Execute, createRoute, func(c context.Context, _ *app.RequestContext, req *companies.SaveRequest) {
		req.UserID = auth.UserID(c)
	}))
	api.POST("/checkout/transactions", dispatchAction(h.CheckoutBeginUC.Execute, createRoute, func(c context.Context, _ *app.RequestContext, req *checkout.BeginRequest) {
		req.UserID = auth.UserID(c)
	}))
	api.GET("/checkout/transactions/:id", dispatchAction(h.CheckoutStatusUC.Execute, defaultRoute, func(c context.Context, ctx *app.RequestContext, req *checkout.StatusRequest) {
		req.TransactionDocID = ctx.Param("id")
		req.UserID = auth.UserID(c)
	}))
	api.POST("/checkout/transactions/:id/reference", dispatchAction(h.CheckoutSubmitUC.Execute, defaultRoute, func(c context.Context, ctx *app.RequestContext, req *checkout.SubmitReferenceRequest) {
		if id := ctx.Param("id"); id != "" {
			req.TransactionDocID = id
		}
		req.UserID = auth.UserID(c)
	}))

	registerRedirects(s)
	s.GET("/healthz", h.healthz)
	s.GET("/ops/kpi", h.kpi)
}

// routeOpts tunes the envelope to status mapping per route.
type routeOpts struct {
	okStatus int
	// upstream marks routes whose collaborator is a remote AI flow.
	upstream bool
}

var (
	defaultRoute = routeOpts{okStatus: consts.StatusOK}
	createRoute  = routeOpts{okStatus: consts.StatusCreated}
	aiRoute      = routeOpts{okStatus: consts.StatusOK, upstream: true}
)

// dispatchAction decodes the form or JSON body into Req, lets prepare attach
// request-scoped fields, and writes the dispatcher's envelope.
func dispatchAction[Req, Resp any](exec func(context.Context, Req) envelope.State[Resp], opts routeOpts, prepare func(context.Context, *app.RequestContext, *Req)) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		var req Req
		if err := decodeInput(ctx, &req); err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
			return
		}
		if prepare != nil {
			prepare(c, ctx, &req)
		}
		writeState(ctx, exec(c, req), opts)
	}
}

func (h Handler) listCompanies(c context.Context, ctx *app.RequestContext) {
	writeState(ctx, h.ListCompaniesUC.Execute(c, companies.ListRequest{UserID: auth.UserID(c)}), defaultRoute)
}

func writeState[T any](ctx *app.RequestContext, s envelope.State[T], opts routeOpts) {
	ctx.JSON(statusFor(s.Code, opts), s)
}

func statusFor(code envelope.Code, opts routeOpts) int {
	switch code {
	case envelope.CodeOK:
		if opts.okStatus != 0 {
			return opts.okStatus
		}
		return consts.StatusOK
	case envelope.CodeValidationFailed:
		return consts.StatusBadRequest
	case envelope.CodeUnauthenticated:
		return consts.StatusUnauthorized
	case envelope.CodeNotFound:
		return consts.StatusNotFound
	case envelope.CodeConflict:
		return consts.StatusConflict
	default:
		if opts.upstream {
			return consts.StatusBadGateway
		}
		return consts.StatusInternalServerError
	}
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func (h Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}
