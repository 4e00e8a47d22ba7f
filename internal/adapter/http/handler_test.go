package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	mockflow "lexiq/internal/adapter/flows/mock"
	metricsinmem "lexiq/internal/adapter/metrics/inmemory"
	"lexiq/internal/adapter/repo/memory"
	"lexiq/internal/app/auth"
	"lexiq/internal/app/checkout"
	"lexiq/internal/app/companies"
	"lexiq/internal/app/dashboard"
	"lexiq/internal/app/diligence"
	"lexiq/internal/app/dispatch"
	"lexiq/internal/app/envelope"
	"lexiq/internal/app/insights"
	"lexiq/internal/app/learn"
	"lexiq/internal/app/lookup"
	"lexiq/internal/app/validation"
	"lexiq/internal/domain/advisory"
	"lexiq/internal/domain/billing"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type testEnv struct {
	server  *server.Hertz
	store   *memory.Store
	metrics *metricsinmem.Recorder
}

func newTestEnv(t *testing.T, registry lookupRegistry) testEnv {
	t.Helper()
	store := memory.NewStore()
	metrics := metricsinmem.NewRecorder()
	deps := dispatch.Deps{Validator: validation.MustNew(), Metrics: metrics}
	flows := mockflow.New()
	var reg lookupRegistry = flows
	if registry != nil {
		reg = registry
	}
	txRepo := memory.NewTransactionRepo(store)
	auditRepo := memory.NewAuditRepo(store)
	companyRepo := memory.NewCompanyRepo(store)
	txManager := memory.NewTxManager(store)

	h := Handler{
		DashboardUC:      dashboard.SuggestUseCase{Dispatch: deps, Advisor: flows},
		DiligenceUC:      diligence.ChecklistUseCase{Dispatch: deps, Generator: flows},
		LearnUC:          learn.TopicUseCase{Dispatch: deps, Guide: flows},
		InsightsUC:       insights.ReportUseCase{Dispatch: deps, Analyst: flows},
		LookupUC:         lookup.CompanyUseCase{Dispatch: deps, Registry: reg},
		CheckoutBeginUC:  checkout.BeginUseCase{Dispatch: deps, Transactions: txRepo, Audit: auditRepo, TxManager: txManager},
		CheckoutSubmitUC: checkout.SubmitReferenceUseCase{Dispatch: deps, Transactions: txRepo, Audit: auditRepo, TxManager: txManager},
		CheckoutStatusUC: checkout.StatusUseCase{Dispatch: deps, Transactions: txRepo, Audit: auditRepo},
		SaveCompanyUC:    companies.SaveUseCase{Dispatch: deps, Companies: companyRepo},
		ListCompaniesUC:  companies.ListUseCase{Dispatch: deps, Companies: companyRepo},
		SessionUC:        auth.VerifyUseCase{Secret: testSecret},
		KPI:              metrics,
	}
	s := server.New()
	h.RegisterRoutes(s)
	return testEnv{server: s, store: store, metrics: metrics}
}

type lookupRegistry interface {
	CompanyDetails(ctx context.Context, in advisory.CompanyDetailsInput) (advisory.CompanyDetails, error)
}

func (e testEnv) do(method, path, contentType, body, token string) *ut.ResponseRecorder {
	headers := []ut.Header{}
	if contentType != "" {
		headers = append(headers, ut.Header{Key: "Content-Type", Value: contentType})
	}
	if token != "" {
		headers = append(headers, ut.Header{Key: "Authorization", Value: "Bearer " + token})
	}
	return ut.PerformRequest(e.server.Engine, method, path, &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}, headers...)
}

func issueToken(t *testing.T, userID string) string {
	t.Helper()
	resp, err := auth.IssueUseCase{Secret: testSecret}.Execute(context.Background(), auth.IssueRequest{UserID: userID})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return resp.Token
}

func decodeState[T any](t *testing.T, body []byte) envelope.State[T] {
	t.Helper()
	var s envelope.State[T]
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, body)
	}
	return s
}

func TestDashboardSuggestions_ValidationFailureIs400(t *testing.T) {
	env := newTestEnv(t, nil)
	resp := env.do(consts.MethodPost, "/api/dashboard/suggestions", "application/json", `{"businessGoal":"grow"}`, "").Result()
	if resp.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status mismatch: got=%d want=%d", resp.StatusCode(), consts.StatusBadRequest)
	}
	s := decodeState[advisory.SuggestionSet](t, resp.Body())
	if s.Success || s.Code != envelope.CodeValidationFailed || len(s.Errors["businessGoal"]) != 1 {
		t.Fatalf("unexpected envelope: %+v", s)
	}
	if s.Data != nil {
		t.Fatalf("expected null data")
	}
}

func TestDashboardSuggestions_AcceptsFormInput(t *testing.T) {
	env := newTestEnv(t, nil)
	form := url.Values{"businessGoal": {"Keep our GST filings on time"}}.Encode()
	resp := env.do(consts.MethodPost, "/api/dashboard/suggestions", "application/x-www-form-urlencoded", form, "").Result()
	if resp.StatusCode() != consts.StatusOK {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", resp.StatusCode(), consts.StatusOK, resp.Body())
	}
	s := decodeState[advisory.SuggestionSet](t, resp.Body())
	if !s.Success || s.Data == nil || len(s.Data.Suggestions) == 0 {
		t.Fatalf("unexpected envelope: %+v", s)
	}
}

func TestCompaniesSave_FormCannotSetCaller(t *testing.T) {
	env := newTestEnv(t, nil)
	form := url.Values{
		"cin":    {"L17110MH1973PLC019786"},
		"name":   {"Reliance Industries"},
		"UserID": {"intruder"},
		"userId": {"intruder"},
	}.Encode()
	resp := env.do(consts.MethodPost, "/api/companies", "application/x-www-form-urlencoded", form, "").Result()
	if resp.StatusCode() != consts.StatusUnauthorized {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", resp.StatusCode(), consts.StatusUnauthorized, resp.Body())
	}
}

func TestInvalidJSONBody(t *testing.T) {
	env := newTestEnv(t, nil)
	resp := env.do(consts.MethodPost, "/api/learn/topic", "application/json", `{"topic":`, "").Result()
	if resp.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status mismatch: got=%d want=%d", resp.StatusCode(), consts.StatusBadRequest)
	}
	if !strings.Contains(string(resp.Body()), `"invalid_json"`) {
		t.Fatalf("expected invalid_json error, got %s", resp.Body())
	}
}

func TestCompanyLookup_ShortCINNeverReachesRegistry(t *testing.T) {
	registry := &registrySpy{}
	env := newTestEnv(t, registry)
	resp := env.do(consts.MethodPost, "/api/companies/lookup", "application/json", `{"cin":"U72200KA2009"}`, "").Result()
	if resp.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status mismatch: got=%d want=%d", resp.StatusCode(), consts.StatusBadRequest)
	}
	if registry.calls != 0 {
		t.Fatalf("expected no registry calls, got %d", registry.calls)
	}
}

func TestCompanyLookup_UpstreamFailureIs502(t *testing.T) {
	registry := &registrySpy{err: errors.New("model unavailable")}
	env := newTestEnv(t, registry)
	resp := env.do(consts.MethodPost, "/api/companies/lookup", "application/json", `{"cin":"U72200KA2009PTC049889"}`, "").Result()
	if resp.StatusCode() != consts.StatusBadGateway {
		t.Fatalf("status mismatch: got=%d want=%d", resp.StatusCode(), consts.StatusBadGateway)
	}
	if strings.Contains(string(resp.Body()), "model unavailable") {
		t.Fatalf("raw error leaked: %s", resp.Body())
	}
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	token := issueToken(t, "user-1")

	anon := env.do(consts.MethodPost, "/api/checkout/transactions", "application/json", `{"planId":"starter"}`, "").Result()
	if anon.StatusCode() != consts.StatusUnauthorized {
		t.Fatalf("anonymous begin status mismatch: got=%d want=%d", anon.StatusCode(), consts.StatusUnauthorized)
	}

	begin := env.do(consts.MethodPost, "/api/checkout/transactions", "application/json", `{"planId":"starter"}`, token).Result()
	if begin.StatusCode() != consts.StatusCreated {
		t.Fatalf("begin status mismatch: got=%d want=%d body=%s", begin.StatusCode(), consts.StatusCreated, begin.Body())
	}
	created := decodeState[billing.Transaction](t, begin.Body())
	if created.Data == nil || created.Data.Status != billing.StatusAwaitingPayment {
		t.Fatalf("unexpected begin envelope: %+v", created)
	}
	path := "/api/checkout/transactions/" + created.Data.ID + "/reference"

	other := env.do(consts.MethodPost, path, "application/json", `{"transactionId":"UTR123"}`, issueToken(t, "user-2")).Result()
	if other.StatusCode() != consts.StatusUnauthorized {
		t.Fatalf("foreign submit status mismatch: got=%d want=%d", other.StatusCode(), consts.StatusUnauthorized)
	}
	if s := decodeState[checkout.SubmitReferenceResponse](t, other.Body()); s.Message != envelope.LoginRequiredMessage {
		t.Fatalf("unexpected message: %q", s.Message)
	}

	empty := env.do(consts.MethodPost, path, "application/json", `{"transactionId":"  "}`, token).Result()
	if empty.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("empty submit status mismatch: got=%d want=%d", empty.StatusCode(), consts.StatusBadRequest)
	}

	ok := env.do(consts.MethodPost, path, "application/json", `{"transactionId":"UTR123"}`, token).Result()
	if ok.StatusCode() != consts.StatusOK {
		t.Fatalf("submit status mismatch: got=%d want=%d body=%s", ok.StatusCode(), consts.StatusOK, ok.Body())
	}
	missing := env.do(consts.MethodPost, "/api/checkout/transactions/no-such-doc/reference", "application/json", `{"transactionId":"UTR123"}`, token).Result()
	if missing.StatusCode() != consts.StatusNotFound {
		t.Fatalf("unknown doc status mismatch: got=%d want=%d body=%s", missing.StatusCode(), consts.StatusNotFound, missing.Body())
	}

	view := env.do(consts.MethodGet, "/api/checkout/transactions/"+created.Data.ID, "", "", token).Result()
	if view.StatusCode() != consts.StatusOK {
		t.Fatalf("status view mismatch: got=%d want=%d body=%s", view.StatusCode(), consts.StatusOK, view.Body())
	}
	viewed := decodeState[checkout.StatusResponse](t, view.Body())
	if viewed.Data == nil || len(viewed.Data.History) != 2 || viewed.Data.History[0].Type != checkout.EventTransactionReferenceSubmitted {
		t.Fatalf("unexpected status view: %+v", viewed)
	}

	got, err := memory.NewTransactionRepo(env.store).GetByID(context.Background(), created.Data.ID)
	if err != nil {
		t.Fatalf("get transaction: %v", err)
	}
	if got.TransactionID != "UTR123" || got.Status != billing.StatusPendingVerification {
		t.Fatalf("unexpected stored transaction: %+v", got)
	}
}

func TestCompaniesSaveAndList(t *testing.T) {
	env := newTestEnv(t, nil)
	token := issueToken(t, "user-1")
	body := `{"cin":"L17110MH1973PLC019786","name":"Reliance Industries"}`

	first := env.do(consts.MethodPost, "/api/companies", "application/json", body, token).Result()
	if first.StatusCode() != consts.StatusCreated {
		t.Fatalf("save status mismatch: got=%d want=%d body=%s", first.StatusCode(), consts.StatusCreated, first.Body())
	}
	dup := env.do(consts.MethodPost, "/api/companies", "application/json", body, token).Result()
	if dup.StatusCode() != consts.StatusConflict {
		t.Fatalf("duplicate status mismatch: got=%d want=%d", dup.StatusCode(), consts.StatusConflict)
	}

	list := env.do(consts.MethodGet, "/api/companies", "", "", token).Result()
	if list.StatusCode() != consts.StatusOK {
		t.Fatalf("list status mismatch: got=%d want=%d", list.StatusCode(), consts.StatusOK)
	}
	s := decodeState[companies.ListResponse](t, list.Body())
	if s.Data == nil || len(s.Data.Companies) != 1 {
		t.Fatalf("unexpected list envelope: %+v", s)
	}

	anon := env.do(consts.MethodGet, "/api/companies", "", "", "").Result()
	if anon.StatusCode() != consts.StatusUnauthorized {
		t.Fatalf("anonymous list status mismatch: got=%d want=%d", anon.StatusCode(), consts.StatusUnauthorized)
	}
}

func TestRedirectStubs(t *testing.T) {
	env := newTestEnv(t, nil)
	for from, to := range Redirects {
		resp := env.do(consts.MethodGet, from+"?tab=ignored", "", "", "").Result()
		if resp.StatusCode() != consts.StatusPermanentRedirect {
			t.Fatalf("%s: status mismatch: got=%d want=%d", from, resp.StatusCode(), consts.StatusPermanentRedirect)
		}
		if got := string(resp.Header.Peek("Location")); got != to {
			t.Fatalf("%s: location mismatch: got=%q want=%q", from, got, to)
		}
		if len(resp.Body()) != 0 {
			t.Fatalf("%s: expected empty body, got %q", from, resp.Body())
		}
	}
}

func TestKPIEndpointCountsDispatches(t *testing.T) {
	env := newTestEnv(t, nil)
	env.do(consts.MethodPost, "/api/learn/topic", "application/json", `{"topic":"GST basics"}`, "")
	env.do(consts.MethodPost, "/api/learn/topic", "application/json", `{"topic":"x"}`, "")

	resp := env.do(consts.MethodGet, "/ops/kpi", "", "", "").Result()
	if resp.StatusCode() != consts.StatusOK {
		t.Fatalf("status mismatch: got=%d want=%d", resp.StatusCode(), consts.StatusOK)
	}
	var snap metricsinmem.Snapshot
	if err := json.Unmarshal(resp.Body(), &snap); err != nil {
		t.Fatalf("decode kpi: %v", err)
	}
	got := snap.ByOperation[learn.Operation.Name]
	if got.Success != 1 || got.Invalid != 1 {
		t.Fatalf("unexpected learn counts: %+v", got)
	}
}

func TestKPI_NotConfigured(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}
	h.kpi(context.Background(), ctx)
	if ctx.Response.StatusCode() != consts.StatusNotFound {
		t.Fatalf("status mismatch: got=%d want=%d", ctx.Response.StatusCode(), consts.StatusNotFound)
	}
}

func TestWithSession(t *testing.T) {
	verify := auth.VerifyUseCase{Secret: testSecret}

	ctx := &app.RequestContext{}
	ctx.Request.Header.Set("Authorization", "Bearer "+issueToken(t, "user-9"))
	if got := auth.UserID(withSession(context.Background(), ctx, verify)); got != "user-9" {
		t.Fatalf("expected user-9, got %q", got)
	}

	ctx = &app.RequestContext{}
	ctx.Request.Header.Set("Authorization", "Bearer not-a-token")
	if got := auth.UserID(withSession(context.Background(), ctx, verify)); got != "" {
		t.Fatalf("expected anonymous for invalid token, got %q", got)
	}

	ctx = &app.RequestContext{}
	if got := auth.UserID(withSession(context.Background(), ctx, verify)); got != "" {
		t.Fatalf("expected anonymous without header, got %q", got)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		code envelope.Code
		opts routeOpts
		want int
	}{
		{envelope.CodeOK, defaultRoute, consts.StatusOK},
		{envelope.CodeOK, createRoute, consts.StatusCreated},
		{envelope.CodeValidationFailed, aiRoute, consts.StatusBadRequest},
		{envelope.CodeUnauthenticated, defaultRoute, consts.StatusUnauthorized},
		{envelope.CodeNotFound, aiRoute, consts.StatusNotFound},
		{envelope.CodeConflict, createRoute, consts.StatusConflict},
		{envelope.CodeFailed, defaultRoute, consts.StatusInternalServerError},
		{envelope.CodeFailed, aiRoute, consts.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := statusFor(tc.code, tc.opts); got != tc.want {
			t.Fatalf("status mismatch for %s: got=%d want=%d", tc.code, got, tc.want)
		}
	}
}

type registrySpy struct {
	calls int
	err   error
}

func (s *registrySpy) CompanyDetails(_ context.Context, in advisory.CompanyDetailsInput) (advisory.CompanyDetails, error) {
	s.calls++
	if s.err != nil {
		return advisory.CompanyDetails{}, s.err
	}
	return advisory.CompanyDetails{CIN: in.CIN, Name: "Test Co"}, nil
}
