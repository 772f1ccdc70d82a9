package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/facetime/facetime-api/internal/core/domain"
)

type stubResolver struct {
	identities map[string]domain.Identity
	err        error
	calls      int
}

func (r *stubResolver) Authenticate(_ context.Context, token string) (domain.Identity, error) {
	r.calls++
	if r.err != nil {
		return domain.Identity{}, r.err
	}
	id, ok := r.identities[token]
	if !ok {
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	return id, nil
}

var alice = domain.Identity{Email: "a@x.com", Authorities: []string{domain.AuthorityUser}}

func newResolver() *stubResolver {
	return &stubResolver{identities: map[string]domain.Identity{"good": alice}}
}

// runGate pushes a request through Authenticate and reports what the
// downstream handler observed.
func runGate(t *testing.T, r *stubResolver, method, path, authHeader string) (domain.Identity, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var (
		seen    domain.Identity
		present bool
	)
	mw := Authenticate(AuthConfig{Resolver: r, PublicPaths: []string{"/api/auth/", "/health", "/health/"}, Logger: zerolog.Nop()})
	err := mw(func(c echo.Context) error {
		seen, present = IdentityFrom(c)
		return nil
	})(c)
	return seen, present, err
}

func TestAuthenticate_ValidTokenAttachesIdentity(t *testing.T) {
	id, ok, err := runGate(t, newResolver(), http.MethodGet, "/api/mypage", "Bearer good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || id.Email != "a@x.com" {
		t.Fatalf("expected identity for a@x.com, got %+v (present=%v)", id, ok)
	}
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	if _, ok, _ := runGate(t, newResolver(), http.MethodGet, "/api/mypage", "bearer good"); !ok {
		t.Fatalf("expected identity with lowercase scheme")
	}
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "good", "Basic good", "Bearer", "Bearer   "} {
		r := newResolver()
		_, ok, err := runGate(t, r, http.MethodGet, "/api/mypage", header)
		if err != nil {
			t.Fatalf("header %q: unexpected error %v", header, err)
		}
		if ok {
			t.Fatalf("header %q: expected no identity", header)
		}
		if r.calls != 0 {
			t.Fatalf("header %q: resolver should not be called", header)
		}
	}
}

func TestAuthenticate_InvalidTokenStaysUnauthenticated(t *testing.T) {
	for _, reason := range []error{domain.ErrTokenInvalid, domain.ErrTokenExpired} {
		r := newResolver()
		r.err = reason
		_, ok, err := runGate(t, r, http.MethodGet, "/api/mypage", "Bearer good")
		if err != nil {
			t.Fatalf("%v: gate must not fail the request, got %v", reason, err)
		}
		if ok {
			t.Fatalf("%v: expected no identity", reason)
		}
	}
}

func TestAuthenticate_UnresolvedSubjectStaysUnauthenticated(t *testing.T) {
	r := newResolver()
	r.err = domain.ErrAccountNotFound
	_, ok, err := runGate(t, r, http.MethodGet, "/api/mypage", "Bearer good")
	if err != nil || ok {
		t.Fatalf("expected unauthenticated pass-through, got ok=%v err=%v", ok, err)
	}
}

func TestAuthenticate_StoreFailureIsSurfaced(t *testing.T) {
	storeErr := errors.New("connection refused")
	r := newResolver()
	r.err = storeErr
	_, _, err := runGate(t, r, http.MethodGet, "/api/mypage", "Bearer good")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestAuthenticate_PublicPathsAndPreflightSkipResolution(t *testing.T) {
	cases := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/health/ready"},
		{http.MethodOptions, "/api/mypage"},
	}
	for _, tc := range cases {
		r := newResolver()
		_, ok, err := runGate(t, r, tc.method, tc.path, "Bearer good")
		if err != nil || ok || r.calls != 0 {
			t.Fatalf("%s %s: expected skip, got ok=%v err=%v calls=%d", tc.method, tc.path, ok, err, r.calls)
		}
	}
}

func TestRequireIdentity(t *testing.T) {
	e := echo.New()
	reached := false
	h := RequireIdentity()(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/mypage", nil), httptest.NewRecorder())
	if err := h(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if reached {
		t.Fatalf("handler must not run without identity")
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/mypage", nil), httptest.NewRecorder())
	SetIdentity(c, alice)
	if err := h(c); err != nil || !reached {
		t.Fatalf("expected handler to run, err=%v reached=%v", err, reached)
	}
}

func TestRequireAuthority(t *testing.T) {
	e := echo.New()
	h := RequireAuthority("ADMIN")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	SetIdentity(c, alice)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	SetIdentity(c, domain.Identity{Email: "root@x.com", Authorities: []string{domain.AuthorityUser, "ADMIN"}})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if err := h(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without identity, got %v", err)
	}
}

func TestAuthenticate_LookalikePathsAreNotPublic(t *testing.T) {
	for _, path := range []string{"/healthz", "/health-admin", "/api/authx"} {
		r := newResolver()
		_, ok, err := runGate(t, r, http.MethodGet, path, "Bearer good")
		if err != nil || !ok || r.calls != 1 {
			t.Fatalf("%s: expected token resolution, got ok=%v err=%v calls=%d", path, ok, err, r.calls)
		}
	}
}

func TestIsPublicPath(t *testing.T) {
	public := []string{"/api/auth/", "/health", "/health/", "/metrics"}
	cases := map[string]bool{
		"/api/auth/login": true,
		"/health":         true,
		"/health/ready":   true,
		"/metrics":        true,
		"/healthz":        false,
		"/metrics/extra":  false,
		"/api/mypage":     false,
	}
	for path, want := range cases {
		if got := isPublicPath(path, public); got != want {
			t.Fatalf("isPublicPath(%q) = %v, want %v", path, got, want)
		}
	}
}
