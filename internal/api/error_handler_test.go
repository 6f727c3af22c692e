package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-api/internal/core/domain"
)

func dispatch(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest, "user with this email or username already exists"},
		{"unknown user", domain.ErrUserNotFound, http.StatusUnauthorized, "invalid credentials"},
		{"wrong password", domain.ErrWrongPassword, http.StatusUnauthorized, "invalid credentials"},
		{"inactive user", domain.ErrInactiveUser, http.StatusForbidden, "inactive user"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
		{"duplicate product", domain.ErrProductExists, http.StatusBadRequest, "product with this name already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := dispatch(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["error"] != tc.msg {
				t.Fatalf("expected %q, got %v", tc.msg, body["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_CollapsesCredentialFailures(t *testing.T) {
	_, notFound := dispatch(t, domain.ErrUserNotFound)
	_, wrongPassword := dispatch(t, domain.ErrWrongPassword)

	if notFound["error"] != wrongPassword["error"] {
		t.Fatalf("credential failures must be indistinguishable: %v vs %v",
			notFound["error"], wrongPassword["error"])
	}
}

func TestHTTPErrorHandler_WrappedSentinel(t *testing.T) {
	rec, body := dispatch(t, errors.New("find product: "+domain.ErrProductNotFound.Error()))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("plain string match must not map: got %d", rec.Code)
	}

	rec, body = dispatch(t, errors.Join(errors.New("lookup failed"), domain.ErrProductNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped sentinel should map, got %d", rec.Code)
	}
	if body["error"] != "product not found" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := dispatch(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := dispatch(t, errors.New("pq: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		t.Fatalf("prime response: %v", err)
	}
	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrProductNotFound, c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
}
