package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/queryform/handler"
	"github.com/dmitrymomot/queryform/pkg/binder"
)

type greetRequest struct {
	Name  string `query:"name" form:"name" json:"name"`
	Agree bool   `form:"agree" json:"agree"`
}

var greet = handler.HandlerFunc[handler.Context, greetRequest](
	func(ctx handler.Context, req greetRequest) handler.Response {
		return handler.JSON(req)
	},
)

func respond(resp handler.Response) handler.HandlerFunc[handler.Context, greetRequest] {
	return func(ctx handler.Context, req greetRequest) handler.Response {
		return resp
	}
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](
		binder.Query(),
		binder.Form(),
	))

	t.Run("query on GET, form skipped", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=Jane", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"name":"Jane","agree":false}}`, rec.Body.String())
	})

	t.Run("form overrides query", func(t *testing.T) {
		t.Parallel()
		body := url.Values{"name": {"Form"}, "agree": {"on"}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/?name=Query", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"name":"Form","agree":true}}`, rec.Body.String())
	})

	t.Run("malformed form is bad request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("agree=maybe"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong content type is unsupported", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<x/>"))
		req.Header.Set("Content-Type", "application/xml")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		respond(nil),
		handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_JSONErrorResponse(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(respond(handler.JSONError(handler.ErrNotFound)))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, rec.Body.String())
}

func TestWrap_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	failing := responseFunc(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("boom")
	})
	h := handler.Wrap(respond(failing))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

type responseFunc func(w http.ResponseWriter, r *http.Request) error

func (f responseFunc) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(r *http.Request)
		url   string
		want  bool
	}{
		{name: "plain request", url: "/", want: false},
		{name: "datastar header", url: "/", setup: func(r *http.Request) { r.Header.Set("Datastar-Request", "true") }, want: true},
		{name: "sse accept", url: "/", setup: func(r *http.Request) { r.Header.Set("Accept", "text/event-stream") }, want: true},
		{name: "query param", url: "/?datastar=%7B%7D", want: true},
		{name: "html accept", url: "/", setup: func(r *http.Request) { r.Header.Set("Accept", "text/html") }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.setup != nil {
				tt.setup(req)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("plain request has no sse", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := handler.NewContext(rec, req)

		assert.Same(t, req, ctx.Request())
		assert.Nil(t, ctx.SSE())
		assert.NoError(t, ctx.Err())
	})

	t.Run("datastar request creates sse once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Datastar-Request", "true")
		ctx := handler.NewContext(rec, req)

		sse := ctx.SSE()
		require.NotNil(t, sse)
		assert.Same(t, sse, ctx.SSE())
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	})
}
