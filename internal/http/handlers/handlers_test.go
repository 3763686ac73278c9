package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-games-backend/internal/domain"
	"github.com/tbourn/go-games-backend/internal/services"
)

// ---------- stub services ----------

type stubCategories struct {
	items []domain.Category
	err   error
}

func (s stubCategories) List(context.Context) ([]domain.Category, error) { return s.items, s.err }

func (s stubCategories) Get(_ context.Context, raw string) (*domain.Category, error) {
	slug, err := services.NormalizeSlug(raw)
	if err != nil {
		return nil, err
	}
	for _, c := range s.items {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, services.NotFound(services.ParamSlug)
}

type stubReviews struct {
	review   *domain.Review
	comments []domain.Comment
	err      error
}

func (s stubReviews) Get(_ context.Context, raw string) (*domain.Review, error) {
	id, err := services.ParseID(services.ParamReviewID, raw)
	if err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.review == nil || s.review.ReviewID != id {
		return nil, services.NotFound(services.ParamReviewID)
	}
	return s.review, nil
}

func (s stubReviews) Comments(ctx context.Context, raw string) ([]domain.Comment, error) {
	if _, err := s.Get(ctx, raw); err != nil {
		return nil, err
	}
	return s.comments, nil
}

type stubUsers struct{ items []domain.User }

func (s stubUsers) List(context.Context) ([]domain.User, error) { return s.items, nil }

var agricola = &domain.Review{
	ReviewID:     1,
	Title:        "Agricola",
	Designer:     "Uwe Rosenberg",
	Owner:        "mallionaire",
	ReviewImgURL: domain.DefaultReviewImgURL,
	ReviewBody:   "Farmyard fun!",
	Category:     "euro game",
	CreatedAt:    time.Date(2021, 1, 18, 10, 0, 20, 514_000_000, time.UTC),
	Votes:        1,
}

func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.NoRoute(RouteNotFound)
	api := r.Group("/api")
	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:slug", h.GetCategory)
	api.GET("/reviews/:review_id", h.GetReview)
	api.GET("/reviews/:review_id/comments", h.ListReviewComments)
	api.GET("/users", h.ListUsers)
	return r
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body.Msg
}

// ---------- tests ----------

func TestGetReview_ExactBody(t *testing.T) {
	r := newTestRouter(New(stubCategories{}, stubReviews{review: agricola}, stubUsers{}))

	w := do(r, http.MethodGet, "/api/reviews/1")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := `{"review":{"review_id":1,"title":"Agricola","designer":"Uwe Rosenberg","owner":"mallionaire",` +
		`"review_img_url":"https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",` +
		`"review_body":"Farmyard fun!","category":"euro game","created_at":"2021-01-18T10:00:20.514Z","votes":1}}`
	if got := w.Body.String(); got != want {
		t.Fatalf("body mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestGetReview_ErrorClassification(t *testing.T) {
	r := newTestRouter(New(stubCategories{}, stubReviews{review: agricola}, stubUsers{}))

	cases := []struct {
		path   string
		status int
		msg    string
	}{
		{"/api/reviews/999999", http.StatusNotFound, "review_id not found"},
		{"/api/reviews/epidemic", http.StatusBadRequest, "bad request - review_id is not a number"},
		{"/api/reviews/0", http.StatusBadRequest, "bad request - review_id is not a number"},
		{"/api/reviews/-1", http.StatusBadRequest, "bad request - review_id is not a number"},
		{"/api/reviews/1.5", http.StatusBadRequest, "bad request - review_id is not a number"},
		{"/api/reviews/99999999999999999999", http.StatusBadRequest, "bad request - review_id is not a number"},
		{"/api/categorys", http.StatusNotFound, "Route not found"},
		{"/api/", http.StatusNotFound, "Route not found"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodGet, tc.path)
		if w.Code != tc.status {
			t.Fatalf("%s: status=%d want %d (body=%s)", tc.path, w.Code, tc.status, w.Body.String())
		}
		if got := msgOf(t, w); got != tc.msg {
			t.Fatalf("%s: msg=%q want %q", tc.path, got, tc.msg)
		}
	}
}

func TestGetReview_StorageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	lg := zerolog.New(&buf)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("logger", &lg); c.Next() })
	r.Use(ErrorHandler())
	h := New(stubCategories{}, stubReviews{err: services.Storage(errors.New("dial tcp: connection refused"))}, stubUsers{})
	r.GET("/api/reviews/:review_id", h.GetReview)

	before := testutil.ToFloat64(apiErrors.WithLabelValues("storage"))
	w := do(r, http.MethodGet, "/api/reviews/1")

	if w.Code != http.StatusInternalServerError || msgOf(t, w) != "Internal server error" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("cause leaked to client: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), "connection refused") {
		t.Fatalf("expected error log with cause, got: %s", buf.String())
	}
	if after := testutil.ToFloat64(apiErrors.WithLabelValues("storage")); after != before+1 {
		t.Fatalf("api_errors_total{kind=storage} = %v; want %v", after, before+1)
	}
}

func TestUnclassifiedErrorIsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/x", func(c *gin.Context) { _ = c.Error(errors.New("plain")) })

	w := do(r, http.MethodGet, "/x")
	if w.Code != http.StatusInternalServerError || msgOf(t, w) != "Internal server error" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
		_ = c.Error(services.NotFound("x"))
	})

	w := do(r, http.MethodGet, "/x")
	if w.Code != http.StatusTeapot || w.Body.String() != "short and stout" {
		t.Fatalf("response overwritten: %d %s", w.Code, w.Body.String())
	}
}

func TestListCategories(t *testing.T) {
	cats := []domain.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
	}
	r := newTestRouter(New(stubCategories{items: cats}, stubReviews{}, stubUsers{}))

	w := do(r, http.MethodGet, "/api/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp map[string][]map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	got := resp["categories"]
	if len(resp) != 1 || len(got) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	for _, c := range got {
		if len(c) != 2 || c["slug"] == nil || c["description"] == nil {
			t.Fatalf("unexpected category keys: %v", c)
		}
	}
}

func TestListCategories_EmptyIsArray(t *testing.T) {
	r := newTestRouter(New(stubCategories{}, stubReviews{}, stubUsers{}))
	w := do(r, http.MethodGet, "/api/categories")
	if w.Body.String() != `{"categories":[]}` {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestGetCategory(t *testing.T) {
	cats := []domain.Category{{Slug: "euro game", Description: "Abstact games that involve little luck"}}
	r := newTestRouter(New(stubCategories{items: cats}, stubReviews{}, stubUsers{}))

	w := do(r, http.MethodGet, "/api/categories/euro%20game")
	if w.Code != http.StatusOK || w.Body.String() != `{"category":{"slug":"euro game","description":"Abstact games that involve little luck"}}` {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/categories/strategy")
	if w.Code != http.StatusNotFound || msgOf(t, w) != "slug not found" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/categories/%20%20")
	if w.Code != http.StatusBadRequest || msgOf(t, w) != "bad request - slug is not a valid slug" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestListReviewComments(t *testing.T) {
	comments := []domain.Comment{
		{CommentID: 2, Body: "My dog loved this game too!", Author: "mallionaire", ReviewID: 1, Votes: 13,
			CreatedAt: time.Date(2021, 1, 18, 10, 9, 5, 410_000_000, time.UTC)},
	}
	r := newTestRouter(New(stubCategories{}, stubReviews{review: agricola, comments: comments}, stubUsers{}))

	w := do(r, http.MethodGet, "/api/reviews/1/comments")
	want := `{"comments":[{"comment_id":2,"body":"My dog loved this game too!","author":"mallionaire","review_id":1,"votes":13,"created_at":"2021-01-18T10:09:05.410Z"}]}`
	if w.Code != http.StatusOK || w.Body.String() != want {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	r = newTestRouter(New(stubCategories{}, stubReviews{review: agricola}, stubUsers{}))
	if w := do(r, http.MethodGet, "/api/reviews/1/comments"); w.Body.String() != `{"comments":[]}` {
		t.Fatalf("empty comments body=%s", w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/reviews/2/comments"); w.Code != http.StatusNotFound {
		t.Fatalf("missing review status=%d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/reviews/x/comments"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status=%d", w.Code)
	}
}

func TestListUsers(t *testing.T) {
	users := []domain.User{{Username: "mallionaire", Name: "haz", AvatarURL: "https://example.com/a.png"}}
	r := newTestRouter(New(stubCategories{}, stubReviews{}, stubUsers{items: users}))

	w := do(r, http.MethodGet, "/api/users")
	want := `{"users":[{"username":"mallionaire","name":"haz","avatar_url":"https://example.com/a.png"}]}`
	if w.Code != http.StatusOK || w.Body.String() != want {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	r := newTestRouter(New(stubCategories{}, stubReviews{review: agricola}, stubUsers{}))
	for _, path := range []string{"/api/reviews/1", "/api/reviews/999999", "/api/reviews/epidemic"} {
		first := do(r, http.MethodGet, path)
		for i := 0; i < 3; i++ {
			again := do(r, http.MethodGet, path)
			if again.Code != first.Code || again.Body.String() != first.Body.String() {
				t.Fatalf("%s: response changed on repeat", path)
			}
		}
	}
}
