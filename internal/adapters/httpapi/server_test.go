package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memclock "github.com/triplinker/triplinker-api/internal/adapters/memory/clock"
	memidempotency "github.com/triplinker/triplinker-api/internal/adapters/memory/idempotency"
	memtokenstore "github.com/triplinker/triplinker-api/internal/adapters/memory/tokenstore"
	mockauth "github.com/triplinker/triplinker-api/internal/adapters/mock/authprovider"
	mockfeed "github.com/triplinker/triplinker-api/internal/adapters/mock/feedprovider"
	mockitinerary "github.com/triplinker/triplinker-api/internal/adapters/mock/itineraryprovider"
	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	mockplace "github.com/triplinker/triplinker-api/internal/adapters/mock/placeprovider"
	mockstats "github.com/triplinker/triplinker-api/internal/adapters/mock/statsprovider"
	"github.com/triplinker/triplinker-api/internal/platform/auth/sessiontoken"
	"github.com/triplinker/triplinker-api/internal/store"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	sim := latency.NewSimulator(0)
	clk := memclock.NewManualClock(time.Unix(1000, 0).UTC())
	signer := sessiontoken.New([]byte("test-key"), time.Hour, clk)

	st := store.New(store.Providers{
		Auth:        mockauth.NewProvider(sim, clk),
		Feed:        mockfeed.NewProvider(sim),
		Places:      mockplace.NewProvider(sim),
		Itineraries: mockitinerary.NewProvider(sim, clk),
		Stats:       mockstats.NewProvider(sim),
		Tokens:      memtokenstore.NewStore(),
		Sessions:    signer,
		Logger:      zerolog.Nop(),
	})

	return NewRouter(NewServer(st, memidempotency.NewStore()), RouterOptions{
		AuthMiddleware: NewAuthMiddleware(signer),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func loginForToken(t *testing.T, h http.Handler) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email":    "a@example.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestLogin(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email":    "a@example.com",
		"password": "pw",
		"role":     "business",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string  `json:"token"`
		User  userDTO `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@example.com", resp.User.Email)
	assert.Equal(t, "My Business", resp.User.Name)
	assert.Equal(t, "business", resp.User.Role)
}

func TestLogin_MissingPassword(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email": "a@example.com",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "Email and password are required", resp.Error.Message)
}

func TestLogin_UnknownRole(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email":    "a@example.com",
		"password": "pw",
		"role":     "admin",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestSignupThenSession(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/signup", "", map[string]any{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ana", resp.User.Name)

	sess := doJSON(t, h, http.MethodGet, "/v1/auth/session", resp.Token, nil)
	require.Equal(t, http.StatusOK, sess.Code, sess.Body.String())

	var state authStateResponse
	require.NoError(t, json.Unmarshal(sess.Body.Bytes(), &state))
	assert.True(t, state.Authenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "ana@example.com", state.User.Email)
}

func TestProtectedRoutes_RequireBearer(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	for _, path := range []string{
		"/v1/explore/posts",
		"/v1/places/properties",
		"/v1/profile/stats",
		"/v1/auth/session",
	} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "UNAUTHORIZED", resp.Error.Code, path)
	}
}

func TestProtectedRoutes_RejectGarbageToken(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/v1/explore/posts", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListPosts(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodGet, "/v1/explore/posts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp postListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 6)
	assert.Equal(t, "p_001", resp.Posts[0].ID)
}

func TestToggleLike(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)
	doJSON(t, h, http.MethodGet, "/v1/explore/posts", token, nil)

	rec := doJSON(t, h, http.MethodPost, "/v1/explore/posts/p_001/like", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var post postDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.True(t, post.IsLiked)
	assert.Equal(t, 1285, post.Likes)

	missing := doJSON(t, h, http.MethodPost, "/v1/explore/posts/p_999/like", token, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestProperties(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodGet, "/v1/places/properties", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp propertyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Properties, 4)

	detail := doJSON(t, h, http.MethodGet, "/v1/places/properties/prop_001", token, nil)
	require.Equal(t, http.StatusOK, detail.Code, detail.Body.String())

	var prop propertyDTO
	require.NoError(t, json.Unmarshal(detail.Body.Bytes(), &prop))
	assert.Equal(t, "Villa Serenita", prop.Name)

	missing := doJSON(t, h, http.MethodGet, "/v1/places/properties/prop_404", token, nil)
	require.Equal(t, http.StatusNotFound, missing.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(missing.Body.Bytes(), &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Error.Code)
	assert.Equal(t, "Property not found", errResp.Error.Message)
}

func TestAddProperty_Defaults(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/places/properties", token, map[string]any{})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var prop propertyDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prop))
	assert.Equal(t, "New Property", prop.Name)
	assert.Equal(t, "hotel", prop.Type)
	assert.Equal(t, float64(100), prop.PricePerNight)
	assert.Equal(t, "You", prop.HostName)

	// The new listing lands at the front of the working list.
	list := doJSON(t, h, http.MethodGet, "/v1/places/properties", token, nil)
	var resp propertyListResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	require.Len(t, resp.Properties, 4) // refetch replaces wholesale
}

func TestAddProperty_UnknownType(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/places/properties", token, map[string]any{
		"type": "castle",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestGenerateItinerary(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/ai/itinerary", token, map[string]any{
		"location": "Lisbon",
		"budget":   "300",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var it itineraryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
	assert.Equal(t, "Lisbon", it.Location)
	assert.Equal(t, 3, it.TotalDays)
	assert.Equal(t, 276, it.EstimatedCost)
	assert.Len(t, it.Days, 3)

	clear := doJSON(t, h, http.MethodDelete, "/v1/ai/itinerary", token, nil)
	assert.Equal(t, http.StatusNoContent, clear.Code)
}

func TestGenerateItinerary_InvalidInput(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/ai/itinerary", token, map[string]any{
		"location": "Lisbon",
		"budget":   "abc",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_BUDGET", resp.Error.Code)

	blank := doJSON(t, h, http.MethodPost, "/v1/ai/itinerary", token, map[string]any{
		"location": "   ",
		"budget":   "300",
	})
	require.Equal(t, http.StatusUnprocessableEntity, blank.Code)

	require.NoError(t, json.Unmarshal(blank.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_LOCATION", resp.Error.Code)
}

func TestProfileStats(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodGet, "/v1/profile/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.GreaterOrEqual(t, stats.TripsPlanned, 12)
	assert.GreaterOrEqual(t, stats.Followers, 340)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The bearer token is still cryptographically valid, but the session
	// slice is anonymous again.
	sess := doJSON(t, h, http.MethodGet, "/v1/auth/session", token, nil)
	require.Equal(t, http.StatusOK, sess.Code)

	var state authStateResponse
	require.NoError(t, json.Unmarshal(sess.Body.Bytes(), &state))
	assert.False(t, state.Authenticated)
}

func TestMalformedBody(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestAddProperty_IdempotencyKeyReplays(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	token := loginForToken(t, h)
	doJSON(t, h, http.MethodGet, "/v1/places/properties", token, nil)

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/places/properties", bytes.NewBufferString(`{"name":"Cliff House"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Idempotency-Key", "key-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := post()
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := post()
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String(), "duplicate request must replay, not re-create")

	// Only one listing was prepended to the working list.
	var resp propertyListResponse
	list := doJSON(t, h, http.MethodGet, "/v1/places/properties", token, nil)
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	require.Len(t, resp.Properties, 4) // refetch replaced the list wholesale

	var created propertyDTO
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &created))
	assert.Equal(t, "Cliff House", created.Name)
}
