package httpapi

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/idempotency"
	"github.com/triplinker/triplinker-api/internal/store"
)

// Server exposes the store's containers over HTTP. Handlers decode, delegate
// to a container operation, and encode; every piece of behavior lives in the
// containers.
type Server struct {
	store *store.Store
	idem  idempotency.Store
}

func NewServer(st *store.Store, idem idempotency.Store) *Server {
	return &Server{store: st, idem: idem}
}

// --- auth ---

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	role, ok := parseRole(w, r, req.Role)
	if !ok {
		return
	}

	user, err := s.store.Auth.Login(r.Context(), string(req.Email), req.Password, role)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	s.writeSession(w, r, user)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	role, ok := parseRole(w, r, req.Role)
	if !ok {
		return
	}

	user, err := s.store.Auth.Signup(r.Context(), req.Name, string(req.Email), req.Password, role)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	s.writeSession(w, r, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.store.Auth.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAuthSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toAuthStateResponse(s.store.Auth.Snapshot()))
}

// writeSession re-reads the freshly persisted token rather than re-minting,
// so the response token is byte-identical to the stored one.
func (s *Server) writeSession(w http.ResponseWriter, r *http.Request, user domain.User) {
	token, err := s.store.SessionToken(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "session token unavailable", nil)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: toUserDTO(user)})
}

// --- explore ---

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.Explore.FetchPosts(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	dtos := make([]postDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toPostDTO(p))
	}
	writeJSON(w, http.StatusOK, postListResponse{Posts: dtos})
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	id := domain.PostID(chi.URLParam(r, "postID"))
	if !s.store.Explore.ToggleLike(id) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "post not found", nil)
		return
	}
	post, _ := s.store.Explore.Post(id)
	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// --- places ---

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := s.store.Places.FetchProperties(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	dtos := make([]propertyDTO, 0, len(props))
	for _, p := range props {
		dtos = append(dtos, toPropertyDTO(p))
	}
	writeJSON(w, http.StatusOK, propertyListResponse{Properties: dtos})
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id := domain.PropertyID(chi.URLParam(r, "propertyID"))
	prop, err := s.store.Places.FetchPropertyByID(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyDTO(prop))
}

// handleAddProperty creates a listing. Because every call mints a fresh ID,
// retries honor an optional Idempotency-Key header: a duplicate request (same
// key, user, and body) replays the stored response instead of creating again.
func (s *Server) handleAddProperty(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "unreadable request body", nil)
		return
	}

	var fp idempotency.Fingerprint
	key := idempotency.Key(r.Header.Get("Idempotency-Key"))
	if key != "" && s.idem != nil {
		sess, _ := SessionFromContext(r.Context())
		sum := sha256.Sum256(body)
		fp = idempotency.Fingerprint{
			Key:      key,
			UserID:   sess.UserID,
			Method:   http.MethodPost,
			Route:    "POST /v1/places/properties",
			BodyHash: hex.EncodeToString(sum[:]),
		}
		if rec, ok, err := s.idem.Get(r.Context(), fp); err == nil && ok {
			w.Header().Set("Content-Type", rec.ContentType)
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.Body)
			return
		}
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	var req addPropertyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	prop, err := s.store.Places.AddProperty(r.Context(), toNewProperty(req))
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	resp, err := json.Marshal(toPropertyDTO(prop))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
		return
	}
	if key != "" && s.idem != nil {
		_ = s.idem.Put(r.Context(), fp, idempotency.Record{
			StatusCode:  http.StatusCreated,
			ContentType: "application/json",
			Body:        resp,
			CreatedAt:   time.Now().UTC(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(resp)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := domain.PropertyID(chi.URLParam(r, "propertyID"))
	if !s.store.Places.ToggleFavorite(id) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "property not found", nil)
		return
	}
	prop, _ := s.store.Places.Property(id)
	writeJSON(w, http.StatusOK, toPropertyDTO(prop))
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	s.store.Places.ClearSelected()
	w.WriteHeader(http.StatusNoContent)
}

// --- ai ---

func (s *Server) handleGenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var req generateItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	itinerary, err := s.store.AI.GenerateItinerary(r.Context(), req.Location, req.Budget)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItineraryDTO(itinerary))
}

func (s *Server) handleClearItinerary(w http.ResponseWriter, r *http.Request) {
	s.store.AI.ClearItinerary()
	w.WriteHeader(http.StatusNoContent)
}

// --- profile ---

func (s *Server) handleProfileStats(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing session", nil)
		return
	}
	stats, err := s.store.Profile.FetchStats(r.Context(), sess.UserID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TripsPlanned:  stats.TripsPlanned,
		PlacesVisited: stats.PlacesVisited,
		ReviewsGiven:  stats.ReviewsGiven,
		Followers:     stats.Followers,
		Following:     stats.Following,
	})
}

// --- helpers ---

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		msg := "malformed request body"
		if errors.Is(err, io.EOF) {
			msg = "missing request body"
		}
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
		return false
	}
	return true
}

func parseRole(w http.ResponseWriter, r *http.Request, raw string) (domain.Role, bool) {
	if raw == "" {
		return domain.RoleTraveler, true
	}
	role := domain.Role(raw)
	if !domain.ValidRole(role) {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "role must be traveler or business", map[string]any{"role": raw})
		return "", false
	}
	return role, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
