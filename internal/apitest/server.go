// Package apitest provides an in-process fake of the sportactive backend for
// tests: a handful of REST endpoints speaking the production envelope, HS256
// tokens, and bcrypt-hashed passwords. It is not a reference server — just
// enough surface to exercise the client end to end.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarpovs/sportactive/internal/client/models"
	"github.com/akarpovs/sportactive/internal/common"
)

type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

type account struct {
	rec  models.UserRecord
	hash []byte
}

// Server is the fake backend. URL points at the listening httptest server
// and already includes the /api prefix expected by the client.
type Server struct {
	URL string

	srv      *httptest.Server
	secret   []byte
	tokenTTL time.Duration

	mu         sync.Mutex
	users      map[int64]*account
	byName     map[string]int64
	nextUserID int64
	activities []models.Activity
}

func NewServer() *Server {
	s := &Server{
		secret:   []byte("apitest-secret"),
		tokenTTL: time.Hour,
		users:    make(map[int64]*account),
		byName:   make(map[string]int64),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/users/register", s.handleRegister)
	mux.HandleFunc("POST /api/users/login", s.handleLogin)
	mux.HandleFunc("GET /api/users/{id}", s.requireAuth(s.handleGetUser))
	mux.HandleFunc("PUT /api/users/{id}", s.requireAuth(s.handleUpdateUser))
	mux.HandleFunc("GET /api/activities", s.handleListActivities)

	s.srv = httptest.NewServer(mux)
	s.URL = s.srv.URL + "/api"
	return s
}

func (s *Server) Close() { s.srv.Close() }

// SeedActivities replaces the activity fixtures served by GET /activities.
func (s *Server) SeedActivities(list []models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = list
}

// IssueToken mints a token for an arbitrary user id, optionally already
// expired, for tests that need a crafted credential.
func (s *Server) IssueToken(userID int64, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
		UserID:           userID,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return signed
}

func writeEnvelope(w http.ResponseWriter, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	body := map[string]any{"success": message == ""}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) requireAuth(next func(w http.ResponseWriter, r *http.Request, userID int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(header, common.BearerPrefix)

		c := &claims{}
		token, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (any, error) {
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r, c.UserID)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, nil, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[req.Username]; exists {
		writeEnvelope(w, nil, "username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		writeEnvelope(w, nil, "internal error")
		return
	}

	s.nextUserID++
	rec := models.UserRecord{
		ID:       s.nextUserID,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		RealName: req.RealName,
	}
	s.users[rec.ID] = &account{rec: rec, hash: hash}
	s.byName[req.Username] = rec.ID

	writeEnvelope(w, rec, "")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, nil, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byName[req.Username]
	if !ok {
		writeEnvelope(w, nil, "wrong username or password")
		return
	}
	acc := s.users[id]
	if bcrypt.CompareHashAndPassword(acc.hash, []byte(req.Password)) != nil {
		writeEnvelope(w, nil, "wrong username or password")
		return
	}

	rec := acc.rec
	rec.Token = s.IssueToken(rec.ID, time.Now().Add(s.tokenTTL))
	writeEnvelope(w, rec, "")
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeEnvelope(w, nil, "invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[id]
	if !ok {
		writeEnvelope(w, nil, "user not found")
		return
	}
	writeEnvelope(w, acc.rec, "")
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeEnvelope(w, nil, "invalid user id")
		return
	}

	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeEnvelope(w, nil, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[id]
	if !ok {
		writeEnvelope(w, nil, "user not found")
		return
	}
	if patch.Email != "" {
		acc.rec.Email = patch.Email
	}
	if patch.Phone != "" {
		acc.rec.Phone = patch.Phone
	}
	if patch.RealName != "" {
		acc.rec.RealName = patch.RealName
	}
	writeEnvelope(w, acc.rec, "")
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    s.activities,
		"total":   len(s.activities),
	})
}
