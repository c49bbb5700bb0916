// Package session holds the single source of truth for "who is logged in",
// synchronized with the durable client DB and the remote auth endpoints.
//
// The store moves through three states: Unknown (initial, Loading=true),
// Anonymous, and Authenticated. State is replaced wholesale on every
// transition; readers always see a consistent snapshot. Remote failures
// never escape as errors: every operation returns a Result value carrying
// a user-facing message.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akarpovs/sportactive/internal/client/api"
	"github.com/akarpovs/sportactive/internal/client/models"
	"github.com/akarpovs/sportactive/internal/client/repositories/metadata"
	"github.com/akarpovs/sportactive/internal/common"
	"github.com/akarpovs/sportactive/internal/dbx"
	"github.com/akarpovs/sportactive/internal/logging"
)

// AuthAPI is the slice of the backend client the store depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.UserRecord, error)
	Register(ctx context.Context, user models.NewUser) (*models.UserRecord, error)
	GetUser(ctx context.Context, id int64) (*models.UserRecord, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.UserRecord, error)
}

// State is a snapshot of the session. Invariant: Authenticated == (User != nil).
type State struct {
	User          *models.UserRecord
	Authenticated bool
	Loading       bool
	Err           string
}

// Result is the uniform outcome of session operations. Message is meant for
// direct display; it carries the server's reason verbatim when one exists
// and a generic fallback otherwise.
type Result struct {
	Success bool
	Message string
	User    *models.UserRecord
}

// Generic fallbacks for transport failures where no structured reason exists.
const (
	msgLoginFailed    = "login failed, please try again"
	msgRegisterFailed = "registration failed, please try again"
	msgUpdateFailed   = "update failed, please try again"
)

// Store is the session store. Construct with NewStore at application start
// and pass the handle down; there is no package-level instance.
type Store struct {
	mu     sync.Mutex
	state  State
	api    AuthAPI
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time

	// Per-operation generation counters. A response is applied only if its
	// generation is still the latest issued for that operation, so a slow
	// earlier call can never overwrite the outcome of a later one.
	loginGen  atomic.Int64
	updateGen atomic.Int64
}

func NewStore(authAPI AuthAPI, db *sql.DB, logger logging.Logger) *Store {
	return &Store{
		state:  State{Loading: true},
		api:    authAPI,
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Store) keys() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the persisted bearer token, or "" when absent. Satisfies
// api.TokenSource so the HTTP client decorates outbound requests from the
// same durable storage the store writes.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.keys().Get(ctx, common.StorageKeyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

var _ api.TokenSource = (*Store)(nil)

func (s *Store) setUser(u *models.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{User: u, Authenticated: true}
}

func (s *Store) setAnonymous(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Err: errMsg}
}

// Restore populates the session from durable storage. Invoked once at
// startup. Absent data resolves to Anonymous; malformed data or a token
// that is expired on its face purges all three keys and resolves to
// Anonymous. Otherwise the cached record is trusted optimistically; server
// verification is deferred to the first authenticated call, whose 401
// invalidates the session.
func (s *Store) Restore(ctx context.Context) {
	raw, err := s.keys().Get(ctx, common.StorageKeyUser)
	if err != nil {
		s.logger.Error(ctx, "failed to read persisted session", "error", err)
		s.setAnonymous("")
		return
	}
	if len(raw) == 0 {
		s.setAnonymous("")
		return
	}

	var rec models.UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Warn(ctx, "malformed persisted session, purging", "error", err)
		s.purge(ctx)
		s.setAnonymous("")
		return
	}

	if rec.Token != "" && tokenExpired(rec.Token, s.now()) {
		s.logger.Info(ctx, "persisted token expired, purging")
		s.purge(ctx)
		s.setAnonymous("")
		return
	}

	s.setUser(&rec)
}

// tokenExpired inspects the token's exp claim locally, without verifying the
// signature and without network I/O. Opaque (non-JWT) tokens and tokens
// without an exp claim pass.
func tokenExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

// Login authenticates against the backend. On success the returned record
// is persisted under the three durable keys and the store transitions to
// Authenticated. On failure the store transitions to an error-annotated
// Anonymous state; the error never propagates as a Go error.
func (s *Store) Login(ctx context.Context, creds models.Credentials) Result {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return Result{Message: "username and password are required"}
	}

	gen := s.loginGen.Add(1)

	rec, err := s.api.Login(ctx, creds)

	if gen != s.loginGen.Load() {
		s.logger.Warn(ctx, "stale login response dropped", "generation", gen)
		return Result{Message: "superseded by a newer request"}
	}

	if err != nil {
		msg := userMessage(err, msgLoginFailed)
		s.setAnonymous(msg)
		return Result{Message: msg}
	}

	if err := s.persist(ctx, rec); err != nil {
		s.logger.Error(ctx, "failed to persist session", "error", err)
		s.setAnonymous(msgLoginFailed)
		return Result{Message: msgLoginFailed}
	}

	s.setUser(rec)
	return Result{Success: true, User: rec}
}

// Register creates a new account. Registration does not imply login: session
// state is untouched on success.
func (s *Store) Register(ctx context.Context, user models.NewUser) Result {
	var problems []string
	if strings.TrimSpace(user.Username) == "" {
		problems = append(problems, "username is required")
	}
	if user.Password == "" {
		problems = append(problems, "password is required")
	}
	if strings.TrimSpace(user.Email) == "" {
		problems = append(problems, "email is required")
	}
	if len(problems) > 0 {
		return Result{Message: strings.Join(problems, "; ")}
	}

	rec, err := s.api.Register(ctx, user)
	if err != nil {
		return Result{Message: userMessage(err, msgRegisterFailed)}
	}
	return Result{Success: true, User: rec}
}

// Logout clears the three durable keys and transitions to Anonymous. Purely
// local: no remote call is made and none is required to succeed.
func (s *Store) Logout(ctx context.Context) error {
	err := s.purge(ctx)
	s.setAnonymous("")
	return err
}

// UpdateUser updates the profile. On success the stored record is replaced
// and re-persisted and the store stays Authenticated; on failure state is
// left untouched.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) Result {
	gen := s.updateGen.Add(1)

	rec, err := s.api.UpdateUser(ctx, id, patch)

	if gen != s.updateGen.Load() {
		s.logger.Warn(ctx, "stale update response dropped", "generation", gen)
		return Result{Message: "superseded by a newer request"}
	}

	if err != nil {
		return Result{Message: userMessage(err, msgUpdateFailed)}
	}

	if err := s.persist(ctx, rec); err != nil {
		s.logger.Error(ctx, "failed to persist updated session", "error", err)
		return Result{Message: msgUpdateFailed}
	}

	s.setUser(rec)
	return Result{Success: true, User: rec}
}

// Invalidate handles an authoritative invalid-session signal (a 401 from
// any endpoint): the durable keys are purged and the in-memory state drops
// to Anonymous so storage and state stay coherent.
func (s *Store) Invalidate(ctx context.Context) {
	if err := s.purge(ctx); err != nil {
		s.logger.Error(ctx, "failed to purge invalid session", "error", err)
	}
	s.setAnonymous("")
}

// persist writes the three durable keys in one transaction. An update
// response may omit the token; the previously stored token is kept then.
func (s *Store) persist(ctx context.Context, rec *models.UserRecord) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		token := rec.Token
		if token == "" {
			current, err := repo.Get(ctx, common.StorageKeyToken)
			if err != nil {
				return err
			}
			token = string(current)
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := repo.Set(ctx, common.StorageKeyUser, data); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.StorageKeyUserID, []byte(strconv.FormatInt(rec.ID, 10))); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyToken, []byte(token))
	})
}

// purge removes the three durable keys in one transaction.
func (s *Store) purge(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range []string{common.StorageKeyUser, common.StorageKeyUserID, common.StorageKeyToken} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// userMessage extracts a display message from err: the server's reason
// verbatim for explicit rejections, the generic fallback for transport
// failures where no structured reason exists.
func userMessage(err error, fallback string) string {
	var remote *api.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}
