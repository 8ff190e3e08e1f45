package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meshjs/dashboard/handler"
	"github.com/meshjs/dashboard/pkg/cookie"
	"github.com/meshjs/dashboard/pkg/guard"
	"github.com/meshjs/dashboard/pkg/session"
)

// TokenIssuer mints session tokens. *token.Codec implements it.
type TokenIssuer interface {
	Issue(address string) (string, error)
	TTL() time.Duration
}

// Service serves the session lifecycle endpoints and starts sessions for an
// external login flow.
type Service struct {
	cfg          Config
	issuer       TokenIssuer
	resolver     guard.IdentityResolver
	cookies      *cookie.Manager
	errorHandler handler.ErrorHandler[handler.Context]
}

// MeResponse is the identity introspection body.
type MeResponse struct {
	Authenticated bool   `json:"authenticated"`
	Address       string `json:"address,omitempty"`
}

// LogoutResponse is the logout body.
type LogoutResponse struct {
	OK bool `json:"ok"`
}

// NewService builds the cookie manager from cfg. A nil errorHandler renders
// errors without logging.
func NewService(
	cfg Config,
	issuer TokenIssuer,
	resolver guard.IdentityResolver,
	errorHandler handler.ErrorHandler[handler.Context],
) (*Service, error) {
	if issuer == nil {
		return nil, ErrNoIssuer
	}

	cookies, err := cookie.New(cookie.PolicyFromConfig(cfg.Cookie, cfg.Production))
	if err != nil {
		return nil, errors.Join(ErrInvalidCookiePolicy, err)
	}

	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil)
	}

	return &Service{
		cfg:          cfg,
		issuer:       issuer,
		resolver:     resolver,
		cookies:      cookies,
		errorHandler: errorHandler,
	}, nil
}

// Handle mounts logout and me. No login route is served here: an external
// login flow calls StartSession once the wallet signature is checked.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/logout", handler.Wrap(s.logout,
		handler.WithDecorators(guard.Methods[struct{}](http.MethodPost)),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	// Any method, always 200.
	r.HandleFunc("/me", handler.Wrap(s.me,
		handler.WithDecorators(guard.Protect[struct{}](s.resolver, guard.Policy{})),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

// StartSession issues a token for address and writes it as the session cookie.
func (s *Service) StartSession(w http.ResponseWriter, address string) error {
	raw, err := s.issuer.Issue(address)
	if err != nil {
		return errors.Join(ErrStartSession, err)
	}
	s.cookies.Set(w, raw, int(s.issuer.TTL().Seconds()))
	return nil
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	s.cookies.Clear(ctx.ResponseWriter())
	return handler.JSON(LogoutResponse{OK: true})
}

func (s *Service) me(ctx handler.Context, _ struct{}) handler.Response {
	id, ok := session.FromContext(ctx)
	if !ok && s.resolver != nil {
		id = s.resolver.Resolve(ctx.Request())
	}
	return handler.JSON(MeResponse{Authenticated: id.Authenticated(), Address: id.Address})
}
