package adapthttp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nutrilog/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Services bundles the application services the adapter routes to.
type Services struct {
	Auth         *app.AuthService
	Foods        *app.FoodService
	MealLogs     *app.MealLogService
	Weights      *app.WeightService
	Heights      *app.HeightService
	Measurements *app.MeasurementService
	Dashboard    *app.DashboardService
}

// OIDCConfig holds the SSO provider settings. The zero value disables SSO.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// NewOIDCConfig discovers issuer and builds an enabled OIDCConfig.
func NewOIDCConfig(ctx context.Context, issuer, clientID, clientSecret, redirectURL string) (OIDCConfig, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return OIDCConfig{}, fmt.Errorf("discover oidc provider: %w", err)
	}
	return OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

// Options configures a Server.
type Options struct {
	// WebDir is served at / when non-empty.
	WebDir string
	// Location is used to interpret date-only request values. Defaults to time.Local.
	Location *time.Location
	Logger   *zap.Logger
	OIDC     OIDCConfig
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc        Services
	oidcConfig OIDCConfig
	webDir     string
	loc        *time.Location
	log        *zap.Logger
}

// New creates a Server wired to the given application services.
func New(svc Services, opts Options) *Server {
	s := &Server{
		svc:        svc,
		oidcConfig: opts.OIDC,
		webDir:     opts.WebDir,
		loc:        opts.Location,
		log:        opts.Logger,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	api.HandleFunc("/auth/signup", s.handleSignup)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.Handle("/auth/verify", s.authMiddleware(http.HandlerFunc(s.handleVerify)))
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api.Handle("/meals", s.authMiddleware(http.HandlerFunc(s.handleFoods)))
	api.Handle("/meals/{id}", s.authMiddleware(http.HandlerFunc(s.handleFood)))

	api.Handle("/meal-logs", s.authMiddleware(http.HandlerFunc(s.handleMealLogs)))
	api.Handle("/meal-logs/{id}", s.authMiddleware(http.HandlerFunc(s.handleMealLog)))

	api.Handle("/weight", s.authMiddleware(http.HandlerFunc(s.handleWeights)))
	api.Handle("/weight/{id}", s.authMiddleware(http.HandlerFunc(s.handleWeight)))

	api.Handle("/height", s.authMiddleware(http.HandlerFunc(s.handleHeights)))
	api.Handle("/height/{id}", s.authMiddleware(http.HandlerFunc(s.handleHeight)))

	api.Handle("/measurements", s.authMiddleware(http.HandlerFunc(s.handleMeasurements)))
	api.Handle("/measurements/{id}", s.authMiddleware(http.HandlerFunc(s.handleMeasurement)))

	api.Handle("/dashboard", s.authMiddleware(http.HandlerFunc(s.handleDashboard)))
	api.Handle("/dashboard/daily-log", s.authMiddleware(http.HandlerFunc(s.handleDailyLog)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.webDir != "" {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	return s.loggingMiddleware(withNoCache(root))
}
