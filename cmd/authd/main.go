package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"

	"github.com/cookbase/auth/pkg/admin"
	"github.com/cookbase/auth/pkg/auth"
	"github.com/cookbase/auth/pkg/bootstrap"
	"github.com/cookbase/auth/pkg/config"
	"github.com/cookbase/auth/pkg/health"
	"github.com/cookbase/auth/pkg/profile"
	"github.com/cookbase/auth/pkg/token"
	"github.com/cookbase/auth/pkg/user"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	loadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed loading configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var repo user.UserRepository
	var checks []health.Check
	if cfg.Database.UseInMemory {
		slog.Info("Using in-memory user store")
		repo = user.NewInMemoryUserRepository()
	} else {
		pool, err := pgxpool.New(ctx, cfg.Database.URL())
		if err != nil {
			slog.Error("Failed connecting to database",
				"host", cfg.Database.Host,
				"port", cfg.Database.Port,
				"database", cfg.Database.Name,
				"error", err)
			os.Exit(1)
		}
		defer pool.Close()
		slog.Info("Database connected", "database", cfg.Database.Name)

		repo = user.NewPostgresUserRepository(pool)
		checks = append(checks, health.NewDatabaseCheck(cfg.Database.Name, pool))
	}

	policy := user.NewDefaultPasswordPolicyChecker(&user.PasswordPolicy{
		MinLength:          cfg.PasswordPolicy.RequiredLength,
		RequireUppercase:   cfg.PasswordPolicy.RequireUppercase,
		RequireLowercase:   cfg.PasswordPolicy.RequireLowercase,
		RequireDigit:       cfg.PasswordPolicy.RequireDigit,
		RequireSpecialChar: cfg.PasswordPolicy.RequireSpecialChar,
	})
	userService := user.NewUserService(repo, user.WithPasswordPolicyChecker(policy))

	tokenService, err := token.NewService(cfg.Jwt.Secret, cfg.Jwt.Issuer, cfg.Jwt.Audience, cfg.Jwt.Expiry)
	if err != nil {
		slog.Error("Failed creating token service", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.SeedAdmin(ctx, userService, cfg.Admin); err != nil {
		slog.Error("Failed seeding admin user", "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(userService, tokenService)
	healthService := health.NewService(checks...)
	tokenAuth := auth.NewVerifier(cfg.Jwt.Secret, cfg.Jwt.Issuer, cfg.Jwt.Audience)

	server := app.Default()
	routes(server.R, cfg, authService, userService, tokenService, healthService, tokenAuth)

	slog.Info("Starting "+cfg.Api.Title, "version", cfg.Api.VersionString())
	server.Run()
}

func routes(
	r *chi.Mux,
	cfg config.Config,
	authService *auth.Service,
	userService *user.UserService,
	tokenService *token.Service,
	healthService *health.Service,
	tokenAuth *jwtauth.JWTAuth,
) {
	r.Mount("/Auth", auth.Handler(auth.NewHandle(authService)))
	r.Mount("/Health", health.Handler(health.NewHandle(healthService)))

	r.Get("/Api", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]string{
			"title":       cfg.Api.Title,
			"description": cfg.Api.Description,
			"version":     cfg.Api.VersionString(),
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(auth.Authenticator(tokenAuth))
		r.Use(auth.ClaimSetMiddleware)

		r.Mount("/User/Me", profile.Handler(profile.NewHandle(userService, tokenService)))

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Mount("/Admin", admin.Handler(admin.NewHandle(userService)))
		})
	})
}

func loadEnvFile() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}

	execDir := filepath.Dir(execPath)
	envFile := filepath.Join(execDir, ".env")

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		cwd, _ := os.Getwd()
		envFile = filepath.Join(cwd, ".env")
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Debug("No .env file found (using environment variables or defaults)")
		return
	}

	slog.Info("Loading configuration from .env file", "path", envFile)
	if err := godotenv.Load(envFile); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}
}
