package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vikramsomai/portfolio-skills-manager/internal/api"
	"github.com/vikramsomai/portfolio-skills-manager/internal/api/handlers"
	"github.com/vikramsomai/portfolio-skills-manager/internal/api/middleware"
	"github.com/vikramsomai/portfolio-skills-manager/internal/auth"
	"github.com/vikramsomai/portfolio-skills-manager/internal/config"
	"github.com/vikramsomai/portfolio-skills-manager/internal/repositories"
	"github.com/vikramsomai/portfolio-skills-manager/internal/services"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
)

func main() {
	cfg := config.Load()

	db, err := repositories.Connect(cfg.DBURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := repositories.SeedAdmin(db, cfg.Admin); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	users := repositories.NewUserRepository(db)
	skills := repositories.NewSkillRepository(db)
	contacts := repositories.NewContactRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	validate := validation.New()

	h := api.Handlers{
		Auth:     handlers.NewAuthHandler(services.NewAuthService(users, tokens, validate)),
		Skills:   handlers.NewSkillHandler(services.NewSkillService(skills, validate)),
		Contacts: handlers.NewContactHandler(services.NewContactService(contacts, validate)),
	}
	ac := middleware.NewAccessControl(tokens, users)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(cfg, ac, h),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting portfolio server on port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
