// Package main starts the printzone placement server.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/app"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/config"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/constraint"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/session"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/storage"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
		log.Printf("debug: enabled")
	}
	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return err
	}
	logStartup(cfg, tuning, debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repo, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	sess := session.New(cfg.UIPassword, cfg.PasswordMode)
	editor := element.NewEditor(constraint.New(tuning))

	appInstance, err := app.New(cfg, sess, editor, repo)
	if err != nil {
		return err
	}
	if err := appInstance.Start(ctx); err != nil {
		return err
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config, tuning constraint.Tuning, debug bool) {
	log.Printf("printzone starting")
	logEnvStatus(cfg)
	logFileStatus("delimitation", cfg.DelimitationPath)
	logFileStatus("tuning", cfg.TuningPath)
	log.Printf("database: %s", cfg.DBPath)
	if debug {
		log.Printf("tuning: %+v", tuning)
	}
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.PasswordMode {
		if strings.TrimSpace(os.Getenv("UI_PASSWORD")) == "" {
			log.Printf("env UI_PASSWORD: missing")
		} else {
			log.Printf("env UI_PASSWORD: set")
		}
	} else {
		log.Printf("env PASSWORD_MODE: disabled (dev mode)")
	}
}

// logFileStatus reports whether an optional data file is present.
func logFileStatus(name, path string) {
	if fileExists(path) {
		log.Printf("%s check: ok (%s)", name, path)
		return
	}
	log.Printf("%s check: missing, using defaults (%s)", name, path)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
