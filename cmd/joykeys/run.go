// Package main starts the joykeys daemon.
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
	"syscall"
	"time"

	"github.com/frudas24/joykeys/internal/analog"
	"github.com/frudas24/joykeys/internal/app"
	"github.com/frudas24/joykeys/internal/config"
	"github.com/frudas24/joykeys/internal/hostinput"
	"github.com/frudas24/joykeys/internal/stick"
	"github.com/frudas24/joykeys/internal/stickcfg"
	"github.com/frudas24/joykeys/internal/tray"
)

// run wires the application and blocks until shutdown.
func run(skipCalib bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if skipCalib {
		cfg.SkipCalib = true
	}
	logStartup(cfg)

	profile, err := stick.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	source, err := analog.OpenSDL(profile.RawMin, profile.RawMax)
	if err != nil {
		return err
	}
	defer source.Close()
	log.Printf("joystick: %s", source.Name())

	keys, err := hostinput.NewKeySink()
	if err != nil {
		return err
	}

	store, err := stickcfg.Open(stickcfg.NewFileStore(cfg.ConfigPath))
	if err != nil {
		return err
	}
	log.Printf("stick mode: %v, up orientation: %v", store.Mode(), store.Orientation())

	appInstance, err := app.New(cfg, profile, source, keys, hostinput.NullAxisSink{}, store)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The analog source is not safe for concurrent use, so calibration
	// runs on the same goroutine as the polling loop.
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		appInstance.Calibrate()
		appInstance.Run(ctx)
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
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

	quit := make(chan struct{})
	if cfg.TrayEnabled {
		t := tray.New(appInstance.StepMode, func() { close(quit) })
		go t.Run()
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
	case <-quit:
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	cancel()
	<-loopDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("joykeys starting")
	logEnvStatus(cfg)
	log.Printf("quantizer: %s", cfg.Quantizer)
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
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
