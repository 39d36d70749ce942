package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pairchat/internal"
	"pairchat/runtime"
	"pairchat/runtime/workers"
	"pairchat/services"
	"pairchat/transport/httpapi"
	"pairchat/transport/ws"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the process
// exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Coordination core
	registry := runtime.NewRegistry()
	pairing := runtime.NewCoordinator(logger, registry)
	hub := ws.NewHub(logger)
	orchestrator := runtime.NewOrchestrator(logger, registry, pairing, hub)

	gateway := ws.NewGateway(logger, hub, orchestrator, config.SendBufferSize)
	authService := services.NewAuthService(config.AuthTokenDuration)

	// 3. HTTP surface
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", gateway.Handle)
	mux.HandleFunc("/validate-login", httpapi.LoginHandler(logger, authService))

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: mux,
	}

	// 4. Side surfaces: debug status + telemetry
	status := runtime.NewStatusSource(registry, pairing)
	internal.StartDebugServer(logger, config.DebugPort, status.Snapshot)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup := workers.NewSupervisor(logger)
	sup.Add(
		workers.NewHTTPServerWorker(logger, server),
		workers.NewPresenceTelemetryWorker(logger, status, config.TelemetryInterval),
	)

	logger.Info("Starting pairchat server",
		"addr", server.Addr, "debug_port", config.DebugPort)
	sup.Run(ctx)

	logger.Info("Server stopped")
	return exitOK, nil
}
