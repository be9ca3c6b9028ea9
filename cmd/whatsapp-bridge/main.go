package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	waLog "go.mau.fi/whatsmeow/util/log"

	"github.com/clippy-oss/whatsapp-bridged/internal/cli"
	"github.com/clippy-oss/whatsapp-bridged/internal/config"
	"github.com/clippy-oss/whatsapp-bridged/internal/domain"
	"github.com/clippy-oss/whatsapp-bridged/internal/logger"
	"github.com/clippy-oss/whatsapp-bridged/internal/metrics"
	"github.com/clippy-oss/whatsapp-bridged/internal/repository"
	"github.com/clippy-oss/whatsapp-bridged/internal/service"
	grpcTransport "github.com/clippy-oss/whatsapp-bridged/internal/transport/grpc"
	mcpTransport "github.com/clippy-oss/whatsapp-bridged/internal/transport/mcp"
	"github.com/clippy-oss/whatsapp-bridged/internal/watchdog"
)

// RunMode defines how the application runs
type RunMode string

const (
	RunModeServer      RunMode = "server"
	RunModeInteractive RunMode = "interactive"
	RunModeHeadless    RunMode = "headless"
)

const bootstrapTimeout = 10 * time.Second

func main() {
	root := cli.NewRootCommand(run)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger.Init(cfg.LogLevel)
	log := logger.Module("bootstrap")
	log.Info().Str("mode", cfg.Mode).Msg("resolved configuration")

	mode := RunMode(cfg.Mode)

	waLogger := logger.NewWALogger("whatsmeow")

	db, err := initDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	ctx := context.Background()
	device, container, err := initDeviceStore(ctx, cfg.DatabasePath, waLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize device store: %w", err)
	}
	_ = container // Keep container reference to prevent GC

	msgRepo := repository.NewMessageRepository(db)
	chatRepo := repository.NewChatRepository(db)
	eventBus := domain.NewEventBus()
	metricsReg := metrics.New()
	eventBus.OnDrop = func() { metricsReg.BusEventsDropped.Inc() }

	// Contacts are stored by whatsmeow's built-in ContactStore, not in our repository.
	waSvc := service.NewWhatsAppService(
		device,
		eventBus,
		msgRepo,
		chatRepo,
		service.WhatsAppServiceConfig{
			MediaDownloadPath: cfg.MediaPath,
		},
		waLogger,
		metricsReg,
	)

	msgSvc := service.NewMessageService(msgRepo, chatRepo, waSvc)

	watchdogCtx, cancelWatchdog := context.WithCancel(ctx)
	defer cancelWatchdog()
	if cfg.ParentPID > 0 {
		go watchdog.Watch(watchdogCtx, cfg.ParentPID, logger.Module("watchdog"), os.Exit)
	}

	switch mode {
	case RunModeInteractive:
		runInteractiveMode(ctx, waSvc, msgSvc, device)
		return nil
	case RunModeHeadless:
		runHeadlessMode(ctx, waSvc, msgSvc, device)
		return nil
	default:
		return runServerMode(ctx, cfg, waSvc, msgSvc, device, metricsReg)
	}
}

func runServerMode(
	ctx context.Context,
	cfg *config.Config,
	waSvc *service.WhatsAppService,
	msgSvc *service.MessageService,
	device *store.Device,
	metricsReg *metrics.Registry,
) error {
	l := logger.Module("bootstrap")
	l.Info().Str("database", cfg.DatabasePath).Msg("WhatsApp bridge starting")

	grpcServer := grpcTransport.NewServer(
		waSvc,
		msgSvc,
		grpcTransport.ServerConfig{Address: cfg.GRPCAddress},
		metricsReg,
	)

	mcpServer := mcpTransport.NewServer(
		msgSvc,
		waSvc,
		mcpTransport.ServerConfig{Address: cfg.MCPAddress},
		metricsReg,
	)

	errCh := make(chan error, 2)
	readyCh := make(chan struct{})

	// The readiness gate only closes once the gRPC listener is bound;
	// bootstrap's "ready" line depends on that, not on the MCP server
	// (which has no equivalent handshake requirement).
	if err := grpcServer.Listen(); err != nil {
		return fmt.Errorf("failed to bind gRPC listener: %w", err)
	}
	close(readyCh)

	go func() {
		l.Info().Str("addr", cfg.GRPCAddress).Msg("starting gRPC server")
		if err := grpcServer.Serve(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		l.Info().Str("addr", cfg.MCPAddress).Msg("starting MCP SSE server")
		if err := mcpServer.Start(); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-readyCh:
	case <-time.After(bootstrapTimeout):
		return fmt.Errorf("bootstrap did not become ready within %s", bootstrapTimeout)
	}

	if device.ID != nil {
		l.Info().Msg("device registered, attempting auto-connect")
		go func() {
			time.Sleep(1 * time.Second)
			if err := waSvc.Connect(context.Background()); err != nil {
				l.Warn().Err(err).Msg("auto-connect failed")
			} else {
				l.Info().Msg("auto-connected to WhatsApp")
			}
		}()
	} else {
		l.Info().Msg("no device registered, use gRPC GetPairingQR to pair a device")
	}

	// The host depends on this exact literal line as its startup barrier.
	fmt.Println("ready")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		l.Error().Err(err).Msg("server error")
	case sig := <-sigCh:
		l.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	l.Info().Msg("disconnecting WhatsApp")
	waSvc.Disconnect()

	l.Info().Msg("stopping gRPC server")
	grpcServer.Stop()

	l.Info().Msg("stopping MCP server")
	if err := mcpServer.Stop(shutdownCtx); err != nil {
		l.Warn().Err(err).Msg("MCP server stop error")
	}

	l.Info().Msg("shutdown complete")
	return nil
}

func runInteractiveMode(ctx context.Context, waSvc *service.WhatsAppService, msgSvc *service.MessageService, device *store.Device) {
	log := logger.Module("cli")
	if device.ID != nil {
		if err := waSvc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("auto-connect failed")
		}
	}

	handler := cli.NewCommandHandler(waSvc, msgSvc)
	interactiveCLI := cli.NewInteractiveCLI(handler)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := interactiveCLI.Run(ctx); err != nil && err != context.Canceled {
		log.Warn().Err(err).Msg("CLI error")
	}

	waSvc.Disconnect()
}

func runHeadlessMode(ctx context.Context, waSvc *service.WhatsAppService, msgSvc *service.MessageService, device *store.Device) {
	if device.ID != nil {
		_ = waSvc.Connect(ctx) // reported to the caller via the JSON response stream
	}

	handler := cli.NewCommandHandler(waSvc, msgSvc)
	headlessCLI := cli.NewHeadlessCLI(handler)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	_ = headlessCLI.Run(ctx) // errors surface through the JSON response stream

	waSvc.Disconnect()
}

func initDatabase(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")

	// Contacts are stored by whatsmeow's built-in ContactStore (whatsmeow_contacts table).
	err = db.AutoMigrate(
		&repository.MessageModel{},
		&repository.ChatModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func initDeviceStore(ctx context.Context, dbPath string, waLogger waLog.Logger) (*store.Device, *sqlstore.Container, error) {
	waDBPath := dbPath[:len(dbPath)-3] + "_wa.db"

	container, err := sqlstore.New(ctx, "sqlite3", "file:"+waDBPath+"?_foreign_keys=on", waLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sqlstore container: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get device: %w", err)
	}

	return device, container, nil
}
