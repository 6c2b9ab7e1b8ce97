package commands

import (
	"fmt"

	"node-finder/internal/adapter/rpc"
	"node-finder/internal/adapter/shodan"
	"node-finder/internal/adapter/storage/chainlist"
	"node-finder/internal/adapter/storage/memory"
	"node-finder/internal/adapter/storage/registry"
	"node-finder/internal/application"
	"node-finder/internal/application/port"
	"node-finder/internal/config"
	"node-finder/internal/domain/entity"
	domainService "node-finder/internal/domain/service"
	"node-finder/internal/logger"

	"go.uber.org/zap"
)

// app holds the wired dependencies shared by all commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	finder port.FinderService
}

// buildApp loads configuration and wires every component.
func buildApp(opts *globalOptions, defaultLevel string) (*app, error) {
	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", opts.configDir, err)
	}
	switch {
	case opts.logLevel != "":
		cfg.Logger.Level = opts.logLevel
	case defaultLevel != "":
		cfg.Logger.Level = defaultLevel
	}

	log, err := logger.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	log.Debug("Initializing dependencies...")

	// Storage
	cacheRepo := memory.NewCacheRepository(*cfg, log)
	settingsRepo, err := memory.NewSettingsRepository(cfg.Settings, log)
	if err != nil {
		return nil, err
	}
	var registryOpts []registry.Option
	if cfg.Chainlist.Enabled {
		registryOpts = append(registryOpts,
			registry.WithMetadata(chainlist.NewRepository(cfg.Chainlist, log), cacheRepo, cfg.Chainlist.GetCacheTTL()))
	}
	chains := registry.New(cfg.Chains, log, registryOpts...)

	// Transports and checks. Both WS transports draw from one process-wide gate.
	wsGate := rpc.NewGate(cfg.Validator.WSMaxConcurrent)
	httpTransport := rpc.NewHTTPTransport(cfg.Validator.GetCallTimeout(), log)
	wsTransport := rpc.NewWSTransport(wsGate, cfg.Validator.GetCallTimeout(), log)
	archiveHTTP := rpc.NewHTTPTransport(cfg.Archive.CallTimeout, log)
	archiveWS := rpc.NewWSTransport(wsGate, cfg.Archive.CallTimeout, log)

	validators := map[entity.Transport]domainService.NodeValidator{
		entity.TransportHTTP: rpc.NewValidator(httpTransport, cfg.Validator.GetSequenceTimeout(), log),
		entity.TransportWS:   rpc.NewValidator(wsTransport, cfg.Validator.GetSequenceTimeout(), log),
	}
	prober := rpc.NewProber(cfg.Archive.Heights, cfg.Archive.GetTimeout(), log, archiveHTTP, archiveWS)
	reference := rpc.NewReferenceReader(httpTransport, log)

	// Services
	discovery := application.NewDiscoveryService(
		shodan.NewClient(cfg.Shodan, nil, log),
		validators,
		prober,
		reference,
		cfg.Discovery,
		log,
	)
	finder := application.NewFinderService(discovery, chains, settingsRepo, cfg.Discovery, log)

	if cfg.Shodan.APIKey == "" {
		log.Warn("No Shodan API key configured; searches will be rejected upstream")
	}

	return &app{cfg: cfg, logger: log, finder: finder}, nil
}
