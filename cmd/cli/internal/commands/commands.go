package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/skillnest/skillnest/internal/api"
	"github.com/skillnest/skillnest/internal/logger"
	"github.com/skillnest/skillnest/internal/session"
)

type Globals struct {
	Debug   bool
	Version string
	Server  string
	DataDir string
}

// fileConfig is the optional ~/.skillnest/config.yaml. Flags and env vars
// override it.
type fileConfig struct {
	Server   string `yaml:"server"`
	CacheDir string `yaml:"cache_dir"`
}

// app wires the session manager to the API gateway for one command run.
type app struct {
	manager *session.Manager
	client  *api.Client
}

func newApp(globals *Globals) (*app, error) {
	logger.Setup(globals.Debug)

	dataDir := globals.DataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".skillnest")
	}

	fileCfg := loadFileConfig(filepath.Join(dataDir, "config.yaml"))

	server := globals.Server
	if server == "" {
		server = fileCfg.Server
	}

	cfg := api.DefaultConfig()
	if server != "" {
		cfg.BaseURL = server
	}
	cfg.Debug = globals.Debug
	cfg.CacheDir = fileCfg.CacheDir
	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(dataDir, "cache")
	}

	store, err := session.NewStore(filepath.Join(dataDir, "session"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	// The manager supplies tokens to the client and the client serves the
	// manager's auth calls, so the token source resolves lazily.
	var manager *session.Manager
	client := api.NewClient(cfg, api.TokenSourceFunc(func() string {
		if manager == nil {
			return ""
		}
		return manager.AccessToken()
	}))
	manager = session.NewManager(store, client)

	return &app{manager: manager, client: client}, nil
}

// requireRoute initializes the session and gates the command through the
// route table, mapping redirect decisions to user-facing errors.
func (a *app) requireRoute(path string) error {
	a.manager.Initialize()

	switch decision := session.AuthorizeRoute(a.manager.Current(), path); decision {
	case session.RedirectLogin:
		return errors.New("you are not logged in, run 'skillnest login' first")
	case session.RedirectUnauthorized:
		return fmt.Errorf("your role %s does not allow this operation", a.manager.Role())
	case session.RedirectDashboard:
		return errors.New("you are already logged in, run 'skillnest logout' first")
	default:
		log.Debug().Str("path", path).Stringer("decision", decision).Msg("route authorized")
		return nil
	}
}

func loadFileConfig(path string) fileConfig {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ignoring unreadable config file")
		return fileConfig{}
	}

	return cfg
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// pageFooter prints the standard pagination summary after a table.
func pageFooter(count, shown int) {
	if count > shown {
		fmt.Printf("\nShowing %d of %d (use --page / --page-size to see more)\n", shown, count)
	}
}
