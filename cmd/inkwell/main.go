package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/analytics"
	"inkwell/internal/config"
	"inkwell/internal/debug"
	"inkwell/internal/storage"
	"inkwell/internal/ui"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	pageDefault := config.GetString(config.KeyStartPage)
	storagePathDefault := config.GetString(config.KeyStoragePath)
	debugDefault := config.GetBool(config.KeyDebug)
	analyticsEndpointDefault := config.GetString(config.KeyAnalyticsEndpoint)
	analyticsKeyDefault := config.GetString(config.KeyAnalyticsKey)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	pageFlag := flag.String("page", pageDefault, "Slug of the page to open on startup")
	storagePathFlag := flag.String("storage-path", storagePathDefault, "Path to the preference store database")
	debugFlag := flag.Bool("debug", debugDefault, "Write a debug log to ~/.inkwell/debug.log")
	analyticsEndpointFlag := flag.String("analytics-endpoint", analyticsEndpointDefault, "Analytics collector URL (empty disables analytics)")
	analyticsKeyFlag := flag.String("analytics-write-key", analyticsKeyDefault, "Analytics write key")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		page:              pageFlag,
		storagePath:       storagePathFlag,
		debug:             debugFlag,
		analyticsEndpoint: analyticsEndpointFlag,
		analyticsKey:      analyticsKeyFlag,
	}, visited)

	if err := debug.Init(runtime.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}
	defer debug.Close()

	store := openStore(runtime.storagePath)
	if store != nil {
		defer store.Close()
	}

	appCfg := ui.Config{
		StartPage: runtime.page,
		Store:     store,
		Analytics: analytics.New(runtime.analyticsEndpoint, runtime.analyticsKey),
		Version:   Version,
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the preference database. A failure here leaves the
// reader fully usable: preferences simply do not persist, matching the
// behavior of the theme controller when storage is unavailable.
func openStore(path string) storage.Store {
	if path == "" {
		var err error
		path, err = config.DefaultStoragePath()
		if err != nil {
			debug.Logf("main: no storage path: %v", err)
			return nil
		}
	}
	store, err := storage.OpenSQLite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: preference store unavailable: %v\n", err)
		debug.Logf("main: open store %s: %v", path, err)
		return nil
	}
	return store
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	page              *string
	storagePath       *string
	debug             *bool
	analyticsEndpoint *string
	analyticsKey      *string
}

type runtimeOptions struct {
	page              string
	storagePath       string
	debug             bool
	analyticsEndpoint string
	analyticsKey      string
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	page := strings.TrimSpace(config.GetString(config.KeyStartPage))
	if flagWasExplicitlySet("page", visited) {
		page = strings.TrimSpace(*flags.page)
	}

	storagePath := strings.TrimSpace(config.GetString(config.KeyStoragePath))
	if flagWasExplicitlySet("storage-path", visited) {
		storagePath = strings.TrimSpace(*flags.storagePath)
	}

	debugEnabled := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) {
		debugEnabled = *flags.debug
	}

	endpoint := strings.TrimSpace(config.GetString(config.KeyAnalyticsEndpoint))
	if flagWasExplicitlySet("analytics-endpoint", visited) {
		endpoint = strings.TrimSpace(*flags.analyticsEndpoint)
	}

	writeKey := strings.TrimSpace(config.GetString(config.KeyAnalyticsKey))
	if flagWasExplicitlySet("analytics-write-key", visited) {
		writeKey = strings.TrimSpace(*flags.analyticsKey)
	}

	return runtimeOptions{
		page:              page,
		storagePath:       storagePath,
		debug:             debugEnabled,
		analyticsEndpoint: endpoint,
		analyticsKey:      writeKey,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
