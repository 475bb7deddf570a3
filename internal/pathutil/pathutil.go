// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir  = "pomo"
	envName = "POMO_ENV"
)

// Paths holds the absolute locations of the files pomo reads and writes.
type Paths struct {
	ConfigFile string
	DBFile     string
	StatusFile string
	LogFile    string
	SoundsDir  string
	IconFile   string
	DataDir    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize computes the application paths. It must be called once at
// program startup before Must.
func Initialize() error {
	once.Do(func() {
		paths, initErr = New(appDir, strings.TrimSpace(os.Getenv(envName)))
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

// New resolves the paths for an application directory. A non-empty env
// suffixes every file name so that development data stays separate.
func New(dir, env string) (*Paths, error) {
	names := struct{ config, db, status, log string }{
		config: "config.yml",
		db:     "pomo.db",
		status: "status.json",
		log:    "pomo.log",
	}

	if env != "" {
		names.config = fmt.Sprintf("config_%s.yml", env)
		names.db = fmt.Sprintf("pomo_%s.db", env)
		names.status = fmt.Sprintf("status_%s.json", env)
		names.log = fmt.Sprintf("pomo_%s.log", env)
	}

	configFile, err := xdg.ConfigFile(filepath.Join(dir, names.config))
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	// xdg.DataFile creates the parent directories of the returned path
	dbFile, err := xdg.DataFile(filepath.Join(dir, names.db))
	if err != nil {
		return nil, fmt.Errorf("resolving data path: %w", err)
	}

	dataDir := filepath.Dir(dbFile)

	return &Paths{
		ConfigFile: configFile,
		DBFile:     dbFile,
		StatusFile: filepath.Join(dataDir, names.status),
		LogFile:    filepath.Join(dataDir, "log", names.log),
		SoundsDir:  filepath.Join(dataDir, "sounds"),
		IconFile:   filepath.Join(dataDir, "icon.png"),
		DataDir:    dataDir,
	}, nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
