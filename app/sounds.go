package app

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

// listSounds returns the playable files in dir in natural order.
func listSounds(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() || !config.IsSoundFile(e.Name()) {
			continue
		}

		files = append(files, e.Name())
	}

	slices.SortFunc(files, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}

		return 0
	})

	return files, nil
}

func printSounds(w io.Writer, dir string, files []string) {
	if len(files) == 0 {
		pterm.Info.Printfln("No sounds found in %s", dir)
		return
	}

	data := [][]string{{"NAME", "FORMAT"}}

	for _, f := range files {
		data = append(data, []string{
			pathutil.StripExtension(f),
			strings.TrimPrefix(filepath.Ext(f), "."),
		})
	}

	ui.PrintTable(data, w)
}
