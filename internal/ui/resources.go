package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
)

// LogoPattern matches logo candidates next to the executable
const LogoPattern = "*.png"

// LoadLogoResource loads the first PNG found in dir
func LoadLogoResource(dir string) (fyne.Resource, error) {
	matches, err := filepath.Glob(filepath.Join(dir, LogoPattern))
	if err != nil {
		return nil, fmt.Errorf("find logo: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no logo in %s", dir)
	}
	sort.Strings(matches)
	return fyne.LoadResourceFromPath(matches[0])
}
