// Package content provides the built-in dashboards.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/fwojciec/brochure"
	brochurejson "github.com/fwojciec/brochure/json"
)

//go:embed dashboards/*.json
var dashboards embed.FS

// Names returns the names of the built-in dashboards in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(dashboards, "dashboards")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Builtin returns the built-in dashboard with the given name.
func Builtin(name string) (brochure.Dashboard, error) {
	data, err := dashboards.ReadFile(path.Join("dashboards", name+".json"))
	if err != nil {
		return brochure.Dashboard{}, fmt.Errorf("%q: %w", name, brochure.ErrUnknownDashboard)
	}
	d, err := brochurejson.UnmarshalDashboard(data)
	if err != nil {
		return brochure.Dashboard{}, fmt.Errorf("decode %q: %w", name, err)
	}
	return d, nil
}
