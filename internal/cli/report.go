package cli

import (
	"fmt"
	"io"

	"github.com/GriffinCanCode/userdirs/pkg/userdirs"
)

// Report holds one resolved snapshot of every user directory. Absent
// directories are nil so that JSON and YAML render them as null.
type Report struct {
	Config  *string            `json:"config" yaml:"config"`
	Data    *string            `json:"data" yaml:"data"`
	Cache   *string            `json:"cache" yaml:"cache"`
	Special map[string]*string `json:"special" yaml:"special"`
}

// buildReport resolves every directory through the accessor.
func buildReport(acc *userdirs.Accessor) (*Report, error) {
	rep := &Report{Special: make(map[string]*string, len(userdirs.Specials()))}

	var err error
	if rep.Config, err = optional(acc.ConfigDir()); err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}
	if rep.Data, err = optional(acc.DataDir()); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	if rep.Cache, err = optional(acc.CacheDir()); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	for _, s := range userdirs.Specials() {
		dir, err := optional(acc.SpecialDir(s))
		if err != nil {
			return nil, fmt.Errorf("%s dir: %w", s, err)
		}
		rep.Special[s.String()] = dir
	}
	return rep, nil
}

// optional maps the accessor's ""-means-absent convention onto a nil
// pointer.
func optional(dir string, err error) (*string, error) {
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, nil
	}
	return &dir, nil
}

// writeText renders the report in a fixed, line-per-kind order.
func (r *Report) writeText(w io.Writer) {
	line := func(kind string, dir *string) {
		if dir == nil {
			fmt.Fprintf(w, "%-12s (not defined)\n", kind)
			return
		}
		fmt.Fprintf(w, "%-12s %s\n", kind, *dir)
	}
	line("config", r.Config)
	line("data", r.Data)
	line("cache", r.Cache)
	for _, s := range userdirs.Specials() {
		line(s.String(), r.Special[s.String()])
	}
}
