package locale

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
)

// fileProfile is the TOML shape a locale file declares, grounded on
// dominikh-go-tools/config.Config's toml-tagged struct plus
// toml.MetaData merge layering.
type fileProfile struct {
	Name         string `toml:"name"`
	DecimalPoint string `toml:"decimal_point"`
	ThousandsSep string `toml:"thousands_separator"`
	TrueName     string `toml:"true_name"`
	FalseName    string `toml:"false_name"`
}

func (f fileProfile) toProfile() Profile {
	p := Profile{
		Name:         f.Name,
		DecimalPoint: '.',
		TrueName:     "true",
		FalseName:    "false",
	}
	if r := []rune(f.DecimalPoint); len(r) > 0 {
		p.DecimalPoint = r[0]
	}
	if r := []rune(f.ThousandsSep); len(r) > 0 {
		p.ThousandsSep = r[0]
	}
	if f.TrueName != "" {
		p.TrueName = f.TrueName
	}
	if f.FalseName != "" {
		p.FalseName = f.FalseName
	}
	return p
}

// LoadProfile reads a single locale definition from a TOML file, using
// toml.DecodeFile the way config.Load decodes "staticcheck.conf".
func LoadProfile(path string) (Profile, error) {
	var f fileProfile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Profile{}, err
	}
	if f.Name == "" {
		f.Name = filepath.Base(path)
	}
	return f.toProfile(), nil
}

// LoadProfiles loads every "*.toml" file in dir into a name-keyed
// registry, continuing past individual file errors and returning them
// aggregated via go-multierror so one malformed locale file does not
// prevent the rest from loading — the same layering tolerance
// config.parseConfigs applies across directories.
func LoadProfiles(dir string) (map[string]Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Profile)
	var errs *multierror.Error
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		p, err := LoadProfile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		out[p.Name] = p
	}
	return out, errs.ErrorOrNil()
}
