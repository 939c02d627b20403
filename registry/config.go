package registry

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sx3/ini"
)

// ConfigSection is the INI section holding variable values
const ConfigSection = "Global"

// Source looks up raw configuration values
type Source interface {
	Value(section, key string) (string, bool)
}

// ReadConfigFile applies every value of the [Global] section of an INI file
// that names a registered variable
func (r *Registry) ReadConfigFile(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return errors.Wrapf(ErrCannotOpenFile, "read config %s: %v", path, err)
	}
	r.LoadConfig(f)
	return nil
}

// LoadConfig sets each registered variable found in src. Values that fail to
// apply are logged and skipped.
func (r *Registry) LoadConfig(src Source) {
	names := r.snapshot()

	for _, name := range names {
		val, ok := src.Value(ConfigSection, name)
		if !ok {
			continue
		}
		log.Info("setting variable", "name", name, "value", val)
		if err := r.SetValue(name, val); err != nil {
			log.Warn("config value rejected", "name", name, "value", val, "err", err)
		}
	}
}
