package module

import (
	"csvforge/internal/platform/config"
	convertsvc "csvforge/internal/services/convert/service"
)

// FromConfig reads convert module settings from the config.Conf
func FromConfig(cfg config.Conf) convertsvc.Config {
	cf := cfg.Prefix("CORE_CONVERT_")
	return convertsvc.Config{
		RunsLimit: cf.MayInt("RUNS_LIMIT", 50),
	}
}
