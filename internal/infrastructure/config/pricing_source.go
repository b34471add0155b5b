package config

import (
	"fmt"
	"sync/atomic"

	"homeservices_crm/internal/domain/pricing"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// PricingSource serves the pricing table and swaps it atomically when the
// pricing file changes. A file that fails validation is logged and ignored;
// the previous table stays in effect.
type PricingSource struct {
	v       *viper.Viper
	current atomic.Pointer[pricing.Table]
	log     *logrus.Entry
}

var _ interfaces.IPricingSource = (*PricingSource)(nil)

// NewPricingSource loads path, or the built-in defaults when path is empty.
func NewPricingSource(path string) (*PricingSource, error) {
	s := &PricingSource{log: logger.For("pricing", "config")}
	if path == "" {
		t := pricing.DefaultTable()
		if err := t.Validate(); err != nil {
			return nil, err
		}
		s.current.Store(t)
		s.log.Info("using built-in pricing table")
		return s, nil
	}

	s.v = viper.New()
	s.v.SetConfigFile(path)
	t, err := readTable(s.v)
	if err != nil {
		return nil, err
	}
	s.current.Store(t)
	s.log.WithField("file", path).Info("pricing table loaded")
	return s, nil
}

func (s *PricingSource) Current() *pricing.Table {
	return s.current.Load()
}

// Watch starts reloading on file changes. It is a no-op for the built-in table.
func (s *PricingSource) Watch() {
	if s.v == nil {
		return
	}
	s.v.OnConfigChange(func(e fsnotify.Event) {
		s.reload(e.Name)
	})
	s.v.WatchConfig()
}

func (s *PricingSource) reload(name string) {
	t, err := readTable(s.v)
	if err != nil {
		logger.LogError(s.log, "reload", map[string]string{"file": name}, err)
		return
	}
	s.current.Store(t)
	s.log.WithField("file", name).Info("pricing table reloaded")
}

// LoadTable reads and validates a pricing file without watching it.
func LoadTable(path string) (*pricing.Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return readTable(v)
}

func readTable(v *viper.Viper) (*pricing.Table, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read pricing file: %w", err)
	}
	t := &pricing.Table{}
	if err := v.Unmarshal(t); err != nil {
		return nil, fmt.Errorf("decode pricing file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing file %s: %w", v.ConfigFileUsed(), err)
	}
	return t, nil
}
