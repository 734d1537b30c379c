package config

import (
	"log"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ReloadDelay collapses the burst of write events editors emit on save.
const ReloadDelay = 100 * time.Millisecond

// Watch re-reads the config file backing v whenever it changes and hands the
// new Config to onChange. Invalid edits are logged and ignored so the last
// good configuration stays in effect.
//
// v is only read from the goroutine viper delivers change events on. Callers
// must not use v concurrently once Watch returns.
func Watch(v *viper.Viper, onChange func(Config)) {
	setDefaults(v)
	debounced := debounce.New(ReloadDelay)
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			log.Printf("ignoring config change in %s: %v", e.Name, err)
			return
		}
		debounced(func() {
			log.Printf("reloaded config from %s", e.Name)
			onChange(cfg)
		})
	})
	v.WatchConfig()
}
