package update

import (
	"github.com/sandeepkv93/pomodesk/internal/config"
	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/notify"
)

func NotifyOptions(cfg config.Config) notify.Options {
	return notify.Options{
		SoundEnabled:         cfg.Sound,
		NotificationsEnabled: cfg.Notifications,
	}
}

// applyConfig pushes a reloaded config into the running components. Timer
// defaults and the database path only apply at startup.
func (m *Model) applyConfig(msg ConfigChangedMsg) {
	cfg := msg.Config
	if m.dispatcher != nil {
		m.dispatcher.SetOptions(NotifyOptions(cfg))
	}
	if m.rotator != nil && cfg.QuoteInterval > 0 {
		m.rotator.SetInterval(cfg.QuoteInterval)
	}
	debug.Log("update: config reloaded (sound=%t notifications=%t quotes=%s)", cfg.Sound, cfg.Notifications, cfg.QuoteInterval)
	m.Status = StatusBar{Text: "config reloaded"}
}
