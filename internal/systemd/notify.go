// Package systemd reports service lifecycle state to the service manager.
package systemd

import (
	"context"
	"log/slog"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
)

// Notifier sends sd_notify messages. All methods degrade to no-ops when
// the process is not running under systemd.
type Notifier struct {
	logger *slog.Logger
	cancel context.CancelFunc
}

// NewNotifier creates a notifier.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Ready signals that the service has finished starting up. With
// Type=notify units, systemd holds dependent units until this arrives.
func (n *Notifier) Ready() {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		n.logger.Warn("Failed to notify systemd readiness", "error", err)
		return
	}
	if sent {
		n.logger.Debug("Notified systemd readiness")
	}
}

// Stopping signals that shutdown has begun and stops the watchdog loop.
func (n *Notifier) Stopping() {
	if n.cancel != nil {
		n.cancel()
	}
	if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
		n.logger.Warn("Failed to notify systemd stopping", "error", err)
	}
}

// StartWatchdog begins the keepalive loop when the unit has
// WatchdogSec configured. Pings are sent at half the configured interval.
func (n *Notifier) StartWatchdog() {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		n.logger.Warn("Failed to query systemd watchdog", "error", err)
		return
	}
	if interval == 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel

	go func() {
		ticker := time.NewTicker(interval / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog); err != nil {
					n.logger.Warn("Failed to send watchdog keepalive", "error", err)
				}
			}
		}
	}()

	n.logger.Info("Systemd watchdog enabled", "interval", interval)
}
