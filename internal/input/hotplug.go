package input

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"libris/internal/logging"
)

// HotplugWatcher listens for udev netlink events and attaches the serial
// producer when the configured scanner device appears. Used when no
// scanner was present at startup, so plugging one in mid-session starts
// feeding the loop without a restart.
type HotplugWatcher struct {
	device string
	speed  int
	merger *Merger
	logger *slog.Logger

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// NewHotplugWatcher creates a watcher for the given serial device path.
func NewHotplugWatcher(device string, speed int, merger *Merger, logger *slog.Logger) *HotplugWatcher {
	if strings.TrimSpace(device) == "" {
		return nil
	}
	return &HotplugWatcher{
		device: device,
		speed:  speed,
		merger: merger,
		logger: logging.NewComponentLogger(logger, "hotplug"),
	}
}

// Start begins listening for udev events. Failure to reach the netlink
// socket is non-fatal: the loop still runs on keyboard input alone.
func (w *HotplugWatcher) Start(ctx context.Context) {
	if w == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		w.logger.Warn("netlink unavailable, scanner hotplug disabled", logging.Error(err))
		return
	}

	w.conn = conn
	w.quit = make(chan struct{})
	w.running = true

	go w.watch(ctx, w.quit)
	w.logger.Info("watching for scanner", logging.String("device", w.device))
}

// Stop shuts the watcher down.
func (w *HotplugWatcher) Stop() {
	if w == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	close(w.quit)
	w.quit = nil
	_ = w.conn.Close()
	w.conn = nil
	w.running = false
}

func (w *HotplugWatcher) watch(ctx context.Context, quit <-chan struct{}) {
	events := make(chan netlink.UEvent)
	errs := make(chan error)

	monitorQuit := w.conn.Monitor(events, errs, w.matcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-events:
			if w.handleEvent(ctx, uevent) {
				close(monitorQuit)
				w.Stop()
				return
			}
		case err := <-errs:
			w.logger.Warn("netlink watch error", logging.Error(err))
		}
	}
}

func (w *HotplugWatcher) matcher() netlink.Matcher {
	action := "add"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "tty",
		},
	})
	return rules
}

// handleEvent attaches the serial producer when the awaited device shows
// up. Returns true once attached so the watcher can retire.
func (w *HotplugWatcher) handleEvent(ctx context.Context, uevent netlink.UEvent) bool {
	devname := uevent.Env["DEVNAME"]
	if devname == "" {
		return false
	}
	if !strings.HasPrefix(devname, "/dev/") {
		devname = "/dev/" + devname
	}
	if filepath.Clean(devname) != filepath.Clean(w.device) {
		return false
	}

	source, err := OpenSerial(w.device, w.speed)
	if err != nil {
		w.logger.Warn("scanner appeared but open failed", logging.Error(err))
		return false
	}

	w.merger.Attach(ctx, source, true)
	w.logger.Info("scanner attached", logging.String("device", w.device))
	return true
}
