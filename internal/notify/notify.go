// Package notify shows the resulting volume as a desktop notification over
// the session bus.
package notify

import (
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"

	"github.com/volfade/volfade/internal/volume"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = "/org/freedesktop/Notifications"
	notificationsNotify = "org.freedesktop.Notifications.Notify"

	appName = "volfade"

	// synchronousHint makes notification daemons replace the previous
	// volume popup instead of stacking a new one.
	synchronousHint = "x-canonical-private-synchronous"
)

// caller is the part of dbus.BusObject used here.
type caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Notifier sends volume notifications.
type Notifier struct {
	conn      *dbus.Conn
	obj       caller
	timeoutMs int32
	lastID    uint32
}

// Connect opens the session bus. timeoutMs is the expiry passed to the
// notification daemon.
func Connect(timeoutMs int) (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	n := newNotifier(conn.Object(notificationsDest, dbus.ObjectPath(notificationsPath)), timeoutMs)
	n.conn = conn
	return n, nil
}

func newNotifier(obj caller, timeoutMs int) *Notifier {
	return &Notifier{obj: obj, timeoutMs: int32(timeoutMs)}
}

// Volume shows summary with the volume as a percentage and a progress hint.
func (n *Notifier) Volume(summary string, v volume.Volume, muted bool) error {
	percent := int32(math.Round(v.Percent()))
	body := fmt.Sprintf("Volume %d%%", percent)
	if muted {
		body = "Muted"
	}
	hints := map[string]dbus.Variant{
		"value":         dbus.MakeVariant(percent),
		synchronousHint: dbus.MakeVariant(appName),
	}

	call := n.obj.Call(notificationsNotify, 0,
		appName,
		n.lastID,
		Icon(v, muted),
		summary,
		body,
		[]string{},
		hints,
		n.timeoutMs)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	var id uint32
	if err := call.Store(&id); err == nil {
		n.lastID = id
	}
	return nil
}

// Close releases the bus connection.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}

// Icon picks the freedesktop icon name for a volume level.
func Icon(v volume.Volume, muted bool) string {
	p := v.Percent()
	switch {
	case muted || v.IsMuted():
		return "audio-volume-muted"
	case p < 34:
		return "audio-volume-low"
	case p < 67:
		return "audio-volume-medium"
	default:
		return "audio-volume-high"
	}
}
