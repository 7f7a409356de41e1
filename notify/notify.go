// Package notify sends desktop notifications over the D-Bus session bus.
package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/opconnect/common"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	method     = busName + ".Notify"
)

// Urgency levels from the Desktop Notifications spec.
const (
	urgencyLow      byte = 0
	urgencyNormal   byte = 1
	urgencyCritical byte = 2
)

// Desktop implements common.Notifier using org.freedesktop.Notifications.
type Desktop struct {
	appName string
	dial    func() (*dbus.Conn, error)
}

var _ common.Notifier = (*Desktop)(nil)

// NewDesktop creates a notifier that connects to the session bus on each call.
func NewDesktop(appName string) *Desktop {
	return &Desktop{
		appName: appName,
		dial: func() (*dbus.Conn, error) {
			return dbus.ConnectSessionBus()
		},
	}
}

// Notify sends one notification. It fails when no session bus or
// notification daemon is available.
func (d *Desktop) Notify(kind common.NotificationType, title, message string) error {
	conn, err := d.dial()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyFor(kind)),
	}

	call := conn.Object(busName, objectPath).Call(method, 0,
		d.appName,     // app_name
		uint32(0),     // replaces_id
		iconFor(kind), // app_icon
		title,         // summary
		message,       // body
		[]string{},    // actions
		hints,         // hints
		int32(-1),     // expire_timeout: server default
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

func iconFor(kind common.NotificationType) string {
	switch kind {
	case common.NotificationSuccess:
		return "network-vpn"
	case common.NotificationError:
		return "dialog-error"
	default:
		return "network-vpn"
	}
}

func urgencyFor(kind common.NotificationType) byte {
	switch kind {
	case common.NotificationError:
		return urgencyCritical
	case common.NotificationSuccess:
		return urgencyNormal
	default:
		return urgencyLow
	}
}

// Discard is a Notifier that drops everything, used when notifications
// are turned off in the settings.
type Discard struct{}

// Notify implements common.Notifier.
func (Discard) Notify(common.NotificationType, string, string) error {
	return nil
}
