package services

import (
	"fmt"

	"github.com/franciscofornicola/rede-alerta/models"
)

type alertNotifiers struct {
	rt *RealtimeHub
	ps *PushService
}

var _notify alertNotifiers

// InitAlertNotifiers wires the realtime hub and push service into the alert
// event path. Either may be nil.
func InitAlertNotifiers(rt *RealtimeHub, ps *PushService) {
	_notify = alertNotifiers{rt: rt, ps: ps}
}

// emitAlertEvent is safe to call anywhere, including before initialization.
func emitAlertEvent(kind string, alert *models.Alert) {
	if _notify.rt != nil {
		_notify.rt.Broadcast(map[string]any{
			"kind":   kind,
			"alerta": alert,
		})
	}
}

// notifyStatusChange pushes the status change to the alert owner's devices.
func notifyStatusChange(alert *models.Alert) {
	if _notify.ps == nil {
		return
	}
	_notify.ps.PushToUser(alert.UserID, "Relato atualizado",
		fmt.Sprintf("Status do relato %q: %s", alert.Title, alert.Status),
		map[string]string{
			"alertaId": fmt.Sprintf("%d", alert.ID),
			"status":   alert.Status,
		})
}
