package notify

import "go.uber.org/zap"

// Notifier delivers fire-and-forget business notifications.
type Notifier interface {
	Notify(message string)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates new LogNotifier instance
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification message.
// TODO: deliver through a real channel (email) once one is provisioned.
func (n *LogNotifier) Notify(message string) {
	n.logger.Info("notification", zap.String("message", message))
}
