package cart

import "github.com/sirupsen/logrus"

// Notice levels mirror the storefront toast styles.
const (
	NoticeSuccess = "success"
	NoticeInfo    = "info"
)

// Notice is a user-visible message produced by a cart mutation.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Notifier receives the notices emitted by cart mutations.
type Notifier interface {
	Notify(n Notice)
}

type logNotifier struct{ log *logrus.Logger }

// NewLogNotifier returns a Notifier that records notices in the service
// log. The HTTP layer additionally returns each notice to the caller for
// display.
func NewLogNotifier(log *logrus.Logger) Notifier { return &logNotifier{log: log} }

func (n *logNotifier) Notify(notice Notice) {
	n.log.WithField("level", notice.Level).Info(notice.Message)
}
