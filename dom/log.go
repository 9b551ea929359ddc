package dom

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used to trace tree mutations. Passing nil
// restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

func logMutation(method string, parent, child *Node) {
	logger.WithFields(logrus.Fields{
		"method": method,
		"parent": parent.describe(),
		"child":  child.describe(),
	}).Debugf("[TREE]: %s", parent.Root())
}

func logRejected(method string, err error) {
	logger.WithField("method", method).WithError(err).Debug("[TREE]: rejected")
}
