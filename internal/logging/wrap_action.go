package logging

import (
	"github.com/sirupsen/logrus"
)

// WrapAction runs one named operation, timing it and logging start,
// completion, and failure around it. The callback may attach extra
// fields to the entry through the supplied LogData.
func WrapAction(
	actionName string,
	log *logrus.Logger,
	action func(*LogData) error,
) error {
	logData := NewLogData(log)
	log.Infof("Action.%v.Start", actionName)

	endTimer := logData.AddTiming("duration")
	err := action(logData)
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Errorf("Action.%v.Error", actionName)
		return err
	}

	logData.Log().Infof("Action.%v.Complete", actionName)
	return nil
}
