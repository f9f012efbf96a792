package controller

import (
	"audioshelf/internal/tui/model"
	"audioshelf/pkg/logging"
)

const controllerSubsystem = "Controller"

// logAction records a processed action. Tick and Render arrive many times a
// second and are skipped.
func logAction(action model.Action) {
	if action.IsHighFrequency() {
		return
	}
	logging.Debug(controllerSubsystem, "Processing %s", action)
}

func logInfo(format string, a ...interface{}) {
	logging.Info(controllerSubsystem, format, a...)
}

func logError(err error, format string, a ...interface{}) {
	logging.Error(controllerSubsystem, err, format, a...)
}
