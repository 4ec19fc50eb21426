package logger

import "github.com/sirupsen/logrus"

// Log is the shared application logger.
var Log = logrus.New()

// Init configures the shared logger for the given environment. Production
// logs JSON; everything else keeps the readable text formatter.
func Init(env string) {
	if env == "production" {
		Log.SetFormatter(&logrus.JSONFormatter{})
		Log.SetLevel(logrus.InfoLevel)
		return
	}
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrus.DebugLevel)
}
