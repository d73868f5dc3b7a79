package logger

import "go.uber.org/zap"

var log *zap.SugaredLogger

func Init() {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	log = l.Sugar()
}

func Info(msg string, kv ...interface{}) {
	log.Infow(msg, kv...)
}

func Warn(msg string, kv ...interface{}) {
	log.Warnw(msg, kv...)
}

// InitNop replaces the logger with a no-op core. Tests use it so package
// code can log without a prior Init.
func InitNop() {
	log = zap.NewNop().Sugar()
}
