package log_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/eslintdiff/pkg/log"
)

func TestSetLevel(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		level string
		exp   logrus.Level
	}{
		{name: "empty keeps the current level", level: "", exp: logrus.InfoLevel},
		{name: "debug", level: "debug", exp: logrus.DebugLevel},
		{name: "invalid keeps the current level", level: "verbose", exp: logrus.InfoLevel},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			logger := logrus.New()
			logger.SetLevel(logrus.InfoLevel)
			logE := logrus.NewEntry(logger)
			log.SetLevel(d.level, logE)
			if got := logger.GetLevel(); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}
