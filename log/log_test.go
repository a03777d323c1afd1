package log_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/pipelined/spiral/log"
)

func TestGetLogger(t *testing.T) {
	var l log.Logger = log.GetLogger()
	assert.NotNil(t, l)
	assert.Contains(t, []logrus.Level{logrus.InfoLevel, logrus.DebugLevel}, log.GetLogger().GetLevel())

	// must not panic
	log.Discard().Debug("dropped")
	log.Discard().Info("dropped")
}
