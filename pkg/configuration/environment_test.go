package configuration

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Configuration{}
	require.NoError(t, c.load(nil))

	require.Equal(t, "orgboard", c.Database.Name)
	require.Equal(t, "localhost", c.Database.Host)
	require.Contains(t, c.Database.Opts, "dbname=orgboard")
	require.NotNil(t, c.Logger())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "orgboard_test")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("LOG_LEVEL", "debug")

	c := &Configuration{}
	require.NoError(t, c.load(nil))

	require.Equal(t, "orgboard_test", c.Database.Name)
	require.Contains(t, c.Database.Opts, "port=6543")
	require.Equal(t, logrus.DebugLevel, c.LogrusLogLevel())
}

func TestLogrusLogLevelFallback(t *testing.T) {
	c := &Configuration{LogLevel: "bogus"}
	require.Equal(t, logrus.ErrorLevel, c.LogrusLogLevel())
}
