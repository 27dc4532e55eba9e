package test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	constant "liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/db"
)

func TestWithPostgres(t *testing.T) {
	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}
	if os.Getenv(constant.EnvKeyIOTDbDSN) == "" {
		t.Skip("Skipping integration test: IOT_DB_DSN environment variable not set")
	}

	constant.SetTestLoggerNop()

	instance, err := db.Open(db.UsePostgresDialector())
	require.NoError(t, err)
	require.NotNil(t, instance.Conn)

	for _, table := range []string{"settings", "groups", "devices", "property_history", "current_properties", "event_logs"} {
		assert.True(t, instance.Conn.Migrator().HasTable(table), "table %q should exist", table)
	}
}
