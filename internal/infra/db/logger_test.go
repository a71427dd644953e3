package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func lastJSONLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &out))
	return out
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(logging.NewWithOutput("debug", "json", &buf), logger.Warn)
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 0 }

	l.Trace(ctx, time.Now(), fc, errors.New("syntax error"))
	line := lastJSONLine(t, &buf)
	assert.Equal(t, "sql failed", line["msg"])
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "gorm", line["component"])
	assert.Equal(t, "SELECT 1", line["sql"])

	buf.Reset()
	l.Trace(ctx, time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(ctx, time.Now().Add(-time.Second), fc, nil)
	assert.Equal(t, "slow sql", lastJSONLine(t, &buf)["msg"])

	buf.Reset()
	l.LogMode(logger.Silent).Trace(ctx, time.Now(), fc, errors.New("ignored"))
	assert.Empty(t, buf.String())
}

func TestConnect_SQLWarningsUseAppLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithOutput("info", "json", &buf)

	gdb, err := Connect(context.Background(), config.DBConfig{
		Driver:       "sqlite",
		URL:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	require.Error(t, gdb.Exec("SELECT * FROM no_such_table").Error)

	line := lastJSONLine(t, &buf)
	assert.Equal(t, "sql failed", line["msg"])
	assert.Contains(t, line["sql"], "no_such_table")
}
