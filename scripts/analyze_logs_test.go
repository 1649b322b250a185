package scripts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Govind-619/OrderLadder/utils"
)

func writeLog(t *testing.T, dir, level string, day time.Time, lines ...string) {
	t.Helper()
	path := filepath.Join(dir, utils.LogFileName(level, day))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
}

func TestAnalyzeLogs(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	writeLog(t, dir, "info", day,
		`{"level":"info","msg":"request","status":200}`,
		`{"level":"info","msg":"request","status":400}`,
		`{"level":"info","msg":"request","status":502}`,
		`{"level":"info","msg":"Created provider order order_1 for amount 10 (receipt rcpt_1)"}`,
		`{"level":"info","msg":"Payment recorded: order #1, payment pay_1, amount 10"}`,
		`not json`,
	)
	writeLog(t, dir, "error", day,
		`{"level":"error","msg":"Invalid payment signature for order order_2, payment pay_2"}`,
		`{"level":"error","msg":"Invalid payment signature for order order_3, payment pay_3"}`,
		`{"level":"error","msg":"Failed to record payment for pay_1: payment already recorded"}`,
		`{"level":"error","msg":"Failed to create provider order for receipt rcpt_2: timeout"}`,
	)

	stats, err := AnalyzeLogs(dir, day)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", stats.Day)
	assert.Equal(t, 3, stats.Requests)
	assert.Equal(t, 2, stats.FailedRequests)
	assert.Equal(t, 1, stats.OrdersCreated)
	assert.Equal(t, 1, stats.PaymentsRecorded)
	assert.Equal(t, 2, stats.SignatureRejections)
	assert.Equal(t, 1, stats.StorageFailures)
	assert.Equal(t, 1, stats.ProviderFailures)
	assert.Equal(t, 4, stats.TotalErrors)
	assert.Equal(t, map[string]int{
		"Invalid payment signature":       2,
		"Failed to record payment":        1,
		"Failed to create provider order": 1,
	}, stats.ErrorPatterns)

	var out bytes.Buffer
	PrintReport(&out, stats)
	assert.Contains(t, out.String(), "Payments Recorded: 1")
	assert.Contains(t, out.String(), "Invalid payment signature: 2 occurrences")
}

func TestAnalyzeLogsMissingFiles(t *testing.T) {
	stats, err := AnalyzeLogs(t.TempDir(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.Requests)
	assert.Zero(t, stats.TotalErrors)
	assert.Empty(t, stats.ErrorPatterns)
}
