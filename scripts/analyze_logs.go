// Package scripts holds operational tooling that runs outside the request path.
package scripts

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Govind-619/OrderLadder/utils"
)

// LogStats summarizes one day of service logs.
type LogStats struct {
	Day                 string
	OrdersCreated       int
	ProviderFailures    int
	PaymentsRecorded    int
	SignatureRejections int
	StorageFailures     int
	Requests            int
	FailedRequests      int
	TotalErrors         int
	ErrorPatterns       map[string]int
}

type logEntry struct {
	Level  string `json:"level"`
	Msg    string `json:"msg"`
	Status int    `json:"status"`
}

// AnalyzeLogs reads the info and error files written for day under logDir.
// A missing file counts as an empty one.
func AnalyzeLogs(logDir string, day time.Time) (*LogStats, error) {
	stats := &LogStats{
		Day:           day.Format("2006-01-02"),
		ErrorPatterns: make(map[string]int),
	}

	if err := scanLog(filepath.Join(logDir, utils.LogFileName("info", day)), func(e logEntry) {
		analyzeInfoEntry(e, stats)
	}); err != nil {
		return nil, err
	}
	if err := scanLog(filepath.Join(logDir, utils.LogFileName("error", day)), func(e logEntry) {
		analyzeErrorEntry(e, stats)
	}); err != nil {
		return nil, err
	}
	return stats, nil
}

func scanLog(path string, fn func(logEntry)) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error opening log file %s: %v", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		var e logEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		fn(e)
	}
	return scanner.Err()
}

func analyzeInfoEntry(e logEntry, stats *LogStats) {
	switch {
	case e.Msg == "request":
		stats.Requests++
		if e.Status >= 400 {
			stats.FailedRequests++
		}
	case strings.HasPrefix(e.Msg, "Payment recorded"):
		stats.PaymentsRecorded++
	case strings.HasPrefix(e.Msg, "Created provider order"):
		stats.OrdersCreated++
	}
}

func analyzeErrorEntry(e logEntry, stats *LogStats) {
	stats.TotalErrors++
	switch {
	case strings.HasPrefix(e.Msg, "Invalid payment signature"):
		stats.SignatureRejections++
	case strings.HasPrefix(e.Msg, "Failed to record payment"):
		stats.StorageFailures++
	case strings.HasPrefix(e.Msg, "Failed to create provider order"):
		stats.ProviderFailures++
	}
	stats.ErrorPatterns[errorPattern(e.Msg)]++
}

// errorPattern keeps the message up to the first detail separator.
func errorPattern(msg string) string {
	for _, sep := range []string{":", " for "} {
		if i := strings.Index(msg, sep); i > 0 {
			msg = msg[:i]
		}
	}
	return strings.TrimSpace(msg)
}

// PrintReport writes a human readable report
func PrintReport(w io.Writer, stats *LogStats) {
	fmt.Fprintln(w, "\n=== Log Analysis Report ===")
	fmt.Fprintln(w, "Day:", stats.Day)

	fmt.Fprintln(w, "\n1. Payment Flow:")
	fmt.Fprintf(w, "   Provider Orders Created: %d\n", stats.OrdersCreated)
	fmt.Fprintf(w, "   Provider Failures: %d\n", stats.ProviderFailures)
	fmt.Fprintf(w, "   Payments Recorded: %d\n", stats.PaymentsRecorded)
	fmt.Fprintf(w, "   Signature Rejections: %d\n", stats.SignatureRejections)
	fmt.Fprintf(w, "   Storage Failures: %d\n", stats.StorageFailures)

	fmt.Fprintln(w, "\n2. Requests:")
	fmt.Fprintf(w, "   Total: %d\n", stats.Requests)
	fmt.Fprintf(w, "   Failed (4xx/5xx): %d\n", stats.FailedRequests)

	fmt.Fprintln(w, "\n3. Error Statistics:")
	fmt.Fprintf(w, "   Total Errors: %d\n", stats.TotalErrors)

	fmt.Fprintln(w, "\n4. Most Common Errors:")
	printTopErrors(w, stats.ErrorPatterns, 5)
}

func printTopErrors(w io.Writer, patterns map[string]int, limit int) {
	type errorCount struct {
		pattern string
		count   int
	}

	var errorList []errorCount
	for p, count := range patterns {
		errorList = append(errorList, errorCount{p, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		if errorList[i].count == errorList[j].count {
			return errorList[i].pattern < errorList[j].pattern
		}
		return errorList[i].count > errorList[j].count
	})

	for i, e := range errorList {
		if i >= limit {
			break
		}
		fmt.Fprintf(w, "   %s: %d occurrences\n", e.pattern, e.count)
	}
}
