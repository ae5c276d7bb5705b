package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	windowCount     = 4   // Tumbling 10s windows covered by generated traffic
	linesPerChunk   = 100 // Log lines per ingested chunk
	chunksPerWindow = 15  // Original chunks per window (1500 lines per window)
)

var (
	// One window of traffic: 800 + 400 + 200 + 100 = 1500 lines. With the
	// server's top_size=3, /contact must be ranked out of every report.
	pathCounts = []struct {
		path  string
		count int
	}{
		{"/", 800},
		{"/about", 400},
		{"/careers", 200},
		{"/contact", 100},
	}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
	// First window is [12:01:50, 12:02:00) on 10/May/2021 UTC.
	baseWindowStart = time.Date(2021, 5, 10, 12, 1, 50, 0, time.UTC)
)

// ### End - fixed configs

type chunkToSend struct {
	window     int
	chunkIndex int
	body       string
	isOriginal bool
}

type reportEntry struct {
	RequestPath string `json:"requestPath"`
	Count       int64  `json:"count"`
}

type rankedReport struct {
	WindowEnd time.Time     `json:"windowEnd"`
	Entries   []reportEntry `json:"entries"`
}

type reportList struct {
	WindowEnds []time.Time `json:"windowEnds"`
}

// main runs the e2e scenario: 001_basic_window_topn
//
// This scenario tests the end-to-end flow of chunk ingestion, event-time
// windowing and top-N ranking. It sends 6,000 access log lines in
// combined-log-format chunks across four 10-second event-time windows, with
// duplicate chunks mixed in to test idempotency handling, then verifies the
// archived ranked reports.
//
// Chunks are sent window by window: within one window chunks go out in
// parallel and in no particular order, but a window's chunks all complete
// before the next window starts. That bounds the event-time skew the server
// sees to less than its allowed lateness, so no generated line is ever late.
//
// What it tests:
//   - Chunk ingestion via POST /loglines with combined-log-format bodies
//   - Idempotency key handling for duplicate chunk detection
//   - Event-time window assignment and watermark-driven window closure
//   - Top-N ranking with top_size=3 cutting the 4th-hottest path
//   - Ranked report archiving and the /reports read endpoints
//
// Expected results:
//   - All original chunks return 202 Accepted, all duplicates 409 Conflict
//   - Exactly four ranked reports appear (window ends 12:02:00, 12:02:10,
//     12:02:20, 12:02:30 UTC)
//   - Every report ranks /=800, /about=400, /careers=200; /contact is absent
//   - /reports/latest returns the 12:02:30 report
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the analytics API server
	parallel := 4                      // Number of concurrent chunk requests per window
	duplicatesPerWindow := 5           // Duplicate chunks resent per window
	sourceID := "src-e2e-nginx"        // Source ID to use in requests
	reportTimeout := 60 * time.Second  // How long to wait for all reports to appear

	totalLines := 0
	for _, pc := range pathCounts {
		totalLines += pc.count
	}
	if totalLines != linesPerChunk*chunksPerWindow {
		fmt.Fprintf(os.Stderr, "ERROR: path counts (%d lines) must fill %d chunks of %d lines\n",
			totalLines, chunksPerWindow, linesPerChunk)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_basic_window_topn")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("WINDOW_COUNT: %d\n", windowCount)
	fmt.Printf("CHUNKS_PER_WINDOW: %d\n", chunksPerWindow)
	fmt.Printf("DUPLICATES_PER_WINDOW: %d\n", duplicatesPerWindow)
	fmt.Printf("TOTAL_LINES: %d\n", windowCount*totalLines)
	fmt.Println()

	var totalChunksSent int64
	var acceptedRequest int64   // 202 status code
	var conflictedRequest int64 // 409 status code
	var otherRequest int64      // anything else

	// Send window by window so event-time skew stays under allowed lateness.
	for window := 0; window < windowCount; window++ {
		chunks := generateWindowChunks(window, duplicatesPerWindow)
		fmt.Printf("Sending window %d (%d chunks, %d duplicates)...\n", window+1, len(chunks), duplicatesPerWindow)

		workerChan := make(chan struct{}, parallel)
		var wg sync.WaitGroup
		var mu sync.Mutex
		var errors []error

		for _, chunk := range chunks {
			wg.Add(1)
			workerChan <- struct{}{} // Acquire worker slot

			go func(c chunkToSend) {
				defer wg.Done()
				defer func() { <-workerChan }() // Release worker slot

				statusCode, err := sendChunk(baseURL, sourceID, c)
				if err != nil {
					mu.Lock()
					errors = append(errors, fmt.Errorf("window %d chunk %d: %w", c.window+1, c.chunkIndex, err))
					mu.Unlock()
					return
				}

				atomic.AddInt64(&totalChunksSent, 1)
				switch statusCode {
				case http.StatusAccepted:
					atomic.AddInt64(&acceptedRequest, 1)
				case http.StatusConflict:
					atomic.AddInt64(&conflictedRequest, 1)
				default:
					atomic.AddInt64(&otherRequest, 1)
				}
			}(chunk)
		}

		wg.Wait()

		if len(errors) > 0 {
			for _, err := range errors {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			}
			os.Exit(1)
		}
	}

	// One closing line far enough ahead to move the watermark past the last
	// window end, so the final windows report without waiting for more input.
	closer := logLine(0, baseWindowStart.Add(time.Duration(windowCount+3)*10*time.Second), "/healthz")
	statusCode, err := sendChunk(baseURL, sourceID, chunkToSend{window: windowCount, chunkIndex: 0, body: closer, isOriginal: true})
	if err != nil || statusCode != http.StatusAccepted {
		fmt.Fprintf(os.Stderr, "ERROR: closing chunk failed (status %d): %v\n", statusCode, err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Total chunks sent: %d\n", atomic.LoadInt64(&totalChunksSent))
	fmt.Printf("Accepted request: %d\n", atomic.LoadInt64(&acceptedRequest))
	fmt.Printf("Conflicted request: %d\n", atomic.LoadInt64(&conflictedRequest))
	fmt.Printf("Other request: %d\n", atomic.LoadInt64(&otherRequest))
	fmt.Println()

	wantConflicts := int64(windowCount * duplicatesPerWindow)
	if atomic.LoadInt64(&conflictedRequest) != wantConflicts {
		fmt.Fprintf(os.Stderr, "ERROR: expected %d conflicted requests, got %d\n", wantConflicts, conflictedRequest)
		os.Exit(1)
	}
	if atomic.LoadInt64(&otherRequest) != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d requests returned an unexpected status\n", otherRequest)
		os.Exit(1)
	}

	// Wait for every window's report to be archived.
	fmt.Printf("Waiting for %d ranked reports...\n", windowCount)
	windowEnds, err := waitForReports(baseURL, windowCount, reportTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d reports\n", len(windowEnds))
	fmt.Println()

	// Verify each window's ranking.
	for window := 0; window < windowCount; window++ {
		windowEnd := baseWindowStart.Add(time.Duration(window+1) * 10 * time.Second)
		if err := verifyReport(baseURL, fmt.Sprintf("/reports/%d", windowEnd.Unix()), windowEnd); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: window ending %s: %v\n", windowEnd.Format(time.RFC3339), err)
			os.Exit(1)
		}
		fmt.Printf("Report for window ending %s verified\n", windowEnd.Format(time.RFC3339))
	}

	// The latest report must be the last window's.
	lastEnd := baseWindowStart.Add(time.Duration(windowCount) * 10 * time.Second)
	if err := verifyReport(baseURL, "/reports/latest", lastEnd); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: latest report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Latest report verified")

	fmt.Println("Scenario completed successfully")
}

// generateWindowChunks builds one window's chunks plus its duplicates. Chunk
// content is a pure function of (window, chunkIndex), so a resent chunk is
// byte-identical and carries the same idempotency key.
func generateWindowChunks(window int, duplicates int) []chunkToSend {
	windowStart := baseWindowStart.Add(time.Duration(window) * 10 * time.Second)

	lines := make([]string, 0, linesPerChunk*chunksPerWindow)
	for _, pc := range pathCounts {
		for i := 0; i < pc.count; i++ {
			at := windowStart.Add(time.Duration(len(lines)%10) * time.Second)
			lines = append(lines, logLine(len(lines), at, pc.path))
		}
	}

	chunks := make([]chunkToSend, 0, chunksPerWindow+duplicates)
	for chunkIndex := 0; chunkIndex < chunksPerWindow; chunkIndex++ {
		body := strings.Join(lines[chunkIndex*linesPerChunk:(chunkIndex+1)*linesPerChunk], "\n") + "\n"
		chunks = append(chunks, chunkToSend{
			window:     window,
			chunkIndex: chunkIndex,
			body:       body,
			isOriginal: true,
		})
	}

	// Duplicate chunks reuse the original body, round-robin across the window.
	for i := 0; i < duplicates; i++ {
		original := chunks[i%chunksPerWindow]
		chunks = append(chunks, chunkToSend{
			window:     window,
			chunkIndex: original.chunkIndex,
			body:       original.body,
			isOriginal: false,
		})
	}

	return chunks
}

// logLine renders one combined-log-format line.
func logLine(index int, at time.Time, path string) string {
	ip := fmt.Sprintf("192.168.%d.%d", index%8+1, index%200+1)
	bodyBytes := 256 + (index*37)%4096
	ua := userAgents[index%len(userAgents)]
	return fmt.Sprintf("%s - - [%s] \"GET %s HTTP/1.1\" 200 %d \"-\" \"%s\"",
		ip, at.Format("02/Jan/2006:15:04:05 -0700"), path, bodyBytes, ua)
}

func sendChunk(baseURL, sourceID string, chunk chunkToSend) (int, error) {
	// Same key for the original and every duplicate of this chunk
	idempotencyKey := fmt.Sprintf("chunk-%d-%06d", chunk.window+1, chunk.chunkIndex)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/loglines", strings.NewReader(chunk.body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("x-source-id", sourceID)
	req.Header.Set("idempotency-key", idempotencyKey)

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	// 409 Conflict is the expected answer for duplicates; other 4xx/5xx fail.
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}

func waitForReports(baseURL string, want int, timeout time.Duration) ([]time.Time, error) {
	deadline := time.Now().Add(timeout)
	for {
		list, err := fetchReportList(baseURL)
		if err == nil && len(list.WindowEnds) >= want {
			return list.WindowEnds, nil
		}
		if time.Now().After(deadline) {
			got := 0
			if err == nil {
				got = len(list.WindowEnds)
			}
			return nil, fmt.Errorf("timed out waiting for %d reports (have %d, last error: %v)", want, got, err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func fetchReportList(baseURL string) (*reportList, error) {
	resp, err := http.Get(baseURL + "/reports")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /reports returned HTTP %d", resp.StatusCode)
	}

	var list reportList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// verifyReport fetches one report and checks it against the fixed generation
// scheme: every window ranks /=800, /about=400, /careers=200 and nothing else.
func verifyReport(baseURL, path string, wantWindowEnd time.Time) error {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}

	var report rankedReport
	if err := json.Unmarshal(body, &report); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}

	if !report.WindowEnd.Equal(wantWindowEnd) {
		return fmt.Errorf("window end: want %s, got %s", wantWindowEnd.Format(time.RFC3339), report.WindowEnd.Format(time.RFC3339))
	}

	want := []reportEntry{
		{RequestPath: "/", Count: 800},
		{RequestPath: "/about", Count: 400},
		{RequestPath: "/careers", Count: 200},
	}
	if len(report.Entries) != len(want) {
		return fmt.Errorf("entries: want %d, got %d (%s)", len(want), len(report.Entries), body)
	}
	for i, entry := range want {
		if report.Entries[i] != entry {
			return fmt.Errorf("entry %d: want %+v, got %+v", i, entry, report.Entries[i])
		}
	}

	return nil
}
