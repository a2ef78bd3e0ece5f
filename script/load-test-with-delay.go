package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/urfave/cli/v3"
)

// PaymentRequest is the body of POST /v1/payments
type PaymentRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Recipient   uint64 `json:"recipient"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	RateLimited        int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of request the workers pick from
type Scenario struct {
	Name   string
	Method string
	Path   string
	Amount string // payments only
}

// LoadTest holds the parsed flags
type LoadTest struct {
	BaseURL     string
	APIKey      string
	Token       string
	Recipients  []uint64
	Concurrency int
	Requests    int
	Delay       time.Duration
}

func main() {
	app := &cli.Command{
		Name:  "load-test",
		Usage: "Send payment and movie traffic to the payment API",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "c", Usage: "Number of concurrent workers", Value: 5},
			&cli.IntFlag{Name: "n", Usage: "Total number of requests to make", Value: 100},
			&cli.StringFlag{Name: "url", Usage: "Base URL for the API", Value: "http://localhost:8080"},
			&cli.StringFlag{Name: "key", Usage: "API key sent as X-API-Key", Sources: cli.EnvVars("PA_API_KEY")},
			&cli.StringFlag{Name: "token", Usage: "Customer JWT sent as jwt_token"},
			&cli.Uint64SliceFlag{Name: "recipient", Aliases: []string{"r"}, Usage: "Recipient customer ids", Value: []uint64{1}},
			&cli.DurationFlag{Name: "delay", Usage: "Delay between requests of one worker", Value: 100 * time.Millisecond},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lt := LoadTest{
				BaseURL:     cmd.String("url"),
				APIKey:      cmd.String("key"),
				Token:       cmd.String("token"),
				Recipients:  cmd.Uint64Slice("recipient"),
				Concurrency: cmd.Int("c"),
				Requests:    cmd.Int("n"),
				Delay:       cmd.Duration("delay"),
			}
			if lt.APIKey == "" && lt.Token == "" {
				return fmt.Errorf("either --key or --token is required")
			}
			if len(lt.Recipients) == 0 {
				return fmt.Errorf("at least one --recipient is required")
			}
			printResults(lt.Run(ctx))
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func scenarios() []Scenario {
	return []Scenario{
		{Name: "Payment Small", Method: http.MethodPost, Path: "/v1/payments", Amount: "1.50"},
		{Name: "Payment Medium", Method: http.MethodPost, Path: "/v1/payments", Amount: "25.00"},
		{Name: "Payment Large", Method: http.MethodPost, Path: "/v1/payments", Amount: "480.75"},
		{Name: "List Payments", Method: http.MethodGet, Path: "/v1/payments"},
		{Name: "List Movies", Method: http.MethodGet, Path: "/v1/movies?per_page=20&page=1"},
	}
}

// Run fires lt.Requests requests from lt.Concurrency workers and aggregates the results
func (lt LoadTest) Run(ctx context.Context) *TestStats {
	fmt.Printf("Load testing %s with recipients %v\n", lt.BaseURL, lt.Recipients)
	fmt.Printf("Concurrency: %d workers, %d requests, %v delay\n", lt.Concurrency, lt.Requests, lt.Delay)

	stats := &TestStats{
		TotalRequests:   lt.Requests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, lt.Requests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, lt.Requests)
	jobs := make(chan int, lt.Requests)
	for i := range lt.Requests {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range lt.Concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lt.worker(ctx, jobs, results)
		}()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, lt.Requests, float64(completed)/float64(lt.Requests)*100)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-done
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	return stats
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}
	if result.StatusCode == http.StatusTooManyRequests {
		s.RateLimited++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func (lt LoadTest) worker(ctx context.Context, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}
	all := scenarios()

	for jobID := range jobs {
		if lt.Delay > 0 {
			time.Sleep(lt.Delay)
		}

		scenario := all[rand.IntN(len(all))]
		result := TestResult{Scenario: scenario.Name}

		req, err := lt.newRequest(ctx, scenario, jobID)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		startTime := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(startTime)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func (lt LoadTest) newRequest(ctx context.Context, scenario Scenario, jobID int) (*http.Request, error) {
	var body *bytes.Reader
	if scenario.Method == http.MethodPost {
		payload, err := json.Marshal(PaymentRequest{
			Description: fmt.Sprintf("load test %d", jobID),
			Amount:      scenario.Amount,
			Recipient:   lt.Recipients[rand.IntN(len(lt.Recipients))],
		})
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, scenario.Method, lt.BaseURL+scenario.Path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if lt.Token != "" {
		req.Header.Set("jwt_token", lt.Token)
	}
	if lt.APIKey != "" {
		req.Header.Set("X-API-Key", lt.APIKey)
	}
	return req, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	offeredTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Rate Limited (429):  %d\n", stats.RateLimited)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Successful TPS:      %.2f\n", tps)
	fmt.Printf("Offered TPS:         %.2f\n", offeredTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
