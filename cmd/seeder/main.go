// Seeder is a smoke-test client: it fires a realistic prediction request at
// a running instance and prints the response. Useful after deploys.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	team1 := flag.String("team1", "Lakers", "first team")
	team2 := flag.String("team2", "Celtics", "second team")
	flag.Parse()

	payload := map[string]interface{}{
		"team1": *team1,
		"team2": *team2,
		"inactive_players": map[string][]string{
			"team1": {},
			"team2": {},
		},
		"performance_factors": map[string]interface{}{
			"home_court_advantage": 7,
			"rest_days_impact":     5,
			"recent_form_weight":   5,
			"home_team":            1,
			"team1_rest_days":      2,
			"team2_rest_days":      1,
			"team1_recent_wins":    7,
			"team1_recent_losses":  3,
			"team2_recent_wins":    5,
			"team2_recent_losses":  5,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(*baseURL+"/predict-with-performance-factors",
		"application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("status: %s\n%s\n", resp.Status, out)
}
