// Modelgen writes a small synthetic artifact set (columns, imputer, scaler,
// model) so the server can run predictions locally without the offline
// training pipeline. The ensemble is hand-built and deterministic: it leans
// on win percentage and scoring, which is enough for development and demos.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var statColumns = []string{
	"W", "L", "W_PCT", "MIN", "FGM", "FGA", "FG_PCT",
	"FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT",
	"OREB", "DREB", "REB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
}

var teamAbbrs = []string{
	"ATL", "BOS", "BKN", "CHA", "CHI", "CLE", "DAL", "DEN", "DET", "GSW",
	"HOU", "IND", "LAC", "LAL", "MEM", "MIA", "MIL", "MIN", "NOP", "NYK",
	"OKC", "ORL", "PHI", "PHX", "POR", "SAC", "SAS", "TOR", "UTA", "WAS",
}

// League-average training means, used by both the imputer and the scaler.
var columnMeans = map[string]float64{
	"W": 41, "L": 41, "W_PCT": 0.5, "MIN": 240,
	"FGM": 40, "FGA": 88, "FG_PCT": 0.46,
	"FG3M": 12, "FG3A": 34, "FG3_PCT": 0.36,
	"FTM": 18, "FTA": 23, "FT_PCT": 0.78,
	"OREB": 10, "DREB": 33, "REB": 43,
	"AST": 25, "STL": 7, "BLK": 5, "TOV": 14, "PF": 19,
	"PTS": 111,
}

var columnStds = map[string]float64{
	"W": 12, "L": 12, "W_PCT": 0.15, "MIN": 5,
	"FGM": 3, "FGA": 4, "FG_PCT": 0.02,
	"FG3M": 2, "FG3A": 4, "FG3_PCT": 0.02,
	"FTM": 3, "FTA": 3, "FT_PCT": 0.03,
	"OREB": 1.5, "DREB": 2.5, "REB": 3,
	"AST": 2.5, "STL": 1, "BLK": 1, "TOV": 1.5, "PF": 2,
	"PTS": 5,
}

type node struct {
	Feature     int     `json:"feature"`
	Threshold   float64 `json:"threshold"`
	Left        int     `json:"left"`
	Right       int     `json:"right"`
	DefaultLeft bool    `json:"default_left"`
	Value       float64 `json:"value"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

type classifier struct {
	BaseScore float64 `json:"base_score"`
	Trees     []tree  `json:"trees"`
}

func main() {
	outDir := flag.String("out", "ml_models/exported", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	columns := make([]string, 0, len(statColumns)+len(teamAbbrs))
	columns = append(columns, statColumns...)
	for _, abbr := range teamAbbrs {
		columns = append(columns, "TEAM_ABBR_"+abbr)
	}

	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		colIndex[c] = i
	}

	mean := make([]float64, len(columns))
	std := make([]float64, len(columns))
	for i, c := range columns {
		if m, ok := columnMeans[c]; ok {
			mean[i] = m
			std[i] = columnStds[c]
		} else {
			// Indicator columns: roughly 1-in-30 hot.
			mean[i] = 1.0 / 30.0
			std[i] = 0.18
		}
	}

	// Stumps over standardized features: positive leaf when the team is
	// above the training mean, scaled by how predictive the column is.
	stump := func(column string, weight float64) tree {
		return tree{Nodes: []node{
			{Feature: colIndex[column], Threshold: 0, Left: 1, Right: 2, DefaultLeft: true},
			{Feature: -1, Threshold: 0, Left: -1, Right: -1, Value: -weight},
			{Feature: -1, Threshold: 0, Left: -1, Right: -1, Value: weight},
		}}
	}

	model := classifier{
		BaseScore: 0,
		Trees: []tree{
			stump("W_PCT", 0.8),
			stump("PTS", 0.3),
			stump("FG_PCT", 0.25),
			stump("REB", 0.15),
			stump("AST", 0.15),
			stump("TOV", -0.2),
		},
	}

	write := func(name string, v interface{}) {
		path := filepath.Join(*outDir, name)
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			log.Fatalf("marshal %s: %v", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("write %s: %v", name, err)
		}
		fmt.Println("wrote", path)
	}

	write("columns.json", columns)
	write("imputer.json", map[string]interface{}{"means": columnMeans})
	write("scaler.json", map[string]interface{}{"mean": mean, "std": std})
	write("model.json", model)
}
