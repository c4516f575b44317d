// Command tester posts a fixture move request to a running serpentbrain
// server and prints the response, for quick manual smoke-testing without
// standing up a real match.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"
)

type wireGame struct {
	ID      string       `json:"id"`
	Ruleset wireRuleset  `json:"ruleset"`
	Map     string       `json:"map"`
	Source  string       `json:"source"`
	Timeout int          `json:"timeout"`
}

type wireRuleset struct {
	Name     string        `json:"name"`
	Version  string        `json:"version"`
	Settings wireSettings  `json:"settings"`
}

type wireSettings struct {
	FoodSpawnChance     int `json:"foodSpawnChance"`
	MinimumFood         int `json:"minimumFood"`
	HazardDamagePerTurn int `json:"hazardDamagePerTurn"`
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type wireSnake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Body    []point `json:"body"`
	Latency string  `json:"latency"`
	Head    point   `json:"head"`
	Length  int     `json:"length"`
	Shout   string  `json:"shout"`
}

type wireBoard struct {
	Height  int         `json:"height"`
	Width   int         `json:"width"`
	Food    []point     `json:"food"`
	Hazards []point     `json:"hazards"`
	Snakes  []wireSnake `json:"snakes"`
}

type moveRequest struct {
	Game  wireGame  `json:"game"`
	Turn  int       `json:"turn"`
	Board wireBoard `json:"board"`
	You   wireSnake `json:"you"`
}

func main() {
	addr := flag.String("addr", "http://localhost:8080/move", "server move endpoint")
	flag.Parse()

	you := wireSnake{
		ID:     "snake-id-1",
		Name:   "My Snake",
		Health: 90,
		Body:   []point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
		Head:   point{X: 1, Y: 1},
		Length: 3,
		Shout:  "I'm hungry!",
	}
	opponent := wireSnake{
		ID:     "snake-id-2",
		Name:   "Opponent Snake",
		Health: 80,
		Body:   []point{{X: 9, Y: 9}, {X: 9, Y: 8}, {X: 9, Y: 7}},
		Head:   point{X: 9, Y: 9},
		Length: 3,
		Shout:  "I'm coming for you!",
	}

	req := moveRequest{
		Game: wireGame{
			ID: "game-id-string",
			Ruleset: wireRuleset{
				Name:    "standard",
				Version: "1.0.0",
				Settings: wireSettings{
					FoodSpawnChance:     15,
					MinimumFood:         1,
					HazardDamagePerTurn: 0,
				},
			},
			Map:     "standard",
			Source:  "standard",
			Timeout: 500,
		},
		Turn: 10,
		Board: wireBoard{
			Height:  11,
			Width:   11,
			Food:    []point{{X: 5, Y: 5}},
			Hazards: []point{},
			Snakes:  []wireSnake{you, opponent},
		},
		You: you,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		fmt.Printf("error marshaling request: %v\n", err)
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(*addr, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("error sending request: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Printf("error decoding response: %v\n", err)
		return
	}
	fmt.Printf("response: %v\n", result)
}
