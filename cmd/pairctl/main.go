// pairctl renders the server's debug status as operator-friendly tables.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"pairchat/domain"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	StatusAddr string        `envconfig:"PAIRCTL_STATUS_ADDR" default:"http://localhost:8081"`
	Timeout    time.Duration `envconfig:"PAIRCTL_TIMEOUT" default:"5s"`
	Colours    bool          `envconfig:"PAIRCTL_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	snapshot, err := fetchStatus(cfg)
	if err != nil {
		log.Fatalf("Failed to fetch status from %s: %v", cfg.StatusAddr, err)
	}

	printHeader(cfg, fmt.Sprintf("Online participants (%d)", len(snapshot.OnlineUsers)))
	onlineTable(snapshot)

	printHeader(cfg, fmt.Sprintf("Active pairs (%d)", len(snapshot.Pairs)))
	pairsTable(snapshot)

	printHeader(cfg, fmt.Sprintf("Waiting pool (%d)", len(snapshot.Waiting)))
	for _, id := range snapshot.Waiting {
		fmt.Println("  " + id)
	}
}

func fetchStatus(cfg Config) (domain.StatusSnapshot, error) {
	var snapshot domain.StatusSnapshot

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Get(cfg.StatusAddr + "/status")
	if err != nil {
		return snapshot, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return snapshot, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return snapshot, json.NewDecoder(resp.Body).Decode(&snapshot)
}

func printHeader(cfg Config, header string) {
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}

func onlineTable(snapshot domain.StatusSnapshot) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Participant", "Sessions"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, id := range snapshot.OnlineUsers {
		table.Append([]string{id, strconv.Itoa(snapshot.SessionCount[id])})
	}
	table.Render()
}

func pairsTable(snapshot domain.StatusSnapshot) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"A", "B"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, pair := range snapshot.Pairs {
		table.Append([]string{pair.A, pair.B})
	}
	table.Render()
}
