// Command musterctl prints roster reports from a running quarterdeck
// instance. It is the operator-side stand-in for the dashboard's
// exported reports.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/seaborne/quarterdeck/internal/domain/aggregate"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
)

const defaultAddr = "http://localhost:8080"

func main() {
	app := &cli.App{
		Name:  "musterctl",
		Usage: "crew muster reports from a running quarterdeck",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   defaultAddr,
				Usage:   "base URL of the quarterdeck service",
				EnvVars: []string{"QD_ADDR"},
			},
			&cli.StringFlag{
				Name:  "output",
				Value: "text",
				Usage: "output format: text, yaml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "muster",
				Usage:  "print the compliance muster grouped by squad",
				Action: runMuster,
			},
			{
				Name:   "leaderboard",
				Usage:  "print the activity leaderboards",
				Action: runLeaderboard,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 10, Usage: "entries per ranking"},
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getJSON(addr, path string, out any) error {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(addr + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func runMuster(c *cli.Context) error {
	addr := c.String("addr")

	var crew []roster.CrewMember
	if err := getJSON(addr, "/api/crew", &crew); err != nil {
		return err
	}
	var summary aggregate.Summary
	if err := getJSON(addr, "/api/compliance", &summary); err != nil {
		return err
	}

	if c.String("output") == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(map[string]any{
			"summary": summary,
			"crew":    crew,
		})
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	bold.Printf("Muster report: %d crew, %d%% compliant, %d on LOA\n\n",
		summary.Total, summary.Percent, summary.OnLOA)

	for _, squad := range summary.Squads {
		bold.Printf("%s (%d/%d compliant)\n", squad.Squad, squad.Compliant, squad.Total)
		for _, m := range crew {
			if m.Squad != squad.Squad {
				continue
			}
			switch {
			case m.LOAStatus:
				yellow.Printf("  %-24s %-6s LOA", m.Name, m.Rank)
				if m.LOAReturnDate != "" {
					yellow.Printf(" (returns %s)", m.LOAReturnDate)
				}
				fmt.Println()
			case m.SailingCompliant && m.HostingCompliant:
				green.Printf("  %-24s %-6s compliant\n", m.Name, m.Rank)
			default:
				red.Printf("  %-24s %-6s sailing=%v hosting=%v\n",
					m.Name, m.Rank, m.SailingCompliant, m.HostingCompliant)
			}
		}
		fmt.Println()
	}
	return nil
}

func runLeaderboard(c *cli.Context) error {
	addr := c.String("addr")

	var rankings aggregate.Rankings
	path := fmt.Sprintf("/api/leaderboard?limit=%d", c.Int("limit"))
	if err := getJSON(addr, path, &rankings); err != nil {
		return err
	}

	if c.String("output") == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(rankings)
	}

	bold := color.New(color.Bold)
	bold.Println("Top hosts")
	for i, e := range rankings.TopHosts {
		fmt.Printf("  %2d. %-24s %d\n", i+1, e.Name, e.HostCount)
	}
	bold.Println("Top voyagers")
	for i, e := range rankings.TopVoyagers {
		fmt.Printf("  %2d. %-24s %d\n", i+1, e.Name, e.VoyageCount)
	}
	return nil
}
