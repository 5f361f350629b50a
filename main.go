package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordstat/internal/count"
	emojicmd "github.com/dtnitsch/wordstat/internal/emoji"
	"github.com/dtnitsch/wordstat/internal/runs"
	"github.com/dtnitsch/wordstat/pkg/help"
)

func main() {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:      "wordstat",
		Usage:     "count word frequencies across text files in parallel",
		ArgsUsage: "PATH...",
		Flags:     count.Flags(),
		Action:    count.CountAction,
		Commands: []*cli.Command{
			{
				Name:      "count",
				Usage:     "Count words in files and directories",
				ArgsUsage: "PATH...",
				Flags:     count.Flags(),
				Action:    count.CountAction,
			},
			{
				Name:      "emoji",
				Usage:     "Show the emoji matched for each word",
				ArgsUsage: "WORD...",
				Action:    emojicmd.LookupAction,
			},
			{
				Name:  "runs",
				Usage: "List runs stored in a report database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Usage:   "SQLite database written by count --db",
						EnvVars: []string{"WORDSTAT_DB"},
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Number of runs to show (0 = all)",
					},
				},
				Action: runs.RunsAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print common invocations as YAML",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
