package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/pagepulse/backend/config"
	"github.com/pagepulse/backend/extractor"
	"github.com/pagepulse/backend/scheduler"
	"github.com/pagepulse/backend/seo"
	"github.com/pagepulse/backend/server"
	"github.com/pagepulse/backend/stats"
	"github.com/pagepulse/backend/store"
)

func main() {
	app := &cli.App{
		Name:  "pagepulse",
		Usage: "SEO health scoring for web pages",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: runServe,
			},
			{
				Name:      "analyze",
				Usage:     "Analyze a single URL and print the result",
				ArgsUsage: "<url>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "target keyword to score against"},
					&cli.BoolFlag{Name: "json", Usage: "print the full result as JSON"},
				},
				Action: runAnalyze,
			},
			{
				Name:  "list",
				Usage: "List stored analyses",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 20, Usage: "maximum rows to show"},
				},
				Action: runList,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runServe(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	usage, err := stats.NewStorage(cfg.DataDir)
	if err != nil {
		return err
	}

	srv := server.New(cfg, extractor.New(), st, usage)

	if cfg.ScheduleSpec != "" {
		sched := scheduler.New(st, func(ctx context.Context, pageURL, keyword string, now time.Time) error {
			_, err := srv.RunAnalysis(ctx, pageURL, keyword, now)
			return err
		}, cfg.ReanalysisMaxAge)
		if err := sched.Start(cfg.ScheduleSpec); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	return srv.Run()
}

func runAnalyze(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: pagepulse analyze <url>", 1)
	}

	pageURL, err := store.NormalizeURL(c.Args().First())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	signals, err := extractor.New().Extract(ctx, pageURL, c.String("keyword"))
	if err != nil {
		return fmt.Errorf("analyze %s: %w", pageURL, err)
	}

	result := seo.Analyze(*signals, time.Now())

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(pageURL, result)
	return nil
}

func printResult(pageURL string, result seo.AnalysisResult) {
	fmt.Printf("%s\n\n", pageURL)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Health score:\t%d/100 (%s)\n", result.HealthScore, result.Grade)
	fmt.Fprintf(w, "Core Web Vitals:\t%d/100\n", result.VitalsScore)
	fmt.Fprintf(w, "Trust score:\t%d/100\n", result.TrustScore)
	fmt.Fprintf(w, "Keyword density:\t%.2f%%\n", result.KeywordStats.Density)
	if result.ThinContent {
		fmt.Fprintf(w, "Thin content:\tyes\n")
	}
	if result.HasCriticalErrors {
		fmt.Fprintf(w, "Critical errors:\tyes\n")
	}
	w.Flush()

	if len(result.Recommendations) == 0 {
		fmt.Println("\nNo recommendations.")
		return
	}

	fmt.Printf("\nRecommendations (%d):\n", len(result.Recommendations))
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tCATEGORY\tMESSAGE")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Priority, rec.Category, rec.Message)
	}
	w.Flush()
}

func runList(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	analyses, err := st.Recent(ctx, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(analyses) == 0 {
		fmt.Println("No analyses stored yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "URL\tSCORE\tGRADE\tANALYZED")
	for _, a := range analyses {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", a.URL, a.HealthScore, a.Grade, a.AnalyzedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
