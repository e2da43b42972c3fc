package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/arrowlanes/prefabs"
	"gopkg.in/yaml.v3"
)

func main() {
	layoutName := flag.String("layout", prefabs.DefaultLayout, "layout file in prefabs/ (embedded copy used when not on disk)")
	laneList := flag.String("lanes", "", "comma separated lane indices to launch (default all)")
	maxTicks := flag.Int("max-ticks", 10000, "stop after this many ticks even if arrows are still moving")
	verbose := flag.Bool("v", false, "log scene events to stderr")
	flag.Parse()

	layout, err := prefabs.LoadLayout(*layoutName)
	if err != nil {
		log.Fatalf("load layout: %v", err)
	}

	lanes, err := parseLanes(*laneList)
	if err != nil {
		log.Fatalf("parse -lanes: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	report, err := simulate(layout, lanes, *maxTicks, logger)
	if err != nil {
		log.Fatal(err)
	}
	if !report.Settled {
		log.Printf("lanesim: still moving after %d ticks", report.Ticks)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		log.Fatalf("encode report: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func parseLanes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}
