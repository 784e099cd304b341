// Command simulate runs a two-road ATOA comparison in-process and prints ASCII
// frames and events to stdout. It needs neither Postgres nor Redis.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shenikar/atoa_simulation/internal/config"
	"github.com/shenikar/atoa_simulation/internal/geometry"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/shenikar/atoa_simulation/internal/render"
	"github.com/shenikar/atoa_simulation/internal/repository"
	"github.com/shenikar/atoa_simulation/internal/service"
	"github.com/shenikar/atoa_simulation/internal/webhook"
	"github.com/shenikar/atoa_simulation/pkg/logger"
)

func main() {
	cfg, err := config.LoadLocalConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	defaults := cfg.Simulation

	var (
		ticks     = flag.Int("ticks", 60, "number of ticks to run")
		every     = flag.Int("every", 1, "print a frame every n ticks")
		width     = flag.Int("width", 0, "cells per road line, 0 for one per road unit")
		viewpoint = flag.String("viewpoint", "", "vehicle sequence number whose view to draw, empty for the whole road")
		fog       = flag.Float64("fog", defaults.FogLevel, "fog level, 0 to 90")
		seed      = flag.Int64("seed", defaults.Params.Seed, "random seed, 0 picks one")
		topology  = flag.String("topology", string(defaults.Params.Topology), "looping or bounded")
		vehicles  = flag.Int("vehicles", defaults.Params.VehicleCount, "vehicles per road")
		prob      = flag.Float64("p", defaults.Params.AccidentProbability, "accident probability per tick")
		script    = flag.String("script", "", "scripted crashes as tick:seq pairs, e.g. 5:0,40:1")
		logLevel  = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	entries, err := parseScript(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing -script: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewWithFormat(*logLevel, "text", os.Stderr)
	repo := repository.NewMemoryRepository()
	svc := service.NewSimulationService(repo, repo, webhook.DiscardPublisher{}, log, cfg)

	params := defaults.Params
	params.Seed = *seed
	params.Topology = models.Topology(*topology)
	params.VehicleCount = *vehicles
	params.AccidentProbability = *prob

	ctx := context.Background()
	sim, err := svc.CreateSimulation(ctx, service.CreateRequest{Params: params, FogLevel: *fog, Script: entries})
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
		os.Exit(1)
	}
	visibility := geometry.VisibilityDistance(sim.FogLevel, sim.Params.BaseVisibility)
	fmt.Printf("seed %d  fog %.0f%%  visibility %.1f\n%s\n\n", sim.Params.Seed, sim.FogLevel, visibility, render.Legend)

	for sim.Status == models.SimulationRunning && sim.Tick < *ticks {
		res, err := svc.Step(ctx, sim.ID, 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
			os.Exit(1)
		}
		sim = res.Simulation

		if *every > 0 && (sim.Tick%*every == 0 || len(res.Events) > 0) {
			printFrame(sim, *viewpoint, visibility, *width)
		}
		for _, ev := range res.Events {
			marker := " "
			if ev.ShouldAnnounce {
				marker = "*"
			}
			fmt.Printf("%s [%s] %-6s %-14s %s\n", marker, ev.RoadID, ev.VehicleID, ev.Kind, ev.Message)
		}
	}

	fmt.Printf("\nfinished at tick %d (%s)\n", sim.Tick, sim.Status)
	for _, road := range sim.Roads {
		st := sim.Stats[road.ID]
		fmt.Printf("road %s alert=%-5v hazards=%d alerts=%d visual=%d stops=%d chain_crashes=%d crashed_now=%d\n",
			road.ID, road.AlertChannel, st.Hazards, st.AlertsReceived, st.VisualBrakes, st.SafeStops, st.ChainCrashes,
			road.CountStatus(models.StatusCrashed))
	}
}

func printFrame(sim *models.Simulation, viewpoint string, visibility float64, width int) {
	fmt.Printf("tick %d\n", sim.Tick)
	for _, road := range sim.Roads {
		opts := render.Options{Visibility: visibility, Width: width}
		if viewpoint != "" {
			opts.Viewpoint = road.ID + "-" + viewpoint
		}
		frame, err := render.Frame(road, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render error: %v\n", err)
			return
		}
		fmt.Print(frame)
	}
}

func parseScript(s string) ([]service.ScriptEntry, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var entries []service.ScriptEntry
	for _, pair := range strings.Split(s, ",") {
		tick, seq, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("%q is not tick:seq", pair)
		}
		t, err := strconv.Atoi(tick)
		if err != nil {
			return nil, fmt.Errorf("bad tick in %q: %w", pair, err)
		}
		q, err := strconv.Atoi(seq)
		if err != nil {
			return nil, fmt.Errorf("bad vehicle sequence in %q: %w", pair, err)
		}
		entries = append(entries, service.ScriptEntry{Tick: t, VehicleSeq: q})
	}
	return entries, nil
}
