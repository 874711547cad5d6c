package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"lensrl/pkg/lensrl"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "episodes":
		return runEpisodes(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: lensrlctl <run|episodes|show> [flags]", msg)
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a JSON run config")
	store := fs.String("store", "memory", "store backend: memory or sqlite")
	dbPath := fs.String("db", "", "sqlite database path")
	episodes := fs.Int("episodes", 0, "number of episodes to roll out")
	seed := fs.Int64("seed", 0, "base episode seed")
	lenses := fs.Int("lenses", 0, "maximum number of lens elements")
	fNumber := fs.Float64("fno", 0, "system f-number")
	steps := fs.Int("steps", 0, "maximum valid steps per episode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := lensrl.RunRequest{}
	opts := lensrl.Options{StoreKind: *store, DBPath: *dbPath}
	if *configPath != "" {
		var err error
		req, opts, err = loadRunConfig(*configPath)
		if err != nil {
			return err
		}
	}
	if *episodes > 0 {
		req.Episodes = *episodes
	}
	if *seed != 0 {
		req.Seed = *seed
	}
	if *lenses > 0 {
		req.MaxLenses = *lenses
	}
	if *fNumber > 0 {
		req.FNumber = *fNumber
	}
	if *steps > 0 {
		req.MaxSteps = *steps
	}

	client, err := lensrl.NewClient(ctx, opts)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.Run(ctx, req)
	if err != nil {
		return err
	}

	for _, ep := range result.Episodes {
		fmt.Printf("episode %s seed=%d steps=%d valid=%d reward=%.4f rms=%.4g fov=%.1f\n",
			ep.ID, ep.Seed, ep.Steps, ep.ValidSteps, ep.TotalReward, ep.FinalRMS, ep.FinalFieldOfView)
	}
	fmt.Printf("mean total reward: %.4f\n", result.MeanTotalReward)
	return nil
}

func runEpisodes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("episodes", flag.ContinueOnError)
	store := fs.String("store", "sqlite", "store backend: memory or sqlite")
	dbPath := fs.String("db", "", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := lensrl.NewClient(ctx, lensrl.Options{StoreKind: *store, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()

	ids, err := client.Episodes(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	store := fs.String("store", "sqlite", "store backend: memory or sqlite")
	dbPath := fs.String("db", "", "sqlite database path")
	id := fs.String("id", "", "episode id")
	scale := fs.Bool("scale", false, "rescale the prescription to unity focal length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return usageError("show requires -id")
	}

	client, err := lensrl.NewClient(ctx, lensrl.Options{StoreKind: *store, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()

	record, ok, err := client.Episode(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("episode not found: %s", *id)
	}

	fmt.Printf("episode %s seed=%d steps=%d reward=%.4f rms=%.4g fov=%.1f f=%.4g\n",
		record.ID, record.Seed, len(record.Steps), record.TotalReward,
		record.FinalRMS, record.FinalFieldOfView, record.FinalFocalLength)

	sys := lensrl.SystemFromRecord(record)
	if *scale {
		if err := client.ScaleToUnityFocalLength(sys); err != nil {
			return err
		}
		fmt.Println("prescription (unity focal length):")
	} else {
		fmt.Println("prescription:")
	}

	for i, surf := range sys.Surfaces {
		radius := "inf"
		if !math.IsInf(surf.Radius, 0) {
			radius = fmt.Sprintf("%.4f", surf.Radius)
		}
		thickness := "inf"
		if !math.IsInf(surf.Thickness, 0) {
			thickness = fmt.Sprintf("%.4f", surf.Thickness)
		}
		glass := "air"
		if surf.Material != nil {
			glass = surf.Material.Name
		}
		stop := ""
		if surf.IsStop {
			stop = " [stop]"
		}
		fmt.Printf("  %2d: r=%s t=%s %s%s\n", i, radius, thickness, glass, stop)
	}
	return nil
}
