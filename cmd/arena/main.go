// Command arena pits two contestant executables against each other
// over stdin/stdout, round after round, and prints a running estimate
// of which one is stronger.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/agade09/wondev-arena/internal/arenaconfig"
	"github.com/agade09/wondev-arena/internal/contestant"
	"github.com/agade09/wondev-arena/internal/match"
	"github.com/agade09/wondev-arena/internal/round"
)

const (
	appName = "wondev-arena"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: error loading .env file: %v", err)
		}
	}

	cmd := &cli.Command{
		Name:      appName,
		Usage:     "referee two builder/pusher bots against each other",
		ArgsUsage: "<bot0> <bot1> [n_workers]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "write a per-turn debug log to stderr.log"},
			&cli.Float64Flag{Name: "timeout-scale", Value: 1.0, Usage: "multiply per-turn time budgets by this factor"},
			&cli.Int64Flag{Name: "games", Value: 0, Usage: "stop after this many rounds (0 = run forever)"},
			&cli.StringFlag{Name: "config", Usage: "path to an optional JSON tuning file"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return cli.Exit("arena takes 2 inputs, the names of the AIs fighting each other", 1)
	}

	names := round.Names{cmd.Args().Get(0), cmd.Args().Get(1)}
	workers := 1
	if cmd.Args().Len() >= 3 {
		if _, err := fmt.Sscanf(cmd.Args().Get(2), "%d", &workers); err != nil {
			return cli.Exit(fmt.Sprintf("invalid n_workers %q", cmd.Args().Get(2)), 1)
		}
	}

	for _, name := range names {
		if _, err := os.Stat(name); err != nil {
			return cli.Exit(fmt.Sprintf("%s couldn't be found", name), 1)
		}
	}

	cfgManager := arenaconfig.NewManager()
	tuning, err := cfgManager.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load tuning config: %w", err)
	}
	if cmd.IsSet("timeout-scale") {
		tuning.TimeoutScale = cmd.Float64("timeout-scale")
	}
	if cmd.IsSet("debug") {
		tuning.Debug = cmd.Bool("debug")
	}

	round.MaxTurns = tuning.MaxTurns

	var debugLog *os.File
	if tuning.Debug {
		debugLog, err = os.Create("stderr.log")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer debugLog.Close()
	}

	fmt.Printf("Testing AI %s", names[0])
	fmt.Fprintf(os.Stderr, " vs %s\n", names[1])

	var timing contestant.Timing
	if tuning.FastTiming {
		timing = contestant.NewTiming(true)
	} else {
		timing = contestant.Timing{
			FirstTurnTime: scaleMillis(tuning.FirstTurnMillis, tuning.TimeoutScale),
			TimeLimit:     scaleMillis(tuning.TurnMillis, tuning.TimeoutScale),
		}
	}

	signal.Ignore(syscall.SIGPIPE)

	done := make(chan struct{})
	go watchForShutdown(done)

	opts := match.Options{
		Names:    names,
		Timing:   timing,
		Workers:  workers,
		MaxGames: cmd.Int64("games"),
		DebugLog: debugLog,
	}
	match.Run(done, opts)

	return nil
}

// watchForShutdown closes done once SIGTERM (or a local interrupt) is
// received, so the match pool's workers see it at the top of their
// next round and stop cleanly.
func watchForShutdown(done chan struct{}) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, os.Interrupt)
	<-sigCh
	close(done)
}

func scaleMillis(ms int, scale float64) time.Duration {
	return time.Duration(float64(ms)*scale) * time.Millisecond
}
