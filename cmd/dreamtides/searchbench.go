package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/internal/logger"
	"github.com/dreamtides/dtengine/search"
)

var (
	searchBenchRollouts int
	searchBenchThreads  int
	searchBenchSeed     int64
)

var searchBenchCmd = &cobra.Command{
	Use:   "search-bench",
	Short: "Benchmark the UCT search AI against the built-in sample battle",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := searchBenchSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		cat, err := catalog.Build(sampleCards())
		if err != nil {
			return fmt.Errorf("building catalog: %w", err)
		}
		s, err := newDemoBattle(cat, seed)
		if err != nil {
			return fmt.Errorf("setting up battle: %w", err)
		}

		root := search.NewBattleNode(s, seed)
		status := root.Status()
		if status.Over {
			fmt.Println("demo battle is already over; nothing to search")
			return nil
		}

		logger.LogMeta("running search-bench: %d rollouts/thread across %d threads", searchBenchRollouts, searchBenchThreads)
		start := time.Now()
		results := search.ParallelSearch(root, status.CurrentTurn, searchBenchThreads, searchBenchRollouts, seed)
		elapsed := time.Since(start)

		best, ok := search.BestAction(results)
		if !ok {
			fmt.Println("no action could be searched (no legal actions at root)")
			return nil
		}

		totalVisits := 0
		for _, result := range results {
			totalVisits += result.Visits
		}

		fmt.Printf("threads: %d, rollouts/thread: %d, elapsed: %s\n", searchBenchThreads, searchBenchRollouts, elapsed)
		fmt.Printf("total rollouts: %d (%.0f rollouts/sec)\n", totalVisits, float64(totalVisits)/elapsed.Seconds())
		fmt.Printf("best action for player %d: %#v\n", status.CurrentTurn, best)
		return nil
	},
}

func init() {
	searchBenchCmd.Flags().IntVar(&searchBenchRollouts, "rollouts", 200, "rollouts per thread")
	searchBenchCmd.Flags().IntVar(&searchBenchThreads, "threads", 4, "number of search threads")
	searchBenchCmd.Flags().Int64Var(&searchBenchSeed, "seed", 0, "rng seed (0 picks one from the current time)")
}
