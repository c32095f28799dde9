// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagNodes   int
	flagCache   int
	flagWorkers int
	flagGrain   int
	flagVerbose bool
	flagStats   bool
)

func main() {
	root := &cobra.Command{
		Use:           "bcdd",
		Short:         "Exercise the bcdd decision diagram library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&flagNodes, "nodes", 1<<22, "capacity of the node table")
	root.PersistentFlags().IntVar(&flagCache, "cache", 1<<18, "number of entries in the apply cache")
	root.PersistentFlags().IntVarP(&flagWorkers, "workers", "w", 1, "number of workers for the apply engine (0 means GOMAXPROCS)")
	root.PersistentFlags().IntVar(&flagGrain, "grain", 8, "recursion depth under which the engine stays sequential")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flagStats, "stats", false, "print operator statistics after the computation")
	root.AddCommand(queensCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bcdd:", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if !flagVerbose {
		return zap.NewNop(), nil
	}
	conf := zap.NewDevelopmentConfig()
	return conf.Build()
}
