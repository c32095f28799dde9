// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dalzilio/bcdd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func queensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "queens N",
		Short: "Count the solutions of the N-Queens problem",
		Long: `Build a BDD with NxN variables, one for each square of the chess
board, constrain it so that exactly one queen sits in each row and no two
queens attack each other, and count the satisfying assignments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("argument must be a positive board size, not %q", args[0])
			}
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()
			start := time.Now()
			b, count, err := queens(n, logger)
			if err != nil {
				return err
			}
			logger.Info("computation finished",
				zap.Int("N", n),
				zap.Duration("took", time.Since(start)),
				zap.Int("allocated", b.Allocated()),
			)
			fmt.Printf("queens(%d) has %s solutions\n", n, count)
			if flagStats {
				fmt.Print(b.Stats())
			}
			return nil
		},
	}
}

// queens returns the manager together with the number of placements of n
// non-attacking queens on an n by n board. Square (i,j) is variable i*n+j.
func queens(n int, logger *zap.Logger) (*bcdd.BDD, string, error) {
	b, err := bcdd.New(n*n,
		bcdd.Nodesize(flagNodes),
		bcdd.Cachesize(flagCache),
		bcdd.Workers(flagWorkers),
		bcdd.Grain(flagGrain),
		bcdd.Logger(logger),
	)
	if err != nil {
		return nil, "", err
	}
	x := make([][]bcdd.Edge, n)
	for i := range x {
		x[i] = make([]bcdd.Edge, n)
		for j := range x[i] {
			x[i][j] = b.Ithvar(i*n + j)
		}
	}
	queen := b.True()
	// a queen in each row
	for i := 0; i < n; i++ {
		row, err := b.Or(x[i]...)
		if err != nil {
			return nil, "", err
		}
		if queen, err = b.And(queen, row); err != nil {
			return nil, "", err
		}
	}
	// no two queens on the same column, row, or diagonal
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f, err := free(b, x, i, j)
			if err != nil {
				return nil, "", err
			}
			if queen, err = b.And(queen, f); err != nil {
				return nil, "", err
			}
		}
	}
	return b, b.Satcount(queen).String(), nil
}

// free builds the constraint that a queen on square (i,j) excludes every
// square it attacks.
func free(b *bcdd.BDD, x [][]bcdd.Edge, i, j int) (bcdd.Edge, error) {
	n := len(x)
	res := b.True()
	excl := func(k, l int) error {
		imp, err := b.Imp(x[i][j], b.Not(x[k][l]))
		if err != nil {
			return err
		}
		res, err = b.And(res, imp)
		return err
	}
	for k := 0; k < n; k++ {
		if k != j {
			if err := excl(i, k); err != nil {
				return bcdd.Edge{}, err
			}
		}
		if k != i {
			if err := excl(k, j); err != nil {
				return bcdd.Edge{}, err
			}
			if l := k - i + j; l >= 0 && l < n {
				if err := excl(k, l); err != nil {
					return bcdd.Edge{}, err
				}
			}
			if l := i + j - k; l >= 0 && l < n {
				if err := excl(k, l); err != nil {
					return bcdd.Edge{}, err
				}
			}
		}
	}
	return res, nil
}
