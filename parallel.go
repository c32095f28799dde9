// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"golang.org/x/sync/errgroup"
)

// fork evaluates the two cofactor branches of an apply call, possibly
// concurrently. The then-branch is handed to another goroutine when the
// engine is parallel (see Workers), the recursion is still shallow enough
// (see Grain) and a worker token is available; in every other case both
// branches run inline, which bounds the scheduling overhead on small
// subproblems. Results are always joined before the caller proceeds to the
// reduction step, and canonicalization is decided solely by the shared
// unique table, so the outcome does not depend on which branch finishes
// first. The first allocation failure wins and unwinds the call.
func (b *BDD) fork(depth int32, then, els func() (Edge, error)) (Edge, Edge, error) {
	if b.sem == nil || depth >= b.grain || !b.sem.TryAcquire(1) {
		t, err := then()
		if err != nil {
			return Edge{}, Edge{}, err
		}
		e, err := els()
		if err != nil {
			return Edge{}, Edge{}, err
		}
		return t, e, nil
	}
	var t Edge
	var grp errgroup.Group
	grp.Go(func() error {
		defer b.sem.Release(1)
		var err error
		t, err = then()
		return err
	})
	e, eerr := els()
	if terr := grp.Wait(); terr != nil {
		return Edge{}, Edge{}, terr
	}
	if eerr != nil {
		return Edge{}, Edge{}, eerr
	}
	return t, e, nil
}
