// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd_test

import (
	"fmt"
	"log"

	"github.com/dalzilio/bcdd"
)

// This example shows the basic usage of the package: create a BDD, compute
// some expressions and count the satisfying assignments of the result.
func Example_basic() {
	// Create a new BDD with 6 variables and the default table sizes.
	b, err := bcdd.New(6)
	if err != nil {
		log.Fatal(err)
	}
	// n1 is a set comprising the three variables {x2, x3, x5}. It can also be
	// interpreted as the Boolean expression: x2 & x3 & x5
	n1, _ := b.Makeset([]int{2, 3, 5})
	// n2 == x1 | !x3 | x4; negated literals cost nothing thanks to
	// complement edges
	n2, _ := b.Or(b.Ithvar(1), b.NIthvar(3), b.Ithvar(4))
	// n3 == ∃ x2,x3,x5 . (n2 & x3)
	f, _ := b.And(n2, b.Ithvar(3))
	n3, _ := b.Exist(f, n1)
	fmt.Printf("Number of sat. assignments: %s\n", b.Satcount(n3))
	// Output:
	// Number of sat. assignments: 48
}

// This example shows that two equivalent expressions always evaluate to the
// same edge, so that equivalence checking is a simple comparison.
func Example_canonicity() {
	b, err := bcdd.New(2)
	if err != nil {
		log.Fatal(err)
	}
	// De Morgan: !(x0 & x1) == !x0 | !x1
	lhs, _ := b.Nand(b.Ithvar(0), b.Ithvar(1))
	rhs, _ := b.Or(b.NIthvar(0), b.NIthvar(1))
	fmt.Println(b.Equal(lhs, rhs))
	// Output:
	// true
}
