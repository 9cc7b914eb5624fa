//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"

	"github.com/markkurossi/ephemelier-bignum/bignum"
	"github.com/markkurossi/ephemelier-bignum/bignum/drbg"
)

// bench runs ExpMod across a handful of modulus sizes and prints a
// bit-size-vs-throughput table driven by timed samples.
func bench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	iterations := fs.Int("n", 20, "exponentiations per modulus size")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "bench: parsing flags")
	}

	rnd, err := drbg.NewFromSystemRandom()
	if err != nil {
		return errors.Wrap(err, "bench: seeding DRBG")
	}

	limits := bignum.DefaultLimits
	sizes := []int{256, 512, 1024, 2048}

	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Modulus bits")
	tab.Header("ExpMod/s")
	tab.Header("us/op")

	for _, bits := range sizes {
		var n, e, a bignum.Int
		if err := bignum.GenPrime(&n, bits, false, rnd, limits); err != nil {
			return errors.Wrapf(err, "bench: generating %d-bit modulus", bits)
		}
		if err := e.Lset(65537, limits); err != nil {
			return errors.Wrap(err, "bench: setting exponent")
		}
		if err := bignum.FillRandom(&a, bits/8, rnd, limits); err != nil {
			return errors.Wrap(err, "bench: filling base")
		}

		var rr bignum.RRCache
		var x bignum.Int
		start := time.Now()
		for i := 0; i < *iterations; i++ {
			if err := bignum.ExpMod(&x, &a, &e, &n, &rr, limits); err != nil {
				return errors.Wrapf(err, "bench: ExpMod at %d bits", bits)
			}
		}
		elapsed := time.Since(start)

		perSecond := float64(*iterations) / elapsed.Seconds()
		usPerOp := elapsed.Seconds() * 1e6 / float64(*iterations)

		row := tab.Row()
		row.Column(fmt.Sprintf("%d", bits))
		row.Column(fmt.Sprintf("%.1f", perSecond))
		row.Column(fmt.Sprintf("%.1f", usPerOp))
	}

	tab.Print(os.Stdout)
	return nil
}
