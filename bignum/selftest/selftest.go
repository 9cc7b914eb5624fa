//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

// Package selftest adapts the original engine's disabled
// POLARSSL_SELF_TEST checkup routine into an ordinary Go test
// harness: the same worked vectors, run against MulMpi, DivMpi,
// ExpMod, InvMod and Gcd, reported as a table instead of stopping at
// the first failure.
package selftest

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/markkurossi/tabulate"

	"github.com/markkurossi/ephemelier-bignum/bignum"
)

type vector struct {
	name string
	run  func() error
}

const (
	selfTestA = "EFE021C2645FD1DC586E69184AF4A31E" +
		"D5F53E93B5F123FA41680867BA110131" +
		"944FE7952E2517337780CB0DB80E61AA" +
		"E7C8DDC6C5C6AADEB34EB38A2F40D5E6"
	selfTestE = "B2E7EFD37075B9F03FF989C7C5051C20" +
		"34D2A323810251127E7BF8625A4F49A5" +
		"F3E27F4DA8BD59C47D6DAABA4C8127BD" +
		"5B5C25763222FEFCCFC38B832366C29E"
	selfTestN = "0066A198186C18C10B2F5ED9B522752A" +
		"9830B69916E535C8F047518A889A43A5" +
		"94B6BED27A168D31D4A52F88925AA8F5"
	selfTestMulU = "602AB7ECA597A3D6B56FF9829A5E8B85" +
		"9E857EA95A03512E2BAE7391688D264A" +
		"A5663B0341DB9CCFD2C4C5F421FEC814" +
		"8001B72E848A38CAE1C65F78E56ABDEF" +
		"E12D3C039B8A02D6BE593F0BBBDA56F1" +
		"ECF677152EF804370C1A305CAF3B5BF1" +
		"30879B56C61DE584A0F53A2447A51E"
	selfTestDivQ = "256567336059E52CAE22925474705F39A94"
	selfTestDivR = "6613F26162223DF488E9CD48CC132C7A" +
		"0AC93C701B001B092E4E5B9F73BCD27B" +
		"9EE50D0657C77F374E903CDFA4C642"
	selfTestExpModU = "36E139AEA55215609D2816998ED020BB" +
		"BD96C37890F65171D948E9BC7CBAA4D9" +
		"325D24D6A3C12710F10A09FA08AB87"
	selfTestInvModU = "003A0AAEDD7E784FC07D8F9EC6E3BFD5" +
		"C3DBA76456363A10869622EAC2DD84EC" +
		"C5B8A74DAC4D09E03B5E0BE779F2DF61"
)

// gcdPairs is the original engine's gcd_pairs table.
var gcdPairs = [][3]int64{
	{693, 609, 21},
	{1764, 868, 28},
	{768454923, 542167814, 1},
}

func readHex(s string) (*bignum.Int, error) {
	x := bignum.NewInt()
	if err := bignum.ReadString(x, 16, s, bignum.DefaultLimits); err != nil {
		return nil, err
	}
	return x, nil
}

func mustHex(s string) *bignum.Int {
	x, err := readHex(s)
	if err != nil {
		panic(err)
	}
	return x
}

func vectors() []vector {
	return []vector{
		{
			name: "mul_mpi",
			run: func() error {
				a, n := mustHex(selfTestA), mustHex(selfTestN)
				want := mustHex(selfTestMulU)
				var x bignum.Int
				if err := bignum.MulMpi(&x, a, n, bignum.DefaultLimits); err != nil {
					return err
				}
				return expectEqual(&x, want)
			},
		},
		{
			name: "div_mpi",
			run: func() error {
				a, n := mustHex(selfTestA), mustHex(selfTestN)
				wantQ, wantR := mustHex(selfTestDivQ), mustHex(selfTestDivR)
				var q, r bignum.Int
				if err := bignum.DivMpi(&q, &r, a, n, bignum.DefaultLimits); err != nil {
					return err
				}
				if err := expectEqual(&q, wantQ); err != nil {
					return err
				}
				return expectEqual(&r, wantR)
			},
		},
		{
			name: "exp_mod",
			run: func() error {
				a, e, n := mustHex(selfTestA), mustHex(selfTestE), mustHex(selfTestN)
				want := mustHex(selfTestExpModU)
				var x bignum.Int
				if err := bignum.ExpMod(&x, a, e, n, nil, bignum.DefaultLimits); err != nil {
					return err
				}
				return expectEqual(&x, want)
			},
		},
		{
			name: "inv_mod",
			run: func() error {
				a, n := mustHex(selfTestA), mustHex(selfTestN)
				want := mustHex(selfTestInvModU)
				var x bignum.Int
				if err := bignum.InvMod(&x, a, n, bignum.DefaultLimits); err != nil {
					return err
				}
				return expectEqual(&x, want)
			},
		},
		{
			name: "simple_gcd",
			run: func() error {
				for i, pair := range gcdPairs {
					var x, y, g bignum.Int
					if err := x.Lset(pair[0], bignum.DefaultLimits); err != nil {
						return err
					}
					if err := y.Lset(pair[1], bignum.DefaultLimits); err != nil {
						return err
					}
					if err := bignum.Gcd(&g, &x, &y, bignum.DefaultLimits); err != nil {
						return err
					}
					if bignum.CmpInt(&g, pair[2]) != 0 {
						return fmt.Errorf("gcd_pairs[%d]: gcd(%d,%d) mismatch", i, pair[0], pair[1])
					}
				}
				return nil
			},
		},
	}
}

func expectEqual(got, want *bignum.Int) error {
	if bignum.CmpMpi(got, want) != 0 {
		gs, _ := bignum.WriteString(got, 16, bignum.DefaultLimits)
		ws, _ := bignum.WriteString(want, 16, bignum.DefaultLimits)
		return fmt.Errorf("mismatch: got %s, want %s", gs, ws)
	}
	return nil
}

// Run executes every worked vector, printing a pass/fail table to w
// and returning an aggregate error (via go-multierror) listing every
// failure instead of stopping at the first one.
func Run(w io.Writer) error {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Test")
	tab.Header("Result")

	var result *multierror.Error
	for _, v := range vectors() {
		err := v.run()

		row := tab.Row()
		row.Column(v.name)
		if err != nil {
			row.Column("FAIL: " + err.Error())
			result = multierror.Append(result, fmt.Errorf("%s: %w", v.name, err))
		} else {
			row.Column("PASS")
		}
	}

	tab.Print(w)
	return result.ErrorOrNil()
}
