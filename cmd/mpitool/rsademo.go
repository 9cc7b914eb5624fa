//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/markkurossi/ephemelier-bignum/bignum"
	"github.com/markkurossi/ephemelier-bignum/bignum/drbg"
)

// rsademo generates a textbook RSA key pair out of two bignum.GenPrime
// primes and round-trips a message through encryption and decryption,
// printing every intermediate value so the bignum primitives backing
// it can be inspected by hand.
func rsademo(args []string) error {
	fs := flag.NewFlagSet("rsademo", flag.ExitOnError)
	bits := fs.Int("bits", 512, "bit length of each prime factor")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "rsademo: parsing flags")
	}

	rnd, err := drbg.NewFromSystemRandom()
	if err != nil {
		return errors.Wrap(err, "rsademo: seeding DRBG")
	}

	limits := bignum.DefaultLimits

	var p, q bignum.Int
	if err := bignum.GenPrime(&p, *bits, false, rnd, limits); err != nil {
		return errors.Wrap(err, "rsademo: generating p")
	}
	if err := bignum.GenPrime(&q, *bits, false, rnd, limits); err != nil {
		return errors.Wrap(err, "rsademo: generating q")
	}

	var n, pMinus1, qMinus1, phi bignum.Int
	if err := bignum.MulMpi(&n, &p, &q, limits); err != nil {
		return errors.Wrap(err, "rsademo: computing n")
	}
	if err := bignum.SubInt(&pMinus1, &p, 1, limits); err != nil {
		return errors.Wrap(err, "rsademo: computing p-1")
	}
	if err := bignum.SubInt(&qMinus1, &q, 1, limits); err != nil {
		return errors.Wrap(err, "rsademo: computing q-1")
	}
	if err := bignum.MulMpi(&phi, &pMinus1, &qMinus1, limits); err != nil {
		return errors.Wrap(err, "rsademo: computing phi(n)")
	}

	var e, d bignum.Int
	if err := e.Lset(65537, limits); err != nil {
		return errors.Wrap(err, "rsademo: setting e")
	}
	if err := bignum.InvMod(&d, &e, &phi, limits); err != nil {
		return errors.Wrap(err, "rsademo: computing d = e^-1 mod phi(n)")
	}

	var m bignum.Int
	if err := m.Lset(0x1337C0DE, limits); err != nil {
		return errors.Wrap(err, "rsademo: setting plaintext")
	}

	var rr bignum.RRCache
	var c, recovered bignum.Int
	if err := bignum.ExpMod(&c, &m, &e, &n, &rr, limits); err != nil {
		return errors.Wrap(err, "rsademo: encrypting")
	}
	if err := bignum.ExpMod(&recovered, &c, &d, &n, &rr, limits); err != nil {
		return errors.Wrap(err, "rsademo: decrypting")
	}

	nHex, _ := bignum.WriteString(&n, 16, limits)
	cHex, _ := bignum.WriteString(&c, 16, limits)
	mHex, _ := bignum.WriteString(&m, 16, limits)
	rHex, _ := bignum.WriteString(&recovered, 16, limits)

	fmt.Printf("n  = %s\n", nHex)
	fmt.Printf("e  = 65537\n")
	fmt.Printf("m  = %s\n", mHex)
	fmt.Printf("c  = Enc(m) = %s\n", cHex)
	fmt.Printf("m' = Dec(c) = %s\n", rHex)

	if bignum.CmpMpi(&m, &recovered) != 0 {
		return errors.New("rsademo: decrypted value does not match plaintext")
	}
	fmt.Println("round trip OK")
	return nil
}
