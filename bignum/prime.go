//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

import (
	"io"

	"github.com/markkurossi/ephemelier-bignum/bignumtrace"
)

// smallPrime lists the odd primes below 1000, used by
// CheckSmallFactors as a cheap sieve before Miller-Rabin.
var smallPrime = []int{
	3, 5, 7, 11, 13, 17, 19, 23,
	29, 31, 37, 41, 43, 47, 53, 59,
	61, 67, 71, 73, 79, 83, 89, 97,
	101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179,
	181, 191, 193, 197, 199, 211, 223, 227,
	229, 233, 239, 241, 251, 257, 263, 269,
	271, 277, 281, 283, 293, 307, 311, 313,
	317, 331, 337, 347, 349, 353, 359, 367,
	373, 379, 383, 389, 397, 401, 409, 419,
	421, 431, 433, 439, 443, 449, 457, 461,
	463, 467, 479, 487, 491, 499, 503, 509,
	521, 523, 541, 547, 557, 563, 569, 571,
	577, 587, 593, 599, 601, 607, 613, 617,
	619, 631, 641, 643, 647, 653, 659, 661,
	673, 677, 683, 691, 701, 709, 719, 727,
	733, 739, 743, 751, 757, 761, 769, 773,
	787, 797, 809, 811, 821, 823, 827, 829,
	839, 853, 857, 859, 863, 877, 881, 883,
	887, 907, 911, 919, 929, 937, 941, 947,
	953, 967, 971, 977, 983, 991, 997,
}

// FillRandom sets X to a non-negative integer drawn from size bytes
// of randomness read from rnd, normalised through a big-endian byte
// buffer so the result doesn't depend on platform endianness.
func FillRandom(x *Int, size int, rnd io.Reader, limits Limits) error {
	if size > limits.MaxSize {
		return StatusBadInput
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return err
	}
	return ReadBinary(x, buf, limits)
}

// CheckSmallFactors tests X (must be positive) against the small
// prime table. It returns (true, nil) if X is certainly prime (X is
// itself one of the small primes or smaller), (false, nil) if X
// survives the sieve and needs a further primality test, or
// StatusNotAcceptable if a small prime divides X.
func CheckSmallFactors(x *Int) (bool, error) {
	if lowBit(x) == 0 {
		return false, StatusNotAcceptable
	}

	for _, p := range smallPrime {
		if CmpInt(x, int64(p)) <= 0 {
			return true, nil
		}
		r, err := ModInt(x, Word(p))
		if err != nil {
			return false, err
		}
		if r == 0 {
			return false, StatusNotAcceptable
		}
	}
	return false, nil
}

// MillerRabin runs a Miller-Rabin pseudo-primality test (HAC 4.24) on
// X using randomness from rnd, with a round count from HAC table 4.4
// scaled to X's bit size. Returns StatusNotAcceptable if X is
// composite.
func MillerRabin(x *Int, rnd io.Reader, limits Limits) error {
	var w, r, t, a Int
	var rr RRCache
	defer w.Free()
	defer r.Free()
	defer t.Free()
	defer a.Free()
	defer rr.Free()

	if err := SubInt(&w, x, 1, limits); err != nil {
		return err
	}
	s := w.Lsb()
	if err := r.Copy(&w, limits); err != nil {
		return err
	}
	if err := ShiftR(&r, s, limits); err != nil {
		return err
	}

	msb := x.Msb()
	var n int
	switch {
	case msb >= 1300:
		n = 2
	case msb >= 850:
		n = 3
	case msb >= 650:
		n = 4
	case msb >= 350:
		n = 8
	case msb >= 250:
		n = 12
	case msb >= 150:
		n = 18
	default:
		n = 27
	}

	for i := 0; i < n; i++ {
		if err := FillRandom(&a, len(x.limbs)*ciL, rnd, limits); err != nil {
			return err
		}

		if CmpMpi(&a, &w) >= 0 {
			j := a.Msb() - w.Msb()
			if err := ShiftR(&a, j+1, limits); err != nil {
				return err
			}
		}
		if len(a.limbs) == 0 {
			if err := a.Lset(0, limits); err != nil {
				return err
			}
		}
		a.limbs[0] |= 3

		if err := ExpMod(&a, &a, &r, x, &rr, limits); err != nil {
			return err
		}

		if CmpMpi(&a, &w) == 0 || CmpInt(&a, 1) == 0 {
			continue
		}

		j := 1
		for j < s && CmpMpi(&a, &w) != 0 {
			if err := MulMpi(&t, &a, &a, limits); err != nil {
				return err
			}
			if err := ModMpi(&a, &t, x, limits); err != nil {
				return err
			}
			if CmpInt(&a, 1) == 0 {
				break
			}
			j++
		}

		if CmpMpi(&a, &w) != 0 || CmpInt(&a, 1) == 0 {
			return StatusNotAcceptable
		}
	}
	return nil
}

// IsPrime runs a full pseudo-primality test on X: small-factor sieve
// followed by Miller-Rabin. X's sign is ignored (|X| is tested).
func IsPrime(x *Int, rnd io.Reader, limits Limits) error {
	var xx Int
	defer xx.Free()
	if err := xx.Copy(x, limits); err != nil {
		return err
	}
	xx.sign = 1

	if CmpInt(&xx, 0) == 0 || CmpInt(&xx, 1) == 0 {
		return StatusNotAcceptable
	}
	if CmpInt(&xx, 2) == 0 {
		return nil
	}

	prime, err := CheckSmallFactors(&xx)
	if err != nil {
		return err
	}
	if prime {
		return nil
	}

	return MillerRabin(&xx, rnd, limits)
}

// GenPrime generates a random prime of exactly nbits bits into X. If
// dhFlag is true, X is generated as a safe prime suitable for
// Diffie-Hellman use (X = 2Y + 1 with Y also prime).
func GenPrime(x *Int, nbits int, dhFlag bool, rnd io.Reader, limits Limits) error {
	if nbits < 3 || nbits > limits.MaxBits {
		return StatusBadInput
	}

	n := bitsToLimbs(nbits)
	if err := FillRandom(x, n*ciL, rnd, limits); err != nil {
		return err
	}

	k := x.Msb()
	if k < nbits {
		if err := ShiftL(x, nbits-k, limits); err != nil {
			return err
		}
	}
	if k > nbits {
		if err := ShiftR(x, k-nbits, limits); err != nil {
			return err
		}
	}
	x.limbs[0] |= 3

	if !dhFlag {
		for {
			err := IsPrime(x, rnd, limits)
			if err == nil {
				return nil
			}
			if err != StatusNotAcceptable {
				return err
			}
			bignumtrace.Debugf("GenPrime: candidate rejected, nbits=%d", nbits)
			if err := AddInt(x, x, 2, limits); err != nil {
				return err
			}
		}
	}

	r, err := ModInt(x, 3)
	if err != nil {
		return err
	}
	switch r {
	case 0:
		if err := AddInt(x, x, 8, limits); err != nil {
			return err
		}
	case 1:
		if err := AddInt(x, x, 4, limits); err != nil {
			return err
		}
	}

	var y Int
	defer y.Free()
	if err := y.Copy(x, limits); err != nil {
		return err
	}
	if err := ShiftR(&y, 1, limits); err != nil {
		return err
	}

	for {
		// Check small factors on both X and Y before paying for
		// Miller-Rabin on either; any step rejecting its candidate
		// short-circuits the rest.
		ok, err := sievesPrime(x, &y, rnd, limits)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		// Bump Y by 6 and X by 12 to preserve X = 3 mod 4, X = 2 mod 3
		// (equivalently Y = 1 mod 2, Y = 2 mod 3) across candidates.
		if err := AddInt(x, x, 12, limits); err != nil {
			return err
		}
		if err := AddInt(&y, &y, 6, limits); err != nil {
			return err
		}
	}
}

// sievesPrime reports whether both x and y pass the small-factor
// sieve and Miller-Rabin, short-circuiting on the first rejection.
// A StatusNotAcceptable from any step yields (false, nil); any other
// error aborts immediately.
func sievesPrime(x, y *Int, rnd io.Reader, limits Limits) (bool, error) {
	for _, step := range []func() error{
		func() error { _, err := CheckSmallFactors(x); return err },
		func() error { _, err := CheckSmallFactors(y); return err },
		func() error { return MillerRabin(x, rnd, limits) },
		func() error { return MillerRabin(y, rnd, limits) },
	} {
		if err := step(); err != nil {
			if err == StatusNotAcceptable {
				return false, nil
			}
			return false, err
		}
	}
	return true, nil
}
