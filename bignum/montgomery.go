//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

import "github.com/markkurossi/ephemelier-bignum/bignumtrace"

// RRCache holds a precomputed R^2 mod N value so repeated ExpMod
// calls against the same modulus skip recomputing it. The zero value
// is empty; ExpMod fills it in on first use and recomputes
// automatically if handed a different modulus than it was last
// populated for.
type RRCache struct {
	valid bool
	mod   Int
	rr    Int
}

// Free zeroises and releases the cache's limb buffers, resetting it
// to the empty state.
func (c *RRCache) Free() {
	c.mod.Free()
	c.rr.Free()
	c.valid = false
}

// montgInit computes the Montgomery constant mm = -N[0]^-1 mod 2^biL
// via Newton's iteration (credited to Tom St Denis in the library this
// is ported from).
func montgInit(n *Int) Word {
	m0 := n.limbs[0]
	x := m0
	x += ((m0 + 2) & 4) << 1
	for i := biL; i >= 8; i /= 2 {
		x *= 2 - m0*x
	}
	return ^x + 1
}

// montmul computes A = A * B * R^-1 mod N (HAC 14.36), the core
// Montgomery step. N must have exactly nn = effectiveLen(N) limbs; A
// and B must already be grown to at least nn+1 limbs and T to at
// least 2*nn+2 — ExpMod establishes this fixed-width working set once
// and every montmul call within it relies on it.
func montmul(a, b, n *Int, mm Word, t *Int) {
	zeroiseWords(t.limbs)
	d := t.limbs
	nn := effectiveLen(n.limbs)
	m := effectiveLen(b.limbs)
	if m > nn {
		m = nn
	}

	for i := 0; i < nn; i++ {
		u0 := a.limbs[i]
		u1 := (d[i] + u0*b.limbs[0]) * mm

		mulHlp(m, b.limbs, d[i:], u0)
		mulHlp(nn, n.limbs, d[i:], u1)
	}
	copy(a.limbs, d[nn:nn+nn+1])

	if CmpAbs(a, n) >= 0 {
		subHlp(nn, n.limbs, a.limbs)
	} else {
		// Dummy subtraction into T, discarded: balances the timing of
		// the branch above against data-dependent reduction.
		subHlp(nn, a.limbs, t.limbs)
	}
}

// montred computes A = A * R^-1 mod N.
func montred(a, n *Int, mm Word, t *Int) {
	one := Int{sign: 1, limbs: []Word{1}}
	montmul(a, &one, n, mm, t)
}

// ExpMod computes X = A^E mod N by sliding-window Montgomery
// exponentiation (HAC 14.85). N must be positive and odd. rr, if
// non-nil, caches R^2 mod N across calls sharing the same modulus;
// pass a fresh *RRCache the first time and reuse it on subsequent
// calls against the same N.
func ExpMod(x, a, e, n *Int, rr *RRCache, limits Limits) error {
	if CmpInt(n, 0) < 0 || n.IsZero() || n.limbs[0]&1 == 0 {
		return StatusBadInput
	}
	if CmpInt(e, 0) < 0 {
		return StatusBadInput
	}

	mm := montgInit(n)
	nn := effectiveLen(n.limbs)

	msb := e.Msb()
	wsize := 1
	switch {
	case msb > 671:
		wsize = 6
	case msb > 239:
		wsize = 5
	case msb > 79:
		wsize = 4
	case msb > 23:
		wsize = 3
	}
	if wsize > limits.MaxWindow {
		bignumtrace.Debugf("ExpMod: clamping window size %d to MaxWindow %d", wsize, limits.MaxWindow)
		wsize = limits.MaxWindow
	}
	if wsize < 1 {
		wsize = 1
	}

	j := nn + 1
	if err := x.Grow(j, limits); err != nil {
		return err
	}

	w := make([]*Int, 1<<uint(wsize))
	w[1] = &Int{sign: 1}
	if err := w[1].Grow(j, limits); err != nil {
		return err
	}

	var t Int
	if err := t.Grow(j*2, limits); err != nil {
		return err
	}
	defer t.Free()
	defer func() {
		for _, wi := range w {
			if wi != nil {
				wi.Free()
			}
		}
	}()

	negInput := a.sign == -1
	negResult := negInput && len(e.limbs) > 0 && e.limbs[0]&1 != 0
	av := a
	var apos Int
	if negInput {
		if err := apos.Copy(a, limits); err != nil {
			return err
		}
		apos.sign = 1
		av = &apos
		defer apos.Free()
	}

	stale := rr == nil || !rr.valid || CmpMpi(&rr.mod, n) != 0

	var rrv *Int
	if stale {
		bignumtrace.Debugf("ExpMod: computing R^2 mod N for a %d-bit modulus", n.Msb())
		var fresh Int
		if err := fresh.Lset(1, limits); err != nil {
			return err
		}
		if err := ShiftL(&fresh, nn*2*biL, limits); err != nil {
			return err
		}
		if err := ModMpi(&fresh, &fresh, n, limits); err != nil {
			return err
		}
		if rr != nil {
			if err := rr.rr.Copy(&fresh, limits); err != nil {
				return err
			}
			if err := rr.mod.Copy(n, limits); err != nil {
				return err
			}
			rr.valid = true
			rrv = &rr.rr
		} else {
			rrv = &fresh
			defer fresh.Free()
		}
	} else {
		rrv = &rr.rr
	}

	if CmpMpi(av, n) >= 0 {
		if err := ModMpi(w[1], av, n, limits); err != nil {
			return err
		}
	} else {
		if err := w[1].Copy(av, limits); err != nil {
			return err
		}
	}
	montmul(w[1], rrv, n, mm, &t)

	if err := x.Copy(rrv, limits); err != nil {
		return err
	}
	montred(x, n, mm, &t)

	if wsize > 1 {
		top := 1 << uint(wsize-1)
		w[top] = &Int{sign: 1}
		if err := w[top].Grow(j, limits); err != nil {
			return err
		}
		if err := w[top].Copy(w[1], limits); err != nil {
			return err
		}
		for i := 0; i < wsize-1; i++ {
			montmul(w[top], w[top], n, mm, &t)
		}

		for i := top + 1; i < (1 << uint(wsize)); i++ {
			w[i] = &Int{sign: 1}
			if err := w[i].Grow(j, limits); err != nil {
				return err
			}
			if err := w[i].Copy(w[i-1], limits); err != nil {
				return err
			}
			montmul(w[i], w[1], n, mm, &t)
		}
	}

	nblimbs := len(e.limbs)
	bufsize := 0
	nbits := 0
	wbits := 0
	state := 0

	for {
		if bufsize == 0 {
			if nblimbs == 0 {
				break
			}
			nblimbs--
			bufsize = biL
		}
		bufsize--

		ei := (e.limbs[nblimbs] >> uint(bufsize)) & 1

		if ei == 0 && state == 0 {
			continue
		}
		if ei == 0 && state == 1 {
			montmul(x, x, n, mm, &t)
			continue
		}

		state = 2
		nbits++
		wbits |= int(ei) << uint(wsize-nbits)

		if nbits == wsize {
			for i := 0; i < wsize; i++ {
				montmul(x, x, n, mm, &t)
			}
			montmul(x, w[wbits], n, mm, &t)
			state--
			nbits = 0
			wbits = 0
		}
	}

	for i := 0; i < nbits; i++ {
		montmul(x, x, n, mm, &t)
		wbits <<= 1
		if wbits&(1<<uint(wsize)) != 0 {
			montmul(x, w[1], n, mm, &t)
		}
	}

	montred(x, n, mm, &t)

	if negResult {
		x.sign = -1
		if err := AddMpi(x, n, x, limits); err != nil {
			return err
		}
	}

	return nil
}
