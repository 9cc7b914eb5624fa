//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

// Int is a signed multi-precision integer: sign times the little-
// endian limb array limbs, i.e. sign * sum(limbs[i] * 2^(i*biL)).
//
// Zero is canonically represented with sign == 1 and every limb zero;
// AddMpi/SubMpi can leave sign == -1 on an all-zero result, which the
// comparators treat as zero.
// limbs is never shrunk by Grow; callers must not assume len(limbs)
// reflects the magnitude — scan from the top for the effective size,
// the way msb/lsb/cmpAbs all do.
type Int struct {
	sign  int
	limbs []Word
}

// NewInt returns a new zero-valued Int.
func NewInt() *Int {
	return &Int{sign: 1}
}

// Init resets X to the zero value, dropping its limb buffer without
// zeroising it — callers handling secret values should call Free
// instead.
func (x *Int) Init() {
	x.sign = 1
	x.limbs = nil
}

// Free zeroises X's limb buffer and releases it, resetting X to the
// initial state. The zeroisation is best-effort: Go has no volatile
// keyword, so the clearing loop relies on the slice having already
// escaped to the heap (true for any Int that has been grown) to
// survive as a write the compiler cannot prove is dead.
func (x *Int) Free() {
	zeroiseWords(x.limbs)
	x.sign = 1
	x.limbs = nil
}

func zeroiseWords(w []Word) {
	for i := range w {
		w[i] = 0
	}
}

// Grow ensures X has at least n limbs of capacity, per limits. It
// never shrinks an existing buffer. On success the new limbs (if any)
// are zero and the old ones are preserved; on allocation failure X is
// left unchanged.
func (x *Int) Grow(n int, limits Limits) error {
	if n > limits.MaxLimbs() {
		return StatusAllocFailed
	}
	if len(x.limbs) >= n {
		return nil
	}
	fresh := make([]Word, n)
	copy(fresh, x.limbs)
	zeroiseWords(x.limbs)
	x.limbs = fresh
	return nil
}

// Copy sets X to a copy of Y's value. If Y is the empty (freed) Int,
// X is freed instead of growing to hold a zero-length copy.
func (x *Int) Copy(y *Int, limits Limits) error {
	if x == y {
		return nil
	}
	if y.limbs == nil {
		x.Free()
		return nil
	}
	n := effectiveLen(y.limbs)
	x.sign = y.sign
	if err := x.Grow(n, limits); err != nil {
		return err
	}
	zeroiseWords(x.limbs)
	copy(x.limbs, y.limbs[:n])
	return nil
}

// Swap exchanges the contents of X and Y.
func (x *Int) Swap(y *Int) {
	*x, *y = *y, *x
}

// Lset sets X to the small signed integer z.
func (x *Int) Lset(z int64, limits Limits) error {
	if err := x.Grow(1, limits); err != nil {
		return err
	}
	zeroiseWords(x.limbs)
	if z < 0 {
		x.limbs[0] = Word(-z)
		x.sign = -1
	} else {
		x.limbs[0] = Word(z)
		x.sign = 1
	}
	return nil
}

// effectiveLen returns the number of limbs up to and including the
// highest non-zero one; 0 if every limb is zero.
func effectiveLen(p []Word) int {
	i := len(p)
	for i > 0 && p[i-1] == 0 {
		i--
	}
	return i
}

// Msb returns the 1-based index of the most significant set bit, or 0
// for the zero value.
func (x *Int) Msb() int {
	i := effectiveLen(x.limbs)
	if i == 0 {
		return 0
	}
	w := x.limbs[i-1]
	j := biL
	for j > 0 && (w>>(uint(j-1)))&1 == 0 {
		j--
	}
	return (i-1)*biL + j
}

// Lsb returns the number of trailing zero bits (the 0-based index of
// the least significant set bit), or 0 for the zero value.
func (x *Int) Lsb() int {
	count := 0
	for _, w := range x.limbs {
		if w == 0 {
			count += biL
			continue
		}
		for j := 0; j < biL; j++ {
			if (w>>uint(j))&1 != 0 {
				return count + j
			}
		}
	}
	return 0
}

// Size returns the number of bytes needed to hold X's magnitude in
// big-endian binary form.
func (x *Int) Size() int {
	return (x.Msb() + 7) / 8
}

// Sign returns -1 or 1.
func (x *Int) Sign() int {
	return x.sign
}

// IsZero reports whether X's magnitude is zero (regardless of sign).
func (x *Int) IsZero() bool {
	return effectiveLen(x.limbs) == 0
}
