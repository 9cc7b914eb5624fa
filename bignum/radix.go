//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

// getDigit converts an ASCII character to its value in the given
// radix (2..16), returning StatusInvalidCharacter if c isn't a valid
// digit for that radix.
func getDigit(radix int, c byte) (Word, error) {
	d := Word(255)
	switch {
	case c >= 0x30 && c <= 0x39:
		d = Word(c - 0x30)
	case c >= 0x41 && c <= 0x46:
		d = Word(c - 0x37)
	case c >= 0x61 && c <= 0x66:
		d = Word(c - 0x57)
	}
	if d >= Word(radix) {
		return 0, StatusInvalidCharacter
	}
	return d, nil
}

// ReadString parses s as a signed integer in the given radix (2..16)
// into X. A leading '-' marks a negative value. Radix 16 is parsed
// digit-by-digit into nibble positions directly; other radices
// accumulate via repeated multiply-add.
func ReadString(x *Int, radix int, s string, limits Limits) error {
	if radix < 2 || radix > 16 {
		return StatusBadInput
	}

	slen := len(s)

	if radix == 16 {
		n := bitsToLimbs(slen << 2)
		if err := x.Grow(n, limits); err != nil {
			return err
		}
		if err := x.Lset(0, limits); err != nil {
			return err
		}

		j := 0
		for i := slen; i > 0; i, j = i-1, j+1 {
			if i == 1 && s[i-1] == '-' {
				x.sign = -1
				break
			}
			d, err := getDigit(radix, s[i-1])
			if err != nil {
				return err
			}
			x.limbs[j/(2*ciL)] |= d << uint((j%(2*ciL))<<2)
		}
		return nil
	}

	if err := x.Lset(0, limits); err != nil {
		return err
	}

	var t Int
	defer t.Free()
	for i := 0; i < slen; i++ {
		if i == 0 && s[i] == '-' {
			x.sign = -1
			continue
		}
		d, err := getDigit(radix, s[i])
		if err != nil {
			return err
		}
		if err := MulInt(&t, x, Word(radix), limits); err != nil {
			return err
		}
		if x.sign == 1 {
			if err := AddInt(x, &t, int64(d), limits); err != nil {
				return err
			}
		} else {
			if err := SubInt(x, &t, int64(d), limits); err != nil {
				return err
			}
		}
	}
	return nil
}

const digits = "0123456789ABCDEF"

// writeHlp recursively emits X's digits in the given radix, most
// significant first, consuming X by repeated division.
func writeHlp(x *Int, radix int, out *[]byte, limits Limits) error {
	r, err := ModInt(x, Word(radix))
	if err != nil {
		return err
	}
	if err := DivInt(x, nil, x, int64(radix), limits); err != nil {
		return err
	}
	if CmpInt(x, 0) != 0 {
		if err := writeHlp(x, radix, out, limits); err != nil {
			return err
		}
	}
	*out = append(*out, digits[r])
	return nil
}

// WriteString renders X as a signed string in the given radix
// (2..16).
func WriteString(x *Int, radix int, limits Limits) (string, error) {
	if radix < 2 || radix > 16 {
		return "", StatusBadInput
	}

	var out []byte
	if x.sign == -1 {
		out = append(out, '-')
	}

	if radix == 16 {
		k := 0
		for i := len(x.limbs); i > 0; i-- {
			for j := ciL; j > 0; j-- {
				c := byte((x.limbs[i-1] >> uint((j-1)<<3)) & 0xFF)
				if c == 0 && k == 0 && i+j != 2 {
					continue
				}
				out = append(out, digits[c/16], digits[c%16])
				k = 1
			}
		}
		return string(out), nil
	}

	var t Int
	defer t.Free()
	if err := t.Copy(x, limits); err != nil {
		return "", err
	}
	t.sign = 1
	if err := writeHlp(&t, radix, &out, limits); err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadBinary sets X from buf, interpreted as an unsigned big-endian
// integer. The result is always non-negative.
func ReadBinary(x *Int, buf []byte, limits Limits) error {
	n := 0
	for n < len(buf) && buf[n] == 0 {
		n++
	}

	if err := x.Grow(charsToLimbs(len(buf)-n), limits); err != nil {
		return err
	}
	if err := x.Lset(0, limits); err != nil {
		return err
	}

	j := 0
	for i := len(buf); i > n; i, j = i-1, j+1 {
		x.limbs[j/ciL] |= Word(buf[i-1]) << uint((j%ciL)<<3)
	}
	return nil
}

// WriteBinary renders X's magnitude into buf as unsigned big-endian,
// zero-padded on the left. Returns StatusBufferTooSmall if buf is too
// short to hold X.
func WriteBinary(x *Int, buf []byte) error {
	n := x.Size()
	if len(buf) < n {
		return StatusBufferTooSmall
	}

	for i := range buf {
		buf[i] = 0
	}

	i := len(buf) - 1
	j := 0
	for ; n > 0; i, j, n = i-1, j+1, n-1 {
		buf[i] = byte(x.limbs[j/ciL] >> uint((j%ciL)<<3))
	}
	return nil
}
