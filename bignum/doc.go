//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

// Package bignum implements multi-precision signed integer arithmetic
// for the ephemelier kernel's asymmetric crypto primitives: add, sub,
// mul, Knuth division, Montgomery modular exponentiation, binary GCD,
// extended binary modular inverse, Miller-Rabin primality and random
// prime generation, and radix/binary conversions.
//
// The representation and algorithms follow the classic PolarSSL/mbed
// TLS bignum engine: a little-endian limb array with a separate sign,
// unshrinking growth, and schoolbook kernels sized for RSA/DH moduli
// rather than for asymptotic speed. It is not constant-time except
// where noted on montmul.
package bignum
