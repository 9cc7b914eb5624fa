//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/markkurossi/ephemelier-bignum/bignum/selftest"
)

// selftestCmd runs the bignum self-test vectors and reports a
// non-nil error if any of them failed, so scripts can gate on the
// exit code.
func selftestCmd(args []string) error {
	if err := selftest.Run(os.Stdout); err != nil {
		return errors.Wrap(err, "selftest: one or more vectors failed")
	}
	return nil
}
