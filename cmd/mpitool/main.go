//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

// Command mpitool is a small harness around the bignum package: a
// textbook RSA demo, a throughput benchmark, and the self-test vector
// runner, selected by the first command-line argument.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/markkurossi/ephemelier-bignum/bignumtrace"
)

func main() {
	fVerbose := flag.Bool("v", false, "verbose bignum tracing")
	flag.Parse()

	log.SetFlags(0)

	if *fVerbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("zap.NewDevelopment: %v", err)
		}
		defer logger.Sync()
		bignumtrace.Configure(logger)
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("usage: mpitool [-v] rsademo|bench|selftest [args...]")
	}

	var err error
	switch args[0] {
	case "rsademo":
		err = rsademo(args[1:])
	case "bench":
		err = bench(args[1:])
	case "selftest":
		err = selftestCmd(args[1:])
	default:
		log.Fatalf("invalid command: %s", args[0])
	}
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
