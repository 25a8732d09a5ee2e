// Command qbignum is a small demonstration driver for the bignum and
// curve packages: it exercises the fixed-width integer arithmetic and the
// Curve25519 instantiation the way examples/main.cpp does in the original
// source, reproducing the same handful of sanity checks.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsign/qbignum/curve"
	"github.com/jsign/qbignum/internal/bnrand"
)

var (
	mrRounds int
	seed     int64
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "qbignum",
		Short: "Fixed-width multi-precision integer and elliptic curve demo",
	}
	root.PersistentFlags().IntVar(&mrRounds, "mr-rounds", 44, "Miller-Rabin witness rounds for primality checks")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for the non-cryptographic random source (0 picks a fresh seed)")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run a demonstration",
	}
	demo.AddCommand(newDemoMontgomeryCmd(logger))
	demo.AddCommand(newDemoCurve25519Cmd(logger))
	root.AddCommand(demo)

	return root
}

func randSource() bnrand.Source {
	if seed == 0 {
		return bnrand.Global()
	}
	return rand.New(rand.NewSource(seed))
}

func newDemoMontgomeryCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "montgomery",
		Short: "Double and add points on the Curve25519 Montgomery curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := curve.NewCurve25519(mrRounds, randSource())

			doubled, err := c.Double(c.G)
			if err != nil {
				return err
			}
			logger.Info("doubled base point", zap.String("point", doubled.String()))

			added, err := c.Add(c.G, c.G)
			if err != nil {
				return err
			}
			logger.Info("added base point to itself", zap.String("point", added.String()))

			onCurve, err := c.IsOnCurve(doubled)
			if err != nil {
				return err
			}
			fmt.Printf("G=%s 2G(double)=%s 2G(add)=%s onCurve=%v\n", c.G, doubled, added, onCurve)
			return nil
		},
	}
}

func newDemoCurve25519Cmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "curve25519 [private-key-hex]",
		Short: "Derive a Curve25519 public key from a hex-encoded private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := curve.Curve25519GeneratePublicKey(args[0], mrRounds, randSource())
			if err != nil {
				return err
			}
			logger.Info("derived public key", zap.String("private_key", args[0]), zap.String("public_key", pub))
			fmt.Println(pub)
			return nil
		},
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
