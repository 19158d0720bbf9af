package main

import (
	"crypto/rand"
	"crypto/sha256"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/perfband/perfband"
)

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Int("rounds", 8, "number of hashing rounds to profile")
	benchCmd.Flags().Int("size", 4*1024*1024, "payload size in bytes")
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "profile a synthetic hashing and file IO workload",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         bench,
}

func bench(cmd *cobra.Command, args []string) error {
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		return err
	}

	size, err := cmd.Flags().GetInt("size")
	if err != nil {
		return err
	}

	opts, err := config.SessionOptions()
	if err != nil {
		return err
	}

	session := perfband.NewSession(opts...)
	session.Begin()

	payload := make([]byte, size)
	err = session.MeasureBytes("generate", uint64(size), func() error {
		_, err := rand.Read(payload)
		return err
	})
	if err != nil {
		return err
	}

	for i := 0; i < rounds; i++ {
		func() {
			defer session.StartRegion("sha256").SetBytes(uint64(size)).Stop()
			sha256.Sum256(payload)
		}()
	}

	f, err := os.CreateTemp("", "perfband-bench-")
	if err != nil {
		return err
	}

	defer func() {
		if err := os.Remove(f.Name()); err != nil {
			log.WithError(err).Warnf("failed to remove temp file %s", f.Name())
		}
	}()

	err = session.MeasureBytes("write", uint64(size), func() error {
		if _, err := f.Write(payload); err != nil {
			return err
		}

		return f.Close()
	})
	if err != nil {
		return err
	}

	err = session.MeasureBytes("read", uint64(size), func() error {
		_, err := os.ReadFile(f.Name())
		return err
	})
	if err != nil {
		return err
	}

	log.Debugf("profiled %d hashing rounds over %d bytes", rounds, size)

	session.EndAndPrint()
	return nil
}
