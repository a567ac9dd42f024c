// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command msqdemo runs concurrent producers and consumers against one
// shared queue and prints the final accounting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"code.hybscloud.com/msq/internal/demo"
)

var cfg demo.Config

var cmd = &cobra.Command{
	Use:   "msqdemo",
	Short: "Exercise the lock-free queue with concurrent producers and consumers",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	cmd.Flags().IntVar(&cfg.Producers, "producers", 4, "number of producer goroutines")
	cmd.Flags().IntVar(&cfg.ItemsPerProducer, "items", 1000, "items pushed per producer")
	cmd.Flags().IntVar(&cfg.Consumers, "consumers", 2, "number of consumer goroutines")
	cmd.Flags().IntVar(&cfg.ConsumeTarget, "target", 2000, "total items to consume across all consumers")
}

func run(_ *cobra.Command, _ []string) error {
	res, err := demo.Run(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Pushed: %d\n", res.Pushed)
	fmt.Printf("Consumed: %d (unique: %v)\n", res.Consumed, res.Unique)
	fmt.Printf("Final queue length: %d\n", res.Remaining)
	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
