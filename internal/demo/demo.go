// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package demo runs the producer/consumer demonstration scenario: a set
// of producers pushes distinct integers onto one shared queue while a
// set of consumers drains it until a collective target is reached. It
// exists to exercise the public queue API from outside the package; the
// queue itself knows nothing about it.
package demo

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/msq"
)

// Config describes one demonstration run.
type Config struct {
	// Producers is the number of producing goroutines.
	Producers int
	// ItemsPerProducer is how many distinct integers each producer pushes.
	ItemsPerProducer int
	// Consumers is the number of consuming goroutines.
	Consumers int
	// ConsumeTarget is the collective number of items to pop across all
	// consumers. Must not exceed Producers*ItemsPerProducer or the
	// consumers would wait forever.
	ConsumeTarget int
}

// Validate reports whether the configuration can terminate.
func (c Config) Validate() error {
	if c.Producers < 1 {
		return fmt.Errorf("demo: producers must be >= 1, got %d", c.Producers)
	}
	if c.ItemsPerProducer < 0 {
		return fmt.Errorf("demo: items per producer must be >= 0, got %d", c.ItemsPerProducer)
	}
	if c.Consumers < 1 {
		return fmt.Errorf("demo: consumers must be >= 1, got %d", c.Consumers)
	}
	if c.ConsumeTarget < 0 {
		return fmt.Errorf("demo: consume target must be >= 0, got %d", c.ConsumeTarget)
	}
	if total := c.Producers * c.ItemsPerProducer; c.ConsumeTarget > total {
		return fmt.Errorf("demo: consume target %d exceeds total production %d", c.ConsumeTarget, total)
	}
	return nil
}

// Result summarizes a completed run.
type Result struct {
	// Pushed is the total number of items produced.
	Pushed int
	// Consumed is the total number of items popped.
	Consumed int
	// Remaining is the queue length after all goroutines joined.
	Remaining int
	// Unique reports whether every consumed value was distinct and a
	// member of the produced set.
	Unique bool
}

// Run executes the scenario and joins all goroutines before returning.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	q := msq.New[int]()
	var wg sync.WaitGroup
	var reserved atomix.Int64

	for id := range cfg.Producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range cfg.ItemsPerProducer {
				v := id*cfg.ItemsPerProducer + j
				q.Enqueue(&v)
			}
		}(id)
	}

	consumedBy := make([][]int, cfg.Consumers)
	for c := range cfg.Consumers {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			local := make([]int, 0, cfg.ConsumeTarget/cfg.Consumers+1)
			backoff := iox.Backoff{}
			for {
				// Reserve one unit of the collective target.
				if reserved.Add(1) > int64(cfg.ConsumeTarget) {
					reserved.Add(-1)
					break
				}
				for {
					v, err := q.Dequeue()
					if err == nil {
						backoff.Reset()
						local = append(local, v)
						break
					}
					backoff.Wait()
				}
			}
			consumedBy[c] = local
		}(c)
	}

	wg.Wait()

	pushed := cfg.Producers * cfg.ItemsPerProducer
	res := Result{
		Pushed:    pushed,
		Remaining: q.Len(),
		Unique:    true,
	}
	seen := make(map[int]bool, cfg.ConsumeTarget)
	for _, local := range consumedBy {
		for _, v := range local {
			if v < 0 || v >= pushed || seen[v] {
				res.Unique = false
			}
			seen[v] = true
			res.Consumed++
		}
	}
	return res, nil
}
