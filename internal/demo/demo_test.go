// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/msq/internal/demo"
)

func TestRunCanonicalScenario(t *testing.T) {
	res, err := demo.Run(demo.Config{
		Producers:        4,
		ItemsPerProducer: 1000,
		Consumers:        2,
		ConsumeTarget:    2000,
	})
	require.NoError(t, err)

	require.Equal(t, 4000, res.Pushed)
	require.Equal(t, 2000, res.Consumed)
	require.Equal(t, 2000, res.Remaining)
	require.True(t, res.Unique)
}

func TestRunFullDrain(t *testing.T) {
	res, err := demo.Run(demo.Config{
		Producers:        3,
		ItemsPerProducer: 200,
		Consumers:        3,
		ConsumeTarget:    600,
	})
	require.NoError(t, err)

	require.Equal(t, 600, res.Pushed)
	require.Equal(t, 600, res.Consumed)
	require.Equal(t, 0, res.Remaining)
	require.True(t, res.Unique)
}

func TestRunNoConsumption(t *testing.T) {
	res, err := demo.Run(demo.Config{
		Producers:        2,
		ItemsPerProducer: 50,
		Consumers:        1,
		ConsumeTarget:    0,
	})
	require.NoError(t, err)

	require.Equal(t, 100, res.Pushed)
	require.Equal(t, 0, res.Consumed)
	require.Equal(t, 100, res.Remaining)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  demo.Config
		ok   bool
	}{
		{"canonical", demo.Config{Producers: 4, ItemsPerProducer: 1000, Consumers: 2, ConsumeTarget: 2000}, true},
		{"no producers", demo.Config{Producers: 0, ItemsPerProducer: 10, Consumers: 1, ConsumeTarget: 0}, false},
		{"no consumers", demo.Config{Producers: 1, ItemsPerProducer: 10, Consumers: 0, ConsumeTarget: 0}, false},
		{"negative items", demo.Config{Producers: 1, ItemsPerProducer: -1, Consumers: 1, ConsumeTarget: 0}, false},
		{"negative target", demo.Config{Producers: 1, ItemsPerProducer: 10, Consumers: 1, ConsumeTarget: -1}, false},
		{"target exceeds production", demo.Config{Producers: 1, ItemsPerProducer: 10, Consumers: 1, ConsumeTarget: 11}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
