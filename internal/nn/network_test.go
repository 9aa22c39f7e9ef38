package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomRejectsShortTopology(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Panics(t, func() { Random(rng, nil) })
	assert.Panics(t, func() { Random(rng, []LayerTopology{{Neurons: 3}}) })
}

func TestRandomWeightsInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	net := Random(rng, []LayerTopology{{Neurons: 4}, {Neurons: 3}, {Neurons: 2}})

	weights := net.Weights()
	require.Len(t, weights, NumWeights([]LayerTopology{{Neurons: 4}, {Neurons: 3}, {Neurons: 2}}))

	for _, w := range weights {
		assert.GreaterOrEqual(t, w, float32(-1))
		assert.LessOrEqual(t, w, float32(1))
	}
}

func TestPropagate(t *testing.T) {
	// One neuron, bias 0.5, weights [-0.3, 0.8].
	net := FromWeights(
		[]LayerTopology{{Neurons: 2}, {Neurons: 1}},
		[]float32{0.5, -0.3, 0.8},
	)

	// Strongly negative sum gets clipped to zero by the ReLU.
	out := net.Propagate([]float32{-10, -10})
	require.Len(t, out, 1)
	assert.Equal(t, float32(0), out[0])

	out = net.Propagate([]float32{0.5, 1.0})
	assert.InDelta(t, -0.3*0.5+0.8*1.0+0.5, out[0], 1e-6)
}

func TestPropagateLayerChaining(t *testing.T) {
	// Two identity-ish layers: the first neuron forwards its single
	// input, the second doubles it.
	net := FromWeights(
		[]LayerTopology{{Neurons: 1}, {Neurons: 1}, {Neurons: 1}},
		[]float32{0, 1, 0, 2},
	)

	out := net.Propagate([]float32{3})
	require.Len(t, out, 1)
	assert.InDelta(t, 6.0, out[0], 1e-6)
}

func TestPropagateRejectsWrongInputSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	net := Random(rng, []LayerTopology{{Neurons: 3}, {Neurons: 2}})

	assert.Panics(t, func() { net.Propagate([]float32{1, 2}) })
	assert.Panics(t, func() { net.Propagate([]float32{1, 2, 3, 4}) })
}

func TestWeightsRoundTrip(t *testing.T) {
	topology := []LayerTopology{{Neurons: 9}, {Neurons: 18}, {Neurons: 2}}

	rng := rand.New(rand.NewSource(42))
	original := Random(rng, topology)

	weights := original.Weights()
	rebuilt := FromWeights(topology, weights)

	// FromWeights copies values verbatim, so the round trip is exact.
	assert.Equal(t, weights, rebuilt.Weights())
}

func TestWeightsOrdering(t *testing.T) {
	// Bias first, then that neuron's weights, neuron by neuron.
	weights := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	net := FromWeights([]LayerTopology{{Neurons: 2}, {Neurons: 3}}, weights)

	assert.Equal(t, weights, net.Weights())
}

func TestFromWeightsRejectsWrongCount(t *testing.T) {
	topology := []LayerTopology{{Neurons: 2}, {Neurons: 1}}

	assert.PanicsWithValue(t, "nn: not enough weights", func() {
		FromWeights(topology, []float32{0.5, -0.3})
	})
	assert.PanicsWithValue(t, "nn: too many weights", func() {
		FromWeights(topology, []float32{0.5, -0.3, 0.8, 0.1})
	})
}
