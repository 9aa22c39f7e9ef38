package nn

import (
	"fmt"
	"math/rand"
)

// LayerTopology describes the neuron count of a single layer.
type LayerTopology struct {
	Neurons int
}

// Network is a fixed-topology feedforward neural network with float32
// weights. It is immutable after construction; evolution replaces the
// whole network rather than adjusting it in place.
type Network struct {
	layers []layer
}

type layer struct {
	neurons []neuron
}

type neuron struct {
	bias    float32
	weights []float32
}

// Random creates a network with the given topology, drawing every bias
// and weight uniformly from [-1, 1]. The topology must contain at least
// an input and an output layer.
func Random(rng *rand.Rand, topology []LayerTopology) *Network {
	if len(topology) < 2 {
		panic("nn: topology must have at least 2 layers")
	}

	layers := make([]layer, len(topology)-1)
	for i := range layers {
		layers[i] = randomLayer(rng, topology[i].Neurons, topology[i+1].Neurons)
	}
	return &Network{layers: layers}
}

func randomLayer(rng *rand.Rand, inputs, outputs int) layer {
	neurons := make([]neuron, outputs)
	for i := range neurons {
		neurons[i] = randomNeuron(rng, inputs)
	}
	return layer{neurons: neurons}
}

func randomNeuron(rng *rand.Rand, inputs int) neuron {
	weights := make([]float32, inputs)
	for i := range weights {
		weights[i] = uniform(rng)
	}
	return neuron{bias: uniform(rng), weights: weights}
}

func uniform(rng *rand.Rand) float32 {
	return float32(rng.Float64()*2 - 1)
}

// Propagate feeds the input vector through every layer in order and
// returns the output vector. The input length must match the first
// layer's expected size.
func (n *Network) Propagate(inputs []float32) []float32 {
	for _, l := range n.layers {
		inputs = l.propagate(inputs)
	}
	return inputs
}

func (l layer) propagate(inputs []float32) []float32 {
	outputs := make([]float32, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.propagate(inputs)
	}
	return outputs
}

func (n neuron) propagate(inputs []float32) float32 {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: got %d inputs, expected %d", len(inputs), len(n.weights)))
	}

	sum := n.bias
	for i, input := range inputs {
		sum += input * n.weights[i]
	}
	return relu(sum)
}

func relu(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// Weights flattens the network into its canonical encoding: layer by
// layer, neuron by neuron, bias first and then that neuron's weights.
// This ordering is what FromWeights expects back.
func (n *Network) Weights() []float32 {
	out := make([]float32, 0, n.numWeights())
	for _, l := range n.layers {
		for _, nr := range l.neurons {
			out = append(out, nr.bias)
			out = append(out, nr.weights...)
		}
	}
	return out
}

func (n *Network) numWeights() int {
	total := 0
	for _, l := range n.layers {
		for _, nr := range l.neurons {
			total += 1 + len(nr.weights)
		}
	}
	return total
}

// NumWeights returns the total number of biases and weights a network
// with the given topology carries.
func NumWeights(topology []LayerTopology) int {
	total := 0
	for i := 0; i+1 < len(topology); i++ {
		total += topology[i+1].Neurons * (topology[i].Neurons + 1)
	}
	return total
}

// FromWeights rebuilds a network from its canonical flat encoding. The
// weight count must match the topology exactly.
func FromWeights(topology []LayerTopology, weights []float32) *Network {
	if len(topology) < 2 {
		panic("nn: topology must have at least 2 layers")
	}

	pos := 0
	next := func() float32 {
		if pos >= len(weights) {
			panic("nn: not enough weights")
		}
		w := weights[pos]
		pos++
		return w
	}

	layers := make([]layer, len(topology)-1)
	for i := range layers {
		inputs, outputs := topology[i].Neurons, topology[i+1].Neurons
		neurons := make([]neuron, outputs)
		for j := range neurons {
			bias := next()
			ws := make([]float32, inputs)
			for k := range ws {
				ws[k] = next()
			}
			neurons[j] = neuron{bias: bias, weights: ws}
		}
		layers[i] = layer{neurons: neurons}
	}

	if pos != len(weights) {
		panic("nn: too many weights")
	}
	return &Network{layers: layers}
}
