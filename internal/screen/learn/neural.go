package learn

import (
	"fmt"
	"math"

	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
)

// Net scores candidates with a feed-forward network.
// The output layer is a binary softmax, the active slot is the score.
type Net struct {
	data   dataset
	layers []int
	rate   float64
	epochs int
	net    *ff.Network
}

func NewNet(cfg Config) *Net {
	return &Net{
		data:   newDataset(),
		layers: cfg.Layers,
		rate:   cfg.Rate,
		epochs: cfg.Epochs,
	}
}

// construct builds the network once the input width is known.
func (n *Net) construct(width int) *ff.Network {
	rate := xml.Learn(1, n.rate)
	initW := xmath.Rand(-1, 1, math.Sqrt)
	initB := xmath.Rand(-1, 1, math.Sqrt)

	network := ff.New(width, 2)
	for _, layer := range n.layers {
		network = network.Add(layer, net.NewBuilder().
			WithModule(xml.Base().
				WithRate(rate).
				WithActivation(xml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell))
	}
	network = network.Add(2, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(xml.Pow)
	return network
}

func (n *Net) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("cannot train network on empty set")
	}
	n.data.reset()
	n.net = n.construct(len(x[0]))
	return n.Update(x, y)
}

// Update keeps the current weights and trains further epochs
// over the full accumulated set.
func (n *Net) Update(x [][]float64, y []float64) error {
	if n.net == nil {
		return NotFittedErr
	}
	xx, yy, err := n.data.absorb(x, y)
	if err != nil {
		return fmt.Errorf("could not absorb batch: %w", err)
	}
	for e := 0; e < n.epochs; e++ {
		for i := range xx {
			inp := xmath.Vec(len(xx[i])).With(xx[i]...)
			out := xmath.Vec(2).With(1-yy[i], yy[i])
			n.net.Train(inp, out)
		}
	}
	return nil
}

func (n *Net) Predict(x []float64) (float64, error) {
	if n.net == nil {
		return 0, NotFittedErr
	}
	out := n.net.Predict(xmath.Vec(len(x)).With(x...))
	if len(out) < 2 {
		return 0, fmt.Errorf("unexpected network output of size %d", len(out))
	}
	return out[1], nil
}
