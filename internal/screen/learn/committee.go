package learn

import (
	"fmt"

	"github.com/drakos74/free-screen/internal/screen"
)

// Committee trains several models on the same data
// and scores with their mean prediction.
type Committee struct {
	details []Detail
	members []screen.Model
}

func NewCommittee(members ...screen.Model) *Committee {
	details := make([]Detail, len(members))
	for i, member := range members {
		details[i] = newDetail(member, i)
	}
	return &Committee{
		details: details,
		members: members,
	}
}

func (c *Committee) Fit(x [][]float64, y []float64) error {
	if len(c.members) == 0 {
		return fmt.Errorf("committee has no members")
	}
	for i, member := range c.members {
		if err := member.Fit(x, y); err != nil {
			return fmt.Errorf("could not fit %s: %w", c.details[i].Type, err)
		}
	}
	return nil
}

func (c *Committee) Update(x [][]float64, y []float64) error {
	for i, member := range c.members {
		if err := member.Update(x, y); err != nil {
			return fmt.Errorf("could not update %s: %w", c.details[i].Type, err)
		}
	}
	return nil
}

func (c *Committee) Predict(x []float64) (float64, error) {
	scores, err := c.Scores(x)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, score := range scores {
		sum += score
	}
	return sum / float64(len(scores)), nil
}

// Scores returns the individual member predictions.
func (c *Committee) Scores(x []float64) ([]float64, error) {
	if len(c.members) == 0 {
		return nil, fmt.Errorf("committee has no members")
	}
	scores := make([]float64, len(c.members))
	for i, member := range c.members {
		score, err := member.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("could not predict with %s: %w", c.details[i].Type, err)
		}
		scores[i] = score
	}
	return scores, nil
}
