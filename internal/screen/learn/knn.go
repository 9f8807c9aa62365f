package learn

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drakos74/free-screen/internal/storage"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
)

const (
	activeLabel   = "active"
	inactiveLabel = "inactive"
)

// Knn scores candidates by the vote of their nearest taught neighbours.
// golearn consumes feature files, so the model materializes its
// accumulated set as csv on every retrain.
// The score is a hard vote, either 0 or 1.
type Knn struct {
	data       dataset
	detail     Detail
	neighbours int
	trainFile  string
}

func NewKnn(cfg Config) *Knn {
	k := &Knn{
		data:       newDataset(),
		neighbours: cfg.Neighbours,
	}
	k.detail = newDetail(k, 0)
	return k
}

func (k *Knn) Fit(x [][]float64, y []float64) error {
	k.data.reset()
	return k.Update(x, y)
}

func (k *Knn) Update(x [][]float64, y []float64) error {
	xx, yy, err := k.data.absorb(x, y)
	if err != nil {
		return fmt.Errorf("could not absorb batch: %w", err)
	}
	if len(xx) == 0 {
		return fmt.Errorf("cannot train knn on empty set")
	}
	fn, err := toFeatureFile(fmt.Sprintf("knn_%s_train", k.detail.Hash), xx, yy)
	if err != nil {
		return fmt.Errorf("could not create feature file: %w", err)
	}
	k.trainFile = fn
	return nil
}

// TODO : batch the queries of a cycle into one feature file
func (k *Knn) Predict(x []float64) (float64, error) {
	if k.trainFile == "" {
		return 0, NotFittedErr
	}

	// sentinel rows pin the label dictionary of the query file
	// to the one of the training file
	sx, sy := k.sentinels()
	qx := append(sx, x)
	qy := append(sy, sy[0])
	fn, err := toFeatureFile(fmt.Sprintf("knn_%s_query", k.detail.Hash), qx, qy)
	if err != nil {
		return 0, fmt.Errorf("could not create feature file: %w", err)
	}

	trainData, err := base.ParseCSVToInstances(k.trainFile, false)
	if err != nil {
		return 0, fmt.Errorf("could not parse training set: %w", err)
	}
	queryData, err := base.ParseCSVToInstances(fn, false)
	if err != nil {
		return 0, fmt.Errorf("could not parse query set: %w", err)
	}

	neighbours := k.neighbours
	if size := k.data.size(); size < neighbours {
		neighbours = size
	}
	cls := knn.NewKnnClassifier("cosine", "linear", neighbours)
	if err := cls.Fit(trainData); err != nil {
		return 0, fmt.Errorf("could not fit knn: %w", err)
	}
	predictions, err := cls.Predict(queryData)
	if err != nil {
		return 0, fmt.Errorf("could not predict with knn: %w", err)
	}

	_, rows := predictions.Size()
	return fromLabel(predictions.RowString(rows - 1)), nil
}

// sentinels returns the first taught row of each label,
// in the order the labels first appear in the training set.
func (k *Knn) sentinels() ([][]float64, []float64) {
	xx := make([][]float64, 0, 2)
	yy := make([]float64, 0, 2)
	seen := make(map[float64]bool)
	for i, y := range k.data.y {
		if !seen[y] {
			seen[y] = true
			xx = append(xx, k.data.x[i])
			yy = append(yy, y)
			if len(xx) == 2 {
				break
			}
		}
	}
	return xx, yy
}

func toFeatureFile(description string, xx [][]float64, yy []float64) (string, error) {
	fn, err := storage.MakePath(filepath.Join(storage.DefaultDir, storage.DatasetsDir), fmt.Sprintf("%s.csv", description))
	if err != nil {
		return "", err
	}
	file, err := os.OpenFile(fn, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return "", fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for i, vector := range xx {
		lw := new(strings.Builder)
		for _, v := range vector {
			lw.WriteString(fmt.Sprintf("%.4f,", v))
		}
		lw.WriteString(toLabel(yy[i]))
		if _, err := writer.WriteString(lw.String() + "\n"); err != nil {
			return "", fmt.Errorf("could not write feature file: %w", err)
		}
	}
	return fn, nil
}

func toLabel(y float64) string {
	if y == 1 {
		return activeLabel
	}
	return inactiveLabel
}

func fromLabel(s string) float64 {
	if strings.TrimSpace(s) == activeLabel {
		return 1
	}
	return 0
}
