package dataset

import (
	"fmt"
	"math"
)

type Split struct {
	Train []int
	Test  []int
}

// TrainTestSplit shuffles row indices with the seeded generator and takes
// the first ceil(testSize*n) as the test part, the rest as train.
func TrainTestSplit(n int, testSize float64, seed uint32) (Split, error) {
	if testSize <= 0 || testSize >= 1 {
		return Split{}, fmt.Errorf("test size %v must be in (0,1)", testSize)
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTest == 0 || nTrain <= 0 {
		return Split{}, fmt.Errorf("cannot split %d rows with test size %v", n, testSize)
	}

	perm := NewMT19937(seed).Permutation(n)
	return Split{
		Test:  perm[:nTest],
		Train: perm[nTest:],
	}, nil
}

// HoldOut drops the target column, splits the rows and returns the test
// part as a feature frame and a one-column label frame.
func HoldOut(f *Frame, target string, testSize float64, seed uint32) (x, y *Frame, err error) {
	features, labels, err := f.Drop(target)
	if err != nil {
		return nil, nil, err
	}
	s, err := TrainTestSplit(f.Len(), testSize, seed)
	if err != nil {
		return nil, nil, err
	}
	y = &Frame{Header: []string{target}, Records: make([][]string, len(s.Test))}
	for i, idx := range s.Test {
		y.Records[i] = []string{labels[idx]}
	}
	return features.Rows(s.Test), y, nil
}
