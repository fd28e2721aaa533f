package evaluate

import (
	"fmt"
	"sort"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

// Report treats Bad as the positive class.
type Report struct {
	Total int
	TP    int
	FP    int
	TN    int
	FN    int

	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64

	// AUC is only set when every prediction carried a probability and
	// both classes are present.
	AUC    float64
	HasAUC bool
}

func Summarize(cases []Case, preds []Prediction) (Report, error) {
	if len(cases) != len(preds) {
		return Report{}, fmt.Errorf("%d predictions for %d cases", len(preds), len(cases))
	}
	var r Report
	r.Total = len(cases)
	for i, c := range cases {
		bad := preds[i].Label == entity.LabelBad
		switch {
		case bad && c.Label == entity.LabelBad:
			r.TP++
		case bad:
			r.FP++
		case c.Label == entity.LabelBad:
			r.FN++
		default:
			r.TN++
		}
	}
	r.Accuracy = ratio(r.TP+r.TN, r.Total)
	r.Precision = ratio(r.TP, r.TP+r.FP)
	r.Recall = ratio(r.TP, r.TP+r.FN)
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	r.AUC, r.HasAUC = rocAUC(cases, preds)
	return r, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// rocAUC is the Mann-Whitney statistic with tied scores sharing the mean
// rank.
func rocAUC(cases []Case, preds []Prediction) (float64, bool) {
	type scored struct {
		p   float64
		bad bool
	}
	items := make([]scored, len(cases))
	var nPos, nNeg int
	for i, c := range cases {
		if !preds[i].HasProba {
			return 0, false
		}
		items[i] = scored{p: preds[i].Probability, bad: c.Label == entity.LabelBad}
		if items[i].bad {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0, false
	}

	sort.Slice(items, func(i, j int) bool { return items[i].p < items[j].p })

	var rankSum float64
	for i := 0; i < len(items); {
		j := i
		for j < len(items) && items[j].p == items[i].p {
			j++
		}
		// ranks i+1..j share their mean
		mean := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			if items[k].bad {
				rankSum += mean
			}
		}
		i = j
	}
	u := rankSum - float64(nPos*(nPos+1))/2
	return u / float64(nPos*nNeg), true
}
