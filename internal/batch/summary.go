package batch

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats describes the spread of one capacity column
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
}

// Summary aggregates a batch run
type Summary struct {
	Rows      int
	Succeeded int
	Failed    int
	Standard  Stats // φVn, standard method
	Annex     Stats // φVn, annex method

	// Mean of annex over standard capacity per row
	MeanAnnexRatio float64
}

// Summarize computes column statistics over the successful rows
func (r *Report) Summarize() Summary {
	s := Summary{Rows: len(r.Outcomes), Failed: len(r.Failed)}

	var standard, annex, ratios []float64
	for _, o := range r.Outcomes {
		if o.Err != nil || o.Evaluation == nil {
			continue
		}
		std := o.Evaluation.Result.DesignStandard
		ann := o.Evaluation.Result.DesignAnnex
		standard = append(standard, std)
		annex = append(annex, ann)
		if std != 0 {
			ratios = append(ratios, ann/std)
		}
	}
	s.Succeeded = len(standard)

	s.Standard = describe(standard)
	s.Annex = describe(annex)
	if len(ratios) > 0 {
		s.MeanAnnexRatio = stat.Mean(ratios, nil)
	}
	return s
}

func describe(x []float64) Stats {
	if len(x) == 0 {
		return Stats{}
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	st := Stats{
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	st.Mean, st.StdDev = stat.MeanStdDev(sorted, nil)
	if math.IsNaN(st.StdDev) {
		st.StdDev = 0
	}
	return st
}
