package service

import (
	"math"
	"math/rand"

	"github.com/FereolKpavode/CHURN/internal/domain/model"
)

// GenerateBackgroundSample builds the synthetic reference dataset the
// explainer uses to estimate its baseline distribution. Rows are drawn from
// per-feature distributions approximating realistic ranges and are emitted
// already consistent: the country and category one-hot groups are mutually
// exclusive by construction, never patched afterwards. The same seed always
// produces the same sample.
func GenerateBackgroundSample(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))

	sample := make([][]float64, n)
	for i := range sample {
		row := make([]float64, model.NumFeatures)

		row[0] = clip(rng.NormFloat64()*100+650, 300, 900)        // creditscore
		row[1] = clip(rng.NormFloat64()*15+40, 18, 100)           // age
		row[2] = clip(rng.ExpFloat64()*5, 0, 20)                  // tenure
		row[3] = clip(math.Exp(rng.NormFloat64()+10), 0, 300000)  // balance, lognormal(10, 1)
		row[4] = weightedChoice(rng, []float64{1, 2, 3, 4}, []float64{0.3, 0.4, 0.2, 0.1})
		row[5] = bernoulli(rng, 0.7)                              // hascrcard
		row[6] = bernoulli(rng, 0.8)                              // isactivemember
		row[7] = clip(rng.NormFloat64()*25000+75000, 0, 300000)   // estimatedsalary
		row[8] = bernoulli(rng, 0.2)                              // complain
		row[9] = weightedChoice(rng, []float64{1, 2, 3, 4, 5}, []float64{0.1, 0.1, 0.3, 0.3, 0.2})
		row[10] = clip(rng.ExpFloat64()*1000, 0, 100000)          // point earned
		row[11] = bernoulli(rng, 0.5)                             // Male

		// Country one-hot group: at most one of Germany/Spain, France otherwise.
		switch {
		case rng.Float64() < 0.3:
			row[12] = 1 // Germany
		case rng.Float64() < 0.3:
			row[13] = 1 // Spain
		}

		// Category one-hot group: at most one of GOLD/PLATINUM/SILVER,
		// RUBIS otherwise.
		switch {
		case rng.Float64() < 0.1:
			row[15] = 1 // PLATINUM
		case rng.Float64() < 0.2:
			row[14] = 1 // GOLD
		case rng.Float64() < 0.3:
			row[16] = 1 // SILVER
		}

		sample[i] = row
	}
	return sample
}

func clip(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func bernoulli(rng *rand.Rand, p float64) float64 {
	if rng.Float64() < p {
		return 1
	}
	return 0
}

func weightedChoice(rng *rand.Rand, values, weights []float64) float64 {
	u := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if u < acc {
			return values[i]
		}
	}
	return values[len(values)-1]
}
