package mc

import (
	"golang.org/x/exp/rand"

	"github.com/Johnnychien199108/2019MC/growth"
	"github.com/Johnnychien199108/2019MC/lmm"
)

// DatasetFunc adapts an immutable growth.Params into the engine's
// generation function: every call produces one fresh panel from src.
func DatasetFunc(p growth.Params) GenerateFunc[*growth.Dataset] {
	return func(src rand.Source) (*growth.Dataset, error) {
		return growth.Generate(p, src)
	}
}

// SlopeFitFunc adapts the lmm fitter into the engine's fit function: it fits
// spec to the dataset and extracts the time-slope coefficient, its standard
// error, and the confidence interval at the given level (0 selects
// lmm.DefaultCILevel).
//
// Fit errors (lmm.ErrSingularFit, lmm.ErrFitDiverged, ...) pass through
// unchanged so the engine can abort the run with the replication index.
func SlopeFitFunc(spec lmm.ModelSpec, level float64) FitFunc[*growth.Dataset] {
	return func(ds *growth.Dataset) (Record, error) {
		res, err := lmm.FitModel(ds, spec)
		if err != nil {
			return Record{}, err
		}

		est, err := res.Coef(lmm.CoefTime)
		if err != nil {
			return Record{}, err
		}
		se, err := res.StdErr(lmm.CoefTime)
		if err != nil {
			return Record{}, err
		}
		lo, hi, err := res.ConfInt(lmm.CoefTime, level)
		if err != nil {
			return Record{}, err
		}

		return Record{Estimate: est, StdErr: se, Lower: lo, Upper: hi}, nil
	}
}
