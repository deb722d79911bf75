package bal

import "sync"

// EpochResult pairs one epoch's metrics with its analysis error. Exactly
// one of the two is meaningful.
type EpochResult struct {
	Metrics Metrics
	Err     error
}

// AnalyzeBatch analyzes independent epochs concurrently, one goroutine per
// epoch. Results preserve input order. Errors stay local: a bad epoch
// yields an EpochResult with Err set and never aborts the others. All
// failures are deterministic functions of the input, so there is no retry.
func (a *Analyzer) AnalyzeBatch(epochs []Epoch) []EpochResult {
	results := make([]EpochResult, len(epochs))

	var wg sync.WaitGroup
	wg.Add(len(epochs))

	for i, e := range epochs {
		go func(i int, e Epoch) {
			defer wg.Done()

			m, err := a.AnalyzeEpoch(e)
			results[i] = EpochResult{Metrics: m, Err: err}
		}(i, e)
	}

	wg.Wait()

	return results
}
