package sheet

import (
	"image"
	"sync"

	"go.uber.org/multierr"
)

// Result is the combined outcome of scoring a whole submission.
type Result struct {
	// Answers maps global question numbers to decoded answers across
	// every page that succeeded.
	Answers *AnswerMap

	// Pages holds one PageResult per input page, in input order,
	// including faulted pages.
	Pages []*PageResult

	// Faults aggregates the per-page errors. A non-nil Faults does not
	// invalidate Answers; successful pages still contribute.
	Faults error
}

// Score runs the recognition pipeline over every page of a submission
// concurrently and merges the per-page answers into one numbering.
//
// Question numbers are global: page one's questions start at 1 and each
// later page starts where the previous successful page left off. A
// faulted page contributes no answers and does not advance the
// numbering, so a two-page submission whose first page faults numbers
// the second page from question 1. The first page to claim a question
// number wins; later pages never overwrite it.
//
// Score returns ErrNoPages when called with an empty slice. Per-page
// faults are collected into the result's Faults field instead of
// aborting the run.
func Score(pages []image.Image, obs Observer) (*Result, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	results := make([]*PageResult, len(pages))
	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func(i int, page image.Image) {
			defer wg.Done()
			results[i] = ProcessPage(i+1, page, obs)
		}(i, page)
	}
	wg.Wait()

	combined := &Result{
		Answers: NewAnswerMap(),
		Pages:   results,
	}
	base := 0
	for _, page := range results {
		if page.Err != nil {
			combined.Faults = multierr.Append(combined.Faults, page.Err)
			continue
		}
		for q, answer := range page.Answers {
			combined.Answers.Set(base+q+1, answer)
		}
		base += len(page.Answers)
	}
	return combined, nil
}
