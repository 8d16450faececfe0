package model

import "fmt"

// JobVersion is the current job file format version.
const JobVersion = "1.0"

// Item is one cutlist line: a rectangle size and how many copies are wanted.
type Item struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Quantity int `json:"quantity"`
}

// Job is a serializable problem statement: the bin dimensions, the wanted
// items and the search settings for a run.
type Job struct {
	Version   string  `json:"version"`
	Name      string  `json:"name,omitempty"`
	BinWidth  int     `json:"bin_width"`
	BinHeight int     `json:"bin_height"`
	Items     []Item  `json:"items"`
	Coverage  float64 `json:"coverage,omitempty"`  // minimum bin coverage for standalone runs, 0 = none
	Heuristic string  `json:"heuristic,omitempty"` // placement heuristic name, empty = default
}

// NewJob creates an empty job for the given bin.
func NewJob(name string, binWidth, binHeight int) Job {
	return Job{
		Version:   JobVersion,
		Name:      name,
		BinWidth:  binWidth,
		BinHeight: binHeight,
	}
}

// Validate checks the bin bounds and every item line.
func (j Job) Validate() error {
	if err := ValidateBin(j.BinWidth, j.BinHeight); err != nil {
		return err
	}
	for i, item := range j.Items {
		r := Rect{Width: item.Width, Height: item.Height}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d has quantity %d, want at least 1", ErrInvalidInput, i, item.Quantity)
		}
	}
	if j.Coverage < 0 || j.Coverage > 1 {
		return fmt.Errorf("%w: coverage %v must be in [0, 1]", ErrInvalidInput, j.Coverage)
	}
	return nil
}

// Rects expands the item lines into the flat rectangle multiset the search
// operates on, one entry per requested unit.
func (j Job) Rects() []Rect {
	var rects []Rect
	for _, item := range j.Items {
		r := Rect{Width: item.Width, Height: item.Height}
		for n := 0; n < item.Quantity; n++ {
			rects = append(rects, r)
		}
	}
	return rects
}

// AddItem appends a cutlist line to the job.
func (j *Job) AddItem(width, height, quantity int) {
	j.Items = append(j.Items, Item{Width: width, Height: height, Quantity: quantity})
}
