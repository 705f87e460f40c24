// Package selection picks a small, court-diverse set of cases from extracted docket summaries.
package selection

import (
	"github.com/go-playground/validator/v10"
)

// Default criteria values, tuned to carve a browsable sample out of a
// multi-gigabyte docket corpus: enough documents per case to be interesting,
// small enough files to keep the sample light.
const (
	DefaultTargetCount      = 10
	DefaultMinAvailableDocs = 5
	DefaultMaxAvailableDocs = 50
	DefaultMinFileSize      = 100000
	DefaultMaxFileSize      = 1000000
	DefaultSampleStride     = 100
)

// Criteria bounds which cases are eligible and how many get selected. Both
// the document-count and file-size bounds are inclusive on both ends.
// SampleStride is carried here because it is part of the same tunable set,
// even though striding happens before extraction.
type Criteria struct {
	TargetCount      int   `json:"target_count" validate:"required,gt=0"`
	MinAvailableDocs int   `json:"min_available_docs" validate:"gte=0"`
	MaxAvailableDocs int   `json:"max_available_docs" validate:"required,gtefield=MinAvailableDocs"`
	MinFileSize      int64 `json:"min_file_size" validate:"gte=0"`
	MaxFileSize      int64 `json:"max_file_size" validate:"required,gtefield=MinFileSize"`
	SampleStride     int   `json:"sample_stride" validate:"required,gte=1"`
}

// DefaultCriteria returns the standard sampling criteria.
func DefaultCriteria() Criteria {
	return Criteria{
		TargetCount:      DefaultTargetCount,
		MinAvailableDocs: DefaultMinAvailableDocs,
		MaxAvailableDocs: DefaultMaxAvailableDocs,
		MinFileSize:      DefaultMinFileSize,
		MaxFileSize:      DefaultMaxFileSize,
		SampleStride:     DefaultSampleStride,
	}
}

// Validate validates the Criteria using the validator.
func (c *Criteria) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
