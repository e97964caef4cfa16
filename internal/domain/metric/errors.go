package metric

import (
	"errors"
	"fmt"
)

// ErrUnknownMetric marks a metric name that is not available for the dataset.
var ErrUnknownMetric = errors.New("unknown metric")

// UnknownMetricError carries the rejected name.
type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q", e.Name)
}

func (e *UnknownMetricError) Unwrap() error {
	return ErrUnknownMetric
}
