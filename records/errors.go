package records

import "errors"

var ErrNoEmissionData = errors.New("records: no emission data")
