package hashmap

import "errors"

var ErrInvalidConfig = errors.New("hashmap: invalid config")
