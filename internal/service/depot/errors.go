package depot

import "errors"

var ErrDepotNotFound = errors.New("depot not found")
