package likes

import "errors"

var ErrInvalidTarget = errors.New("invalid like target")
