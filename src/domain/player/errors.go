package player

import "errors"

var ErrNoFactory = errors.New("has no factory, use With methods")
