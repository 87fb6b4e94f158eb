package flow

import "errors"

// Node errors wrap stage failures so graph execution errors identify the
// stage that produced them.
var (
	ErrResolveFailed = errors.New("session resolution failed")
	ErrAdvanceFailed = errors.New("state advancement failed")
	ErrStorageFailed = errors.New("blob storage operation failed")
	ErrRenderFailed  = errors.New("pdf rendering failed")
)
