package ocr

import (
	"context"
	"errors"
	"io"
)

// ErrRecognitionFailed wraps every OCR engine failure. A failed recognition
// ends the current scan; the caller does not retry and does not refund the
// scan credit already consumed.
var ErrRecognitionFailed = errors.New("text recognition failed")

// Client is the OCR engine collaborator.
type Client interface {
	Recognize(ctx context.Context, image io.Reader) (string, error)
}
