package ocr

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
)

// TesseractClient shells out to the tesseract binary. The image is spooled to
// a temp file because tesseract reads from a path, not stdin.
type TesseractClient struct{}

func NewTesseractClient() *TesseractClient {
	return &TesseractClient{}
}

// MustHaveBinary fails fast at startup when tesseract is not installed.
func MustHaveBinary() {
	if _, err := exec.LookPath("tesseract"); err != nil {
		log.Fatal("Required binary missing: tesseract")
	}
}

func (c *TesseractClient) Recognize(ctx context.Context, image io.Reader) (string, error) {
	tmpFile, err := os.CreateTemp("", "label-*.jpg")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	defer os.Remove(tmpFile.Name())

	written, err := io.Copy(tmpFile, image)
	if err != nil || written == 0 {
		_ = tmpFile.Close()
		return "", fmt.Errorf("%w: empty or unreadable image", ErrRecognitionFailed)
	}
	_ = tmpFile.Close()

	cmd := exec.CommandContext(ctx, "tesseract", tmpFile.Name(), "stdout")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	log.Printf("OCR_DONE file=%s text_length=%d", tmpFile.Name(), len(out))
	return string(out), nil
}
