package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/avoganov/ancora/internal/netx"
)

// resolveAudio turns a local voice-memo file into the value stored on the
// session. Online, the file is uploaded through a presigned URL and the
// storage key is kept; offline, the bytes are embedded base64-encoded so
// nothing is lost while the server is unreachable.
func (a *App) resolveAudio(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read audio file: %w", err)
	}

	if a.Mode == ModeOnline {
		key, url, err := a.remote.GetAudioUploadURL(ctx, "")
		if err == nil {
			if err := netx.UploadToS3PresignedURL(ctx, url, data); err == nil {
				return "s3:" + key, nil
			}
		}
		// fall through to the embedded copy on any upload failure
	}

	return base64.StdEncoding.EncodeToString(data), nil
}
