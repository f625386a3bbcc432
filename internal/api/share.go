package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrShare covers failures while sharing a dropped file.
var ErrShare = errors.New("file share failed")

// maxShareSize caps uploads at 50 MB, matching the API's instant-deployment
// payload limit.
const maxShareSize = 50 << 20

// Share uploads a single file and creates a deployment serving it, returning
// the deployment URL. Directories are rejected; only one path is ever shared
// per drop.
func (c *Client) Share(ctx context.Context, token, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShare, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: directories cannot be shared", ErrShare)
	}
	if info.Size() > maxShareSize {
		return "", fmt.Errorf("%w: file exceeds the %d MB limit", ErrShare, maxShareSize>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShare, err)
	}

	name := filepath.Base(path)
	body, err := json.Marshal(map[string]interface{}{
		"name": shareName(name),
		"files": []map[string]string{
			{
				"file":     name,
				"data":     base64.StdEncoding.EncodeToString(data),
				"encoding": "base64",
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShare, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/now/deployments", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShare, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShare, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: API returned %d", ErrShare, resp.StatusCode)
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrShare, err)
	}
	return "https://" + payload.URL, nil
}

// shareName derives a deployment name from the file name plus a short random
// suffix so repeated shares of the same file don't collide.
func shareName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	base = strings.ToLower(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, base))
	base = strings.Trim(base, "-")
	if base == "" {
		base = "file"
	}
	return base + "-" + uuid.NewString()[:8]
}
