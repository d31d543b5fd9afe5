// Package share serializes repayment plans through a versioned,
// size-optimized string encoding suitable for URLs. The schedule engine has
// no knowledge of this encoding; it only ever sees the decoded plan.
package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/finsim/loan-recast/internal/config"
)

// versionPrefix identifies the current wire format. Decoding dispatches on
// the prefix so older links keep working when the format evolves.
const versionPrefix = "v1."

// Encode serializes a plan into a URL-safe share token.
func Encode(plan config.Plan) (string, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("failed to initialize compressor: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return "", fmt.Errorf("failed to compress plan: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to compress plan: %w", err)
	}

	return versionPrefix + base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a share token produced by Encode back into a plan.
func Decode(token string) (config.Plan, error) {
	if !strings.HasPrefix(token, versionPrefix) {
		return config.Plan{}, fmt.Errorf("unrecognized share token version")
	}

	compressed, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(token, versionPrefix))
	if err != nil {
		return config.Plan{}, fmt.Errorf("malformed share token: %w", err)
	}

	zr := flate.NewReader(bytes.NewReader(compressed))
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return config.Plan{}, fmt.Errorf("failed to decompress share token: %w", err)
	}

	var plan config.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return config.Plan{}, fmt.Errorf("failed to decode share token: %w", err)
	}
	return plan, nil
}
