// Package provider wraps construction of the reasoning-engine client and its
// generation parameters. Transport and authentication stay inside the SDK
// boundary (ANTHROPIC_API_KEY et al. are read by the SDK itself).
package provider

import (
	"os"
	"strconv"

	"github.com/anthropics/anthropic-sdk-go"
)

const DefaultModel = anthropic.ModelClaudeSonnet4_0

const (
	defaultMaxTokens   = 8192
	defaultTemperature = 0.7
)

// NewAnthropicClient returns a client using the API key from the env.
func NewAnthropicClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// Model returns the model from FA_MODEL, or the default.
func Model() anthropic.Model {
	if v := os.Getenv("FA_MODEL"); v != "" {
		return anthropic.Model(v)
	}
	return DefaultModel
}

// MaxTokens returns the generation token limit from FA_MAX_TOKENS, or the default.
func MaxTokens() int64 {
	if v := os.Getenv("FA_MAX_TOKENS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxTokens
}

// Temperature returns the sampling temperature from FA_TEMPERATURE, or the default.
func Temperature() float64 {
	if v := os.Getenv("FA_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return defaultTemperature
}
