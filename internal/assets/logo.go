// Package assets loads shared read-only binary assets injected into rendered
// documents.
package assets

import (
	"encoding/base64"
	"os"
	"sync"

	"pdfservice/internal/logger"
)

// LogoProvider loads the brand logo once and serves it as a base64 payload.
// A missing or unreadable file degrades to an empty payload; document
// generation never fails because of the logo.
type LogoProvider struct {
	path string

	once    sync.Once
	payload string
}

func NewLogoProvider(path string) *LogoProvider {
	return &LogoProvider{path: path}
}

// Base64 returns the logo encoded for inline embedding, or "" when the asset
// could not be loaded.
func (p *LogoProvider) Base64() string {
	p.once.Do(p.load)
	return p.payload
}

func (p *LogoProvider) load() {
	log := logger.WithComponent("assets")

	if p.path == "" {
		log.Warn().Msg("no logo path configured, documents render without logo")
		return
	}

	raw, err := os.ReadFile(p.path)
	if err != nil {
		log.Warn().Err(err).Str("path", p.path).Msg("logo not loaded, documents render without logo")
		return
	}

	p.payload = base64.StdEncoding.EncodeToString(raw)
	log.Info().Str("path", p.path).Int("bytes", len(raw)).Msg("logo loaded")
}
