package phase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/cache"
)

// DownloadPayload fetches the payload tarball into the local cache
type DownloadPayload struct {
	GenericPhase
}

// Title for the phase
func (p *DownloadPayload) Title() string {
	return "Download payload"
}

// ShouldRun is true when the payload is not a local file
func (p *DownloadPayload) ShouldRun() bool {
	return p.Config.Spec.Payload.IsRemote()
}

// Run the phase
func (p *DownloadPayload) Run() error {
	payload := p.Config.Spec.Payload

	path, err := cache.GetOrCreate(p.download, "payload", fmt.Sprintf("frognet-%s.tar.gz", payload.Version))
	if err != nil {
		return err
	}

	if payload.Sha256 != "" {
		if err := p.verifyChecksum(path, payload.Sha256); err != nil {
			if rmErr := os.Remove(path); rmErr != nil {
				log.Warnf("failed to remove %s: %s", path, rmErr)
			}
			return err
		}
	}

	payload.Metadata.LocalFile = path

	return nil
}

func (p *DownloadPayload) download(path string) error {
	url := p.Config.Spec.Payload.URL()
	log.Infof("downloading payload from %s", url)

	client := &http.Client{Timeout: time.Minute * 10}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download payload: %s", resp.Status)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}

func (p *DownloadPayload) verifyChecksum(path, expected string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return err
	}

	sum := hex.EncodeToString(digest.Sum(nil))
	if sum != expected {
		return fmt.Errorf("payload checksum mismatch: got %s, expected %s", sum, expected)
	}

	return nil
}
