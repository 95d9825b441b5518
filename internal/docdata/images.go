package docdata

import (
	"strings"

	"pdfservice/internal/domain"
)

// rewriteImageURLs substitutes the internal storage host with the public base
// URL in the banner image and package image list. The rendering browser
// resolves images over the network and cannot reach internal hostnames.
// Non-matching URLs pass through unchanged.
func (p Preparer) rewriteImageURLs(data map[string]any) {
	if p.InternalMediaHost == "" || p.PublicStorageURL == "" {
		return
	}
	internal := "http://" + p.InternalMediaHost

	if banner, ok := domain.FieldString(data, "bannerImageUrl"); ok && strings.Contains(banner, p.InternalMediaHost) {
		data["bannerImageUrl"] = strings.Replace(banner, internal, p.PublicStorageURL, 1)
	}

	if images, ok := domain.FieldSlice(data, "packageImages"); ok {
		rewritten := make([]any, len(images))
		for i, img := range images {
			if url, ok := img.(string); ok && strings.Contains(url, p.InternalMediaHost) {
				rewritten[i] = strings.Replace(url, internal, p.PublicStorageURL, 1)
				continue
			}
			rewritten[i] = img
		}
		data["packageImages"] = rewritten
	}
}
