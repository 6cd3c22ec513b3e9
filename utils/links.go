// utils/links.go
package utils

import (
	"strings"

	"sniperlink/models"
)

var (
	iosSignatures     = []string{"iPhone", "iPad", "iPod"}
	androidSignatures = []string{"Android"}
)

// DetectPlatform derives the caller platform from a User-Agent header.
// iOS signatures are checked before Android ones; anything else is desktop.
func DetectPlatform(userAgent string) models.Platform {
	for _, sig := range iosSignatures {
		if strings.Contains(userAgent, sig) {
			return models.PlatformIOS
		}
	}
	for _, sig := range androidSignatures {
		if strings.Contains(userAgent, sig) {
			return models.PlatformAndroid
		}
	}
	return models.PlatformDesktop
}

// GenerateLink picks the best link for the platform. iOS falls back to the
// desktop link when the provider has no iOS builder.
func GenerateLink(platform models.Platform, provider *models.Provider, params models.LinkParams) string {
	switch {
	case platform == models.PlatformIOS && provider.IOS != nil:
		return provider.IOS(params)
	case platform == models.PlatformAndroid:
		return provider.Android(params)
	default:
		return provider.Desktop(params)
	}
}
