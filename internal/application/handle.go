package application

import (
	"strings"

	"dancehub/pkg/slug"
)

const facebookURLPrefix = "https://www.facebook.com/"

// organizerHandles derives the two identifiers used during organizer
// resolution from the first host's profile URL.
//
// searchHandle is the URL with the facebook prefix stripped; it is what the
// profile index is queried with. fallbackUsername names the pending profile
// when the search misses. For "people/" URLs it is the path segment after
// "people/" with only its first hyphen removed — the exact transform the
// platform has always applied, kept as-is so existing pending profiles stay
// addressable.
func organizerHandles(hostURL, hostName string) (searchHandle, fallbackUsername string) {
	searchHandle = strings.TrimPrefix(hostURL, facebookURLPrefix)

	fallbackUsername = searchHandle
	if strings.Contains(fallbackUsername, "people/") {
		parts := strings.Split(fallbackUsername, "/")
		if len(parts) > 1 {
			fallbackUsername = strings.Replace(parts[1], "-", "", 1)
		}
	}
	if fallbackUsername == "" {
		fallbackUsername = slug.Make(hostName)
	}
	return searchHandle, fallbackUsername
}
