package media

import "strings"

// Avatars are hosted on Cloudinary; profile updates may only reference
// URLs produced by its image upload pipeline.
const (
	avatarHostPrefix = "https://res.cloudinary.com/"
	uploadPathMarker = "/image/upload/"
)

// ValidAvatarURL reports whether url points at the media host's image
// upload path.
func ValidAvatarURL(url string) bool {
	return strings.HasPrefix(url, avatarHostPrefix) && strings.Contains(url, uploadPathMarker)
}
