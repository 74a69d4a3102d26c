// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// SplitGallery splits a comma-delimited gallery column into URLs,
// dropping empty entries.
func SplitGallery(gallery string) []string {
	var urls []string
	for _, u := range strings.Split(gallery, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// GalleryContains reports whether url is one of the gallery entries.
func GalleryContains(gallery, url string) bool {
	for _, u := range SplitGallery(gallery) {
		if u == url {
			return true
		}
	}
	return false
}
