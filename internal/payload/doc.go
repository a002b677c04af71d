// Package payload converts local form state into the wire shapes the
// backend expects: JSON bodies for text-only mutations, url-encoded forms
// for the admin login endpoint, and multipart bodies for image-bearing
// submissions. It also holds the tag-string and nutrient-number conversions
// shared by the edit forms.
package payload
