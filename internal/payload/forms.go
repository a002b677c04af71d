package payload

import "net/url"

// AdminLoginForm encodes admin credentials as application/x-www-form-urlencoded,
// the content type the admin login endpoint requires (unlike the JSON
// consumer login).
func AdminLoginForm(username, password string) string {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	return form.Encode()
}
