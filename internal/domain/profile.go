package domain

// GuestName is the placeholder name persisted when a visitor has not
// set one (or saved a blank one).
const GuestName = "Guest"

// Profile is the visitor profile persisted under the "user" record.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DefaultProfile is what profile loads fall back to when nothing
// usable is persisted.
func DefaultProfile() Profile {
	return Profile{Name: GuestName}
}
