package auth

// User is the domain entity. Signup collects the profile fields alongside the
// credentials so a fresh account can run allergy checks immediately.
type User struct {
	ID        string
	Name      string
	Age       int
	Gender    string
	Email     string
	Password  string
	Allergies []string
	Plan      string
}
