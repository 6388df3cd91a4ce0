package profile

// UserProfile is the user-editable account document. Email is immutable after
// signup; the plan changes only through billing, never through profile edits.
type UserProfile struct {
	UserID    string   `json:"-"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Email     string   `json:"email"`
	Allergies []string `json:"allergies"`
	Plan      string   `json:"plan"`
}

// Update carries a partial edit; nil fields are left unchanged (merge
// semantics). The allergy list is replaced whole, never patched.
type Update struct {
	Name      *string   `json:"name"`
	Age       *int      `json:"age"`
	Gender    *string   `json:"gender"`
	Allergies *[]string `json:"allergies"`
}
