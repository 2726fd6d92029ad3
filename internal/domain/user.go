package domain

type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Handle  string   `json:"handle"` // @username
	Avatar  string   `json:"avatar"`
	Bio     string   `json:"bio,omitempty"`
	Friends []string `json:"friends"` // User IDs; friendship is symmetric
}

// HasFriend reports whether other is already in the friend list.
func (u *User) HasFriend(other string) bool {
	for _, id := range u.Friends {
		if id == other {
			return true
		}
	}
	return false
}
