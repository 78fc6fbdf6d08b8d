package model

// Subscription is the tier of a user's plan.
type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// Valid reports whether s is one of the known subscription tiers.
func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

type User struct {
	ID           string       `gorm:"primaryKey" json:"-"`
	Email        string       `gorm:"unique;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Subscription Subscription `gorm:"default:starter" json:"subscription"`

	// Token is the single live session token. A nil or empty value means
	// the user is logged out and every previously issued token is invalid,
	// no matter what its signature says.
	Token *string `json:"-"`

	AvatarURL string `json:"avatarURL"`

	// VerificationToken is cleared once the email is verified (single use).
	VerificationToken *string `gorm:"uniqueIndex" json:"-"`
	Verify            bool    `gorm:"default:false" json:"-"`
}

// PublicUser is the shape returned to clients. Everything else on User
// stays server-side.
type PublicUser struct {
	Email        string       `json:"email"`
	Subscription Subscription `json:"subscription"`
	AvatarURL    string       `json:"avatarURL"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		Email:        u.Email,
		Subscription: u.Subscription,
		AvatarURL:    u.AvatarURL,
	}
}
