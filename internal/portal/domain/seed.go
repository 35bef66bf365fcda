package domain

// SeedUser is a demo account created at startup when absent.
type SeedUser struct {
	Username   string
	Email      string
	Password   string
	Name       string
	ArtistName string
	Avatar     string
}

// DemoPassword is shared by all demo accounts.
const DemoPassword = "password123"

// DefaultSeedUsers returns the demo accounts the portal ships with.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{
			Username:   "alexj",
			Email:      "alex@example.com",
			Password:   DemoPassword,
			Name:       "Alex Johnson",
			ArtistName: "Alex J",
			Avatar:     "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		},
		{
			Username:   "sarahc",
			Email:      "sarah@example.com",
			Password:   DemoPassword,
			Name:       "Sarah Chen",
			ArtistName: "Sarah C",
			Avatar:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		},
	}
}
