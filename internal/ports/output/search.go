package output

import "context"

// ProfileHit is one ranked result from the profile search index. Fields the
// index record lacks stay empty.
type ProfileHit struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Bio       string `json:"bio"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
	YouTube   string `json:"youtube"`
}

// ProfileIndex queries the external search index for profiles.
type ProfileIndex interface {
	SearchProfiles(ctx context.Context, query string) ([]ProfileHit, error)
}
