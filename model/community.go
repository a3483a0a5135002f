package model

// Community is the canonical client-side community shape.
type Community struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPrivate   bool   `json:"is_private"`
	MemberCount int    `json:"member_count,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// NormalizeCommunity reconciles a raw backend community payload.
// IsPrivate is false unless some casing variant explicitly supplied true.
func NormalizeCommunity(raw map[string]any) Community {
	if raw == nil {
		return Community{}
	}

	isPrivate, _ := probeBool(raw, "IsPrivate", "is_private")
	members, _ := probeFloat(raw, "MemberCount", "member_count")

	return Community{
		ID:          probeString(raw, "ID", "Id", "id"),
		Name:        probeString(raw, "Name", "name"),
		Description: probeString(raw, "Description", "description"),
		IsPrivate:   isPrivate,
		MemberCount: int(members),
		AvatarURL:   probeString(raw, "AvatarURL", "avatar_url"),
		CreatedAt:   probeString(raw, "CreatedAt", "created_at"),
		UpdatedAt:   probeString(raw, "UpdatedAt", "updated_at"),
	}
}

// UpsertCommunityRequest creates or updates a community.
type UpsertCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPrivate   bool   `json:"is_private"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}
