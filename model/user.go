package model

// UserRole identifies the access level of an account.
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleTherapist UserRole = "therapist"
	UserRoleAdmin     UserRole = "admin"
)

// Valid reports whether the role is one the backend issues.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleTherapist, UserRoleAdmin:
		return true
	default:
		return false
	}
}

// User is the canonical client-side account shape. Timestamps and the date
// of birth are passed through as the backend's RFC 3339 strings.
type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Role        UserRole `json:"role"`
	FullName    string   `json:"full_name,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// NormalizeUser reconciles a raw backend user payload into the canonical
// shape. Identity fields (ID, Email) are probed at the top level only;
// profile fields additionally fall back to a nested Profile/profile object.
// The function is total: it never fails, it just leaves fields empty when
// no casing variant supplied them.
func NormalizeUser(raw map[string]any) User {
	if raw == nil {
		return User{}
	}

	role := UserRole(normalizeToken(probeString(raw, "Role", "role")))
	if !role.Valid() {
		role = UserRoleUser
	}

	return User{
		ID:          probeString(raw, "ID", "Id", "id"),
		Email:       probeString(raw, "Email", "email"),
		Role:        role,
		FullName:    probeProfileString(raw, "FullName", "full_name"),
		Phone:       probeProfileString(raw, "Phone", "phone"),
		Address:     probeProfileString(raw, "Address", "address"),
		City:        probeProfileString(raw, "City", "city"),
		DateOfBirth: probeProfileString(raw, "DateOfBirth", "date_of_birth"),
		Gender:      probeProfileString(raw, "Gender", "gender"),
		AvatarURL:   probeProfileString(raw, "AvatarURL", "avatar_url"),
		CreatedAt:   probeString(raw, "CreatedAt", "created_at"),
		UpdatedAt:   probeString(raw, "UpdatedAt", "updated_at"),
	}
}

// UpdateProfileRequest changes profile fields on the current account.
// Nil fields are left unchanged by the backend.
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}
