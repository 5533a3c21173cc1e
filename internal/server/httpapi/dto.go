package httpapi

import "github.com/avasiljevs/itemvault/internal/server/models"

// Wire DTOs are distinct from the persistence models so that nothing a
// client sends can reach fields it must not set, and the password hash
// can never leak outward.

type UserDTO struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	IsActive    bool   `json:"isActive"`
	IsSuperuser bool   `json:"isSuperuser"`
}

type ItemDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	OwnerID     string  `json:"ownerID"`
}

type TokenDTO struct {
	ID     string `json:"id"`
	Value  string `json:"value"`
	UserID string `json:"userID"`
}

func toUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

func toUserDTOs(users []*models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	return out
}

func toItemDTO(i *models.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		OwnerID:     i.OwnerID,
	}
}

func toItemDTOs(items []*models.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, toItemDTO(i))
	}
	return out
}

func toTokenDTO(t *models.Token) TokenDTO {
	return TokenDTO{ID: t.ID, Value: t.Value, UserID: t.UserID}
}
