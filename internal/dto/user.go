package dto

import "Vega_Tube/internal/model"

// UserInfo 是对外暴露的精简用户信息，只投影展示用的字段
type UserInfo struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

func ToUserInfo(user *model.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
	}
}
