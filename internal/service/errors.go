package service

import "errors"

// 业务错误统一用哨兵错误定义，handler层用errors.Is翻译成状态码。
// 消息直接面向用户，可以安全返回
var (
	ErrInvalidID         = errors.New("无效的目标ID")
	ErrInvalidTargetType = errors.New("无效的目标类型")
	ErrSelfSubscribe     = errors.New("不能订阅自己的频道")
	ErrNotFound          = errors.New("目标不存在")
	ErrUsernameTaken     = errors.New("用户名已存在")
	ErrBadCredentials    = errors.New("用户名或密码错误")
)
