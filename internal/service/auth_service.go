package service

import (
	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/util"
)

// AuthService 身份边界。凭证校验与存储属于外部身份提供方，
// 这里只把"已认证、带姓名/邮箱"这一事实换成本服务的会话令牌。
// 演示凭证来自配置，对应真实部署中由身份提供方回调的场景。
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login 校验演示凭证并签发 JWT
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	id := s.cfg.Identity
	if email == "" || email != id.DemoEmail || password != id.DemoPassword {
		return "", nil, util.ErrInvalidCredential
	}

	user := &model.User{Name: id.DemoName, Email: email}
	token, err := util.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
