package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as credenciais extraídas do token de acesso emitido pelo
// subsistema administrativo. A emissão e o gerenciamento de usuários
// acontecem fora deste serviço; aqui o token é apenas validado.
type Claims struct {
	UserID     int `json:"user_id"`
	UserRoleID int `json:"user_role_id"`
	jwt.RegisteredClaims
}
