package auth

type jwtService interface {
	GenerateToken(username, role string) (string, error)
}
