package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	uploadIDLength = 10
)

// GenerateID gera o identificador curto de um upload
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, uploadIDLength)
}
