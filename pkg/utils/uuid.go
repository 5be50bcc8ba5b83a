package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short random identifier, used for ads whose source
// record arrives without one.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
