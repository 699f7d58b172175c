package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// lower-case only so generated names stay valid on case-insensitive file systems
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

// GenerateID returns a random identifier usable in file names.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
