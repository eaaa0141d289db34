package utils

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "abcdefghijklmnopqrstuvwxyz0123456789"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// Slug gera o identificador curto da organização: nome normalizado + sufixo aleatório
func Slug(name string) (string, error) {
	suffix, err := GenerateID()
	if err != nil {
		return "", err
	}

	base := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if len(base) > 40 {
		base = strings.Trim(base[:40], "-")
	}
	if base == "" {
		return suffix, nil
	}

	return base + "-" + suffix, nil
}
