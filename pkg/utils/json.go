package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var (
		buffer []byte
		err    error
	)

	if raw, ok := in.([]byte); ok {
		var decoded any
		if err = json.Unmarshal(raw, &decoded); err != nil {
			logrus.WithError(err).Warn("PrettyJson: entrada não é JSON")
			return string(raw)
		}
		in = decoded
	}

	buffer, err = json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("PrettyJson: falha ao serializar")
		return ""
	}

	return string(buffer)
}
