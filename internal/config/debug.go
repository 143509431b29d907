package config

import "os"

func IsDebug() bool {
	return os.Getenv("STUDYKB_DEBUG") == "1"
}
