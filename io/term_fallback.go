package argio

import (
	"os"
	"strconv"
)

func fallbackTermSizeFromEnv() (int, int) {
	return envSize("COLUMNS"), envSize("LINES")
}

func envSize(name string) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
