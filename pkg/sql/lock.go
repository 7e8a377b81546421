package sql

import (
	"hash/fnv"
)

func lockID(name string) int64 {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(name))

	return int64(hash.Sum64())
}
