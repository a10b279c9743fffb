package util

import (
	"bytes"
	"math/rand"
	"strings"
)

func StrCmp[T []byte | string](s T, d string) bool {
	return string(s) == d
}

func StrCaseCmp[T []byte | string](s T, d string) bool {
	return strings.EqualFold(string(s), d)
}

func BytesCmp(key1, key2 []byte) bool {
	return bytes.Equal(key1, key2)
}

func BytesCaseCmp(key1, key2 []byte) bool {
	return bytes.EqualFold(key1, key2)
}

// CloneBytes returns a copy of b that shares no memory with it. A nil b
// stays nil.
func CloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}

func GetRandomBytes(needLen int) []byte {
	ret := make([]byte, needLen)
	for i := 0; i < needLen; i++ {
		ret[i] = byte(rand.Intn(256))
	}
	return ret
}
