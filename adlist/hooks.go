package adlist

import "github.com/pengdafu/adlist-golang/util"

// BytesType is for lists owning their []byte values: Dup copies them and
// Match compares contents.
func BytesType() *Type[[]byte] {
	return &Type[[]byte]{
		Dup: func(value []byte) ([]byte, error) {
			return util.CloneBytes(value), nil
		},
		Match: util.BytesCmp,
	}
}

// BytesCaseType is BytesType with case-insensitive matching.
func BytesCaseType() *Type[[]byte] {
	typ := BytesType()
	typ.Match = util.BytesCaseCmp
	return typ
}

func StringCaseType() *Type[string] {
	return &Type[string]{
		Match: util.StrCaseCmp[string],
	}
}
