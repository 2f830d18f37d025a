package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/addchain/collator/model/parachain"
)

const (

	// codes for special database markers
	codeMax = 1 // keeps track of the maximum key size of the db

	// codes for entities
	codeHeadData  = 10
	codeHeadState = 11

	// codes for indexes
	codeHeadByNumber = 20
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := []byte{code}
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case string:
		return []byte(i)
	case parachain.Identifier:
		return i[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
