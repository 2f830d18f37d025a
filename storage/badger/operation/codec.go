package operation

import (
	"errors"

	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/addchain/collator/module/irrecoverable"
)

var errUncompressedValue = errors.New("could not uncompress data")

// encodeEntity encodes the given entity using msgpack and compresses it
// with snappy.
// possible error to return is irrecoverable.exception
func encodeEntity(entity interface{}) ([]byte, error) {
	val, err := msgpack.Marshal(entity)
	if err != nil {
		return nil, irrecoverable.NewExceptionf("could not encode entity: %w", err)
	}
	return snappy.Encode(nil, val), nil
}

// decodeValue uncompresses the value and decodes it into the given entity.
// possible error to return is irrecoverable.exception
func decodeValue(val []byte, entity interface{}) error {
	uncompressed, err := decodeRaw(val)
	if err != nil {
		return err
	}
	err = msgpack.Unmarshal(uncompressed, entity)
	if err != nil {
		return irrecoverable.NewExceptionf("could not decode entity: %w", err)
	}
	return nil
}

// decodeRaw returns the msgpack bytes of a stored value.
func decodeRaw(val []byte) ([]byte, error) {
	uncompressed, err := snappy.Decode(nil, val)
	if err != nil {
		return nil, irrecoverable.NewExceptionf("%s: %w", err, errUncompressedValue)
	}
	return uncompressed, nil
}
