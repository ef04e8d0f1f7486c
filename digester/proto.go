package digester

import (
	"google.golang.org/protobuf/proto"

	"github.com/go-leo/digest"
)

// Proto wraps a protobuf message as a Digestible of its deterministic wire
// encoding. Marshaling happens eagerly, so a message that cannot be encoded
// is rejected here and Digest stays total.
//
// Deterministic marshaling is stable within one binary but not guaranteed
// across protobuf library versions, so proto digests are suitable for
// in-process equality checks only, which is all this library promises.
func Proto(m proto.Message) (digest.Digestible, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return nil, err
	}
	return raw(data), nil
}
